package netcomponents

import (
	"github.com/solheim/driftwars-client/shared/netconfig"
	"github.com/yohamta/donburi"
)

// StatusData carries an entity's kind-specific mutable fields: reactor energy
// and the discrete state the server has assigned. Kind never changes after
// spawn; it rides along so snapshot captures stay self-describing.
type StatusData struct {
	Kind   netconfig.KindID
	Energy float64
	State  netconfig.StateID
	Name   string
}

var Status = donburi.NewComponentType[StatusData]()
