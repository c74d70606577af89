package messages

import "github.com/solheim/driftwars-client/shared/netconfig"

// PilotInput is sent from client to server at the fixed simulation cadence
// with the pilot's current intent. The server owns all resulting movement;
// the client never predicts it.
type PilotInput struct {
	Sequence  uint32                      // Incrementing ID, diagnostic only
	Actions   map[netconfig.ActionID]bool // Which actions are currently held
	AimX      float64                     // Aim point in world units
	AimY      float64
	Timestamp int64 // Client timestamp (Unix ms)
}

// NewPilotInput creates a PilotInput with initialized map
func NewPilotInput(seq uint32) PilotInput {
	return PilotInput{
		Sequence: seq,
		Actions:  make(map[netconfig.ActionID]bool),
	}
}
