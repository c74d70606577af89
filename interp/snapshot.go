package interp

import "github.com/solheim/driftwars-client/shared/netconfig"

// EntityState is a deep copy of one entity's mutable fields at capture time.
// Values, not pointers: later store mutation cannot reach back into history.
type EntityState struct {
	Kind       netconfig.KindID
	X, Y, Z    float64
	VX, VY, VZ float64
	Energy     float64
	State      netconfig.StateID
}

// WorldSnapshot is a full copy of every entity's state at one instant, keyed
// by client arrival time. Never mutated after capture.
type WorldSnapshot struct {
	Tick              uint64
	ServerTime        float64
	CaptureClientTime float64
	Entities          map[string]EntityState
}

// LiveSource is the resolver's view of the canonical entity store. Only
// copied values cross this boundary.
type LiveSource interface {
	// LiveState returns the entity's current canonical state.
	LiveState(id string) (EntityState, bool)
	// EachOfKind visits every known entity of the kind; KindUnknown visits all.
	EachOfKind(kind netconfig.KindID, fn func(id string, st EntityState))
}
