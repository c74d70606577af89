package messages

import "github.com/solheim/driftwars-client/shared/netconfig"

// Entity events are emitted by the server once per tick per affected entity.
// Handles are compact wire identifiers assigned at spawn; the string ID is
// carried only on SpawnEvent and resolved through the client-side registry
// afterwards. ServerTime is milliseconds on the server's clock.

// SpawnEvent announces a new entity entering the client's view.
type SpawnEvent struct {
	Handle     uint32
	ID         string
	Kind       netconfig.KindID
	Name       string
	X, Y, Z    float64
	VX, VY, VZ float64
	Energy     float64
	State      netconfig.StateID
	ServerTime float64
}

// MoveEvent carries one tick's kinematics for one entity.
type MoveEvent struct {
	Handle     uint32
	X, Y, Z    float64
	VX, VY, VZ float64
	ServerTime float64
}

// EnergyEvent is a bare reactor-energy update. These arrive at high frequency
// and are deliberately excluded from world-snapshot capture.
type EnergyEvent struct {
	Handle     uint32
	Energy     float64
	ServerTime float64
}

// StateEvent changes an entity's discrete state (docked, disabled, ...).
type StateEvent struct {
	Handle     uint32
	State      netconfig.StateID
	ServerTime float64
}

// DespawnEvent removes an entity from the client's view.
type DespawnEvent struct {
	Handle     uint32
	ServerTime float64
}

// WorldResetEvent tells the client to drop everything it knows: sector change,
// match restart, or reconnect. Buffered history is rebuilt from the spawn
// events that follow.
type WorldResetEvent struct {
	Sector     string
	ServerTime float64
}
