// Package netconfig defines lightweight types shared between the client and
// the driftwars server protocol. It must have zero dependencies on ebiten or
// any graphics library so headless tools can import it.
package netconfig

// KindID identifies the kind of a networked entity.
type KindID int

const (
	KindUnknown KindID = iota
	KindShip
	KindDrone
	KindBolt
)

var kindNames = map[KindID]string{
	KindUnknown: "unknown",
	KindShip:    "ship",
	KindDrone:   "drone",
	KindBolt:    "bolt",
}

func (k KindID) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// StateID identifies a discrete entity state the server can assign.
type StateID int

const (
	StateNone StateID = iota
	StateIdle
	StateThrusting
	StateBoosting
	StateDocked
	StateDisabled
	StateExploding
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	StateIdle:      "idle",
	StateThrusting: "thrusting",
	StateBoosting:  "boosting",
	StateDocked:    "docked",
	StateDisabled:  "disabled",
	StateExploding: "exploding",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ActionID represents a logical pilot action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionThrustUp
	ActionThrustDown
	ActionThrustLeft
	ActionThrustRight
	ActionBoost
	ActionFire
	ActionCount // Must be last - used for array sizing
)

// Server cadence defaults. The authoritative tick rate is echoed back in the
// join handshake; these are only the values assumed before joining.
const (
	DefaultTickRate       = 20
	DefaultSendIntervalMs = 1000.0 / DefaultTickRate
)

// Arena bounds in world units. The server clamps every authoritative position
// to this box, and the client clamps local pilot intent the same way.
const (
	ArenaWidth  = 4096.0
	ArenaHeight = 4096.0
)
