package systems

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"

	"github.com/solheim/driftwars-client/shared/messages"
	"github.com/solheim/driftwars-client/shared/netconfig"
)

const (
	aimCursorSize  = 8.0
	aimCursorSpeed = 12.0 // world units per fixed step
	arenaWallSize  = 64.0
)

// IntentSystem samples the pilot's input once per fixed step and sends it to
// the server. No prediction: the server owns all resulting movement, this
// only reports intent. The aim cursor is a resolv object clamped against the
// arena border walls so intent can never point outside the playfield.
type IntentSystem struct {
	send func(msg any) error
	seq  uint32

	space  *resolv.Space
	cursor *resolv.Object
}

// NewIntentSystem builds the arena-border collision space and the aim cursor.
func NewIntentSystem(send func(msg any) error) *IntentSystem {
	w := netconfig.ArenaWidth
	h := netconfig.ArenaHeight
	space := resolv.NewSpace(int(w+2*arenaWallSize), int(h+2*arenaWallSize), 16, 16)

	// Border walls just outside the arena box.
	walls := []*resolv.Object{
		resolv.NewObject(-arenaWallSize, -arenaWallSize, w+2*arenaWallSize, arenaWallSize, "wall"),
		resolv.NewObject(-arenaWallSize, h, w+2*arenaWallSize, arenaWallSize, "wall"),
		resolv.NewObject(-arenaWallSize, 0, arenaWallSize, h, "wall"),
		resolv.NewObject(w, 0, arenaWallSize, h, "wall"),
	}
	for _, wall := range walls {
		wall.SetShape(resolv.NewRectangle(0, 0, wall.W, wall.H))
		space.Add(wall)
	}

	cursor := resolv.NewObject(w/2, h/2, aimCursorSize, aimCursorSize, "cursor")
	cursor.SetShape(resolv.NewRectangle(0, 0, aimCursorSize, aimCursorSize))
	space.Add(cursor)

	return &IntentSystem{
		send:   send,
		space:  space,
		cursor: cursor,
	}
}

// Step runs once per fixed cadence: sample keys, move the aim cursor, send.
func (s *IntentSystem) Step() {
	input := messages.NewPilotInput(s.seq)
	s.seq++

	input.Actions[netconfig.ActionThrustUp] = ebiten.IsKeyPressed(ebiten.KeyW)
	input.Actions[netconfig.ActionThrustDown] = ebiten.IsKeyPressed(ebiten.KeyS)
	input.Actions[netconfig.ActionThrustLeft] = ebiten.IsKeyPressed(ebiten.KeyA)
	input.Actions[netconfig.ActionThrustRight] = ebiten.IsKeyPressed(ebiten.KeyD)
	input.Actions[netconfig.ActionBoost] = ebiten.IsKeyPressed(ebiten.KeyShiftLeft)
	input.Actions[netconfig.ActionFire] = ebiten.IsKeyPressed(ebiten.KeySpace)

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		dx -= aimCursorSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		dx += aimCursorSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		dy -= aimCursorSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		dy += aimCursorSpeed
	}
	s.moveCursor(dx, dy)

	input.AimX = s.cursor.X
	input.AimY = s.cursor.Y
	input.Timestamp = time.Now().UnixMilli()

	if err := s.send(input); err != nil {
		log.Printf("[intent] send failed: %v", err)
	}
}

// moveCursor shifts the aim cursor, stopping at the arena walls.
func (s *IntentSystem) moveCursor(dx, dy float64) {
	if dx != 0 {
		if check := s.cursor.Check(dx, 0, "wall"); check != nil {
			if walls := check.ObjectsByTags("wall"); len(walls) > 0 {
				contact := check.ContactWithObject(walls[0])
				dx = contact.X()
			}
		}
		s.cursor.X += dx
		s.cursor.Update()
	}
	if dy != 0 {
		if check := s.cursor.Check(0, dy, "wall"); check != nil {
			if walls := check.ObjectsByTags("wall"); len(walls) > 0 {
				contact := check.ContactWithObject(walls[0])
				dy = contact.Y()
			}
		}
		s.cursor.Y += dy
		s.cursor.Update()
	}
}

// Aim returns the current aim point in world units.
func (s *IntentSystem) Aim() (x, y float64) {
	return s.cursor.X, s.cursor.Y
}
