package network

import (
	"log"

	"github.com/solheim/driftwars-client/interp"
	"github.com/solheim/driftwars-client/shared/messages"
	"github.com/solheim/driftwars-client/world"
)

// Translator applies typed server events to the entity store and the two
// history buffers, in arrival order. It is the only writer of either buffer.
//
// Every state-changing event triggers a whole-world snapshot capture; bare
// energy ticks deliberately do not, which bounds the snapshot write rate.
type Translator struct {
	store     *world.Store
	entities  *interp.EntityBuffer
	snapshots *interp.SnapshotBuffer

	// now is the client clock in ms; swappable for tests.
	now func() float64

	captures uint64
}

// NewTranslator wires the translator to the store and both buffers.
func NewTranslator(store *world.Store, entities *interp.EntityBuffer, snapshots *interp.SnapshotBuffer) *Translator {
	return &Translator{
		store:     store,
		entities:  entities,
		snapshots: snapshots,
		now:       NowMs,
	}
}

// ApplyAll applies a drained batch of events in order.
func (t *Translator) ApplyAll(events []any) {
	for _, evt := range events {
		t.Apply(evt)
	}
}

// Apply translates one server event into store mutation and buffer captures.
func (t *Translator) Apply(evt any) {
	switch e := evt.(type) {
	case messages.SpawnEvent:
		t.applySpawn(e)
	case messages.MoveEvent:
		t.applyMove(e)
	case messages.EnergyEvent:
		t.applyEnergy(e)
	case messages.StateEvent:
		t.applyState(e)
	case messages.DespawnEvent:
		t.applyDespawn(e)
	case messages.WorldResetEvent:
		log.Printf("[net] world reset: sector=%s", e.Sector)
		t.Reset()
	default:
		log.Printf("[net] unhandled event type %T", evt)
	}
}

// Reset clears the store, the registry, both buffers and the clock-offset
// table in one step. History is rebuilt from the spawn events that follow.
func (t *Translator) Reset() {
	t.store.Reset()
	t.entities.Clear()
	t.snapshots.Clear()
}

func (t *Translator) applySpawn(e messages.SpawnEvent) {
	t.store.Spawn(e.Handle, e.ID, e.Name, interp.EntityState{
		Kind:   e.Kind,
		X:      e.X,
		Y:      e.Y,
		Z:      e.Z,
		VX:     e.VX,
		VY:     e.VY,
		VZ:     e.VZ,
		Energy: e.Energy,
		State:  e.State,
	})
	t.entities.Push(e.ID, interp.Sample{
		X: e.X, Y: e.Y, Z: e.Z,
		VX: e.VX, VY: e.VY, VZ: e.VZ,
		ServerTime: e.ServerTime,
		ClientTime: t.now(),
	})
	t.capture(e.ServerTime)
}

func (t *Translator) applyMove(e messages.MoveEvent) {
	id, ok := t.store.Registry().IDForHandle(e.Handle)
	if !ok {
		log.Printf("[net] move for unknown handle %d", e.Handle)
		return
	}
	t.store.SetKinematics(id, e.X, e.Y, e.Z, e.VX, e.VY, e.VZ)
	t.entities.Push(id, interp.Sample{
		X: e.X, Y: e.Y, Z: e.Z,
		VX: e.VX, VY: e.VY, VZ: e.VZ,
		ServerTime: e.ServerTime,
		ClientTime: t.now(),
	})
	t.capture(e.ServerTime)
}

func (t *Translator) applyEnergy(e messages.EnergyEvent) {
	id, ok := t.store.Registry().IDForHandle(e.Handle)
	if !ok {
		return
	}
	// High-frequency low-value update: store only, no snapshot capture.
	t.store.SetEnergy(id, e.Energy)
}

func (t *Translator) applyState(e messages.StateEvent) {
	id, ok := t.store.Registry().IDForHandle(e.Handle)
	if !ok {
		return
	}
	t.store.SetState(id, e.State)
	t.capture(e.ServerTime)
}

func (t *Translator) applyDespawn(e messages.DespawnEvent) {
	id, ok := t.store.Registry().IDForHandle(e.Handle)
	if !ok {
		return
	}
	t.store.Despawn(id)
	t.entities.Remove(id)
	t.capture(e.ServerTime)
}

func (t *Translator) capture(serverTime float64) {
	t.captures++
	t.snapshots.Add(t.store.CaptureSnapshot(t.captures, serverTime, t.now()))
}
