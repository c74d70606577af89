package world

import (
	"testing"

	"github.com/solheim/driftwars-client/interp"
	"github.com/solheim/driftwars-client/shared/netconfig"
)

func newTestStore() *Store {
	return NewStore(NewRegistry())
}

func spawnShip(s *Store, handle uint32, id string, x, y float64) {
	s.Spawn(handle, id, "pilot-"+id, interp.EntityState{
		Kind: netconfig.KindShip,
		X:    x, Y: y,
		Energy: 100,
		State:  netconfig.StateIdle,
	})
}

func TestSpawnAndLiveState(t *testing.T) {
	s := newTestStore()
	spawnShip(s, 1, "ship-a", 10, 20)

	st, ok := s.LiveState("ship-a")
	if !ok {
		t.Fatalf("expected spawned entity to be live")
	}
	if st.X != 10 || st.Y != 20 || st.Kind != netconfig.KindShip {
		t.Fatalf("unexpected live state: %+v", st)
	}
	if st.Energy != 100 || st.State != netconfig.StateIdle {
		t.Fatalf("kind-specific fields not applied: %+v", st)
	}

	if s.Count() != 1 {
		t.Fatalf("expected 1 entity, got %d", s.Count())
	}
	if name, _ := s.Name("ship-a"); name != "pilot-ship-a" {
		t.Fatalf("expected name pilot-ship-a, got %q", name)
	}
}

func TestRegistryResolvesHandles(t *testing.T) {
	s := newTestStore()
	spawnShip(s, 42, "ship-a", 0, 0)

	id, ok := s.Registry().IDForHandle(42)
	if !ok || id != "ship-a" {
		t.Fatalf("expected handle 42 to resolve to ship-a, got %q ok=%v", id, ok)
	}
	h, ok := s.Registry().HandleForID("ship-a")
	if !ok || h != 42 {
		t.Fatalf("expected ship-a to resolve to handle 42, got %d ok=%v", h, ok)
	}
}

func TestSetKinematicsAndAttributes(t *testing.T) {
	s := newTestStore()
	spawnShip(s, 1, "ship-a", 0, 0)

	if !s.SetKinematics("ship-a", 5, 6, 7, 1, 2, 3) {
		t.Fatalf("expected kinematics update to succeed")
	}
	if !s.SetEnergy("ship-a", 55) {
		t.Fatalf("expected energy update to succeed")
	}
	if !s.SetState("ship-a", netconfig.StateBoosting) {
		t.Fatalf("expected state update to succeed")
	}

	st, _ := s.LiveState("ship-a")
	if st.X != 5 || st.Y != 6 || st.Z != 7 || st.VX != 1 || st.VY != 2 || st.VZ != 3 {
		t.Fatalf("kinematics not applied: %+v", st)
	}
	if st.Energy != 55 || st.State != netconfig.StateBoosting {
		t.Fatalf("attributes not applied: %+v", st)
	}

	if s.SetKinematics("ghost", 0, 0, 0, 0, 0, 0) {
		t.Fatalf("expected update of unknown entity to fail")
	}
}

func TestDespawnRemovesEverything(t *testing.T) {
	s := newTestStore()
	spawnShip(s, 1, "ship-a", 0, 0)
	spawnShip(s, 2, "ship-b", 1, 1)

	if !s.Despawn("ship-a") {
		t.Fatalf("expected despawn to succeed")
	}
	if _, ok := s.LiveState("ship-a"); ok {
		t.Fatalf("expected entity gone after despawn")
	}
	if _, ok := s.Registry().IDForHandle(1); ok {
		t.Fatalf("expected handle unbound after despawn")
	}
	if s.Count() != 1 {
		t.Fatalf("expected 1 entity left, got %d", s.Count())
	}
	if s.Despawn("ship-a") {
		t.Fatalf("expected second despawn to report missing")
	}
}

func TestRespawnReplacesInPlace(t *testing.T) {
	s := newTestStore()
	spawnShip(s, 1, "ship-a", 0, 0)
	spawnShip(s, 7, "ship-a", 99, 99)

	if s.Count() != 1 {
		t.Fatalf("expected respawn to replace, got %d entities", s.Count())
	}
	st, _ := s.LiveState("ship-a")
	if st.X != 99 {
		t.Fatalf("expected replacement position, got %v", st.X)
	}
	if h, _ := s.Registry().HandleForID("ship-a"); h != 7 {
		t.Fatalf("expected new handle 7, got %d", h)
	}
}

func TestEachOfKindFilters(t *testing.T) {
	s := newTestStore()
	spawnShip(s, 1, "ship-a", 0, 0)
	s.Spawn(2, "bolt-a", "", interp.EntityState{Kind: netconfig.KindBolt})

	var ships, all int
	s.EachOfKind(netconfig.KindShip, func(string, interp.EntityState) { ships++ })
	s.EachOfKind(netconfig.KindUnknown, func(string, interp.EntityState) { all++ })

	if ships != 1 {
		t.Fatalf("expected 1 ship, got %d", ships)
	}
	if all != 2 {
		t.Fatalf("expected 2 entities total, got %d", all)
	}
}

func TestCaptureSnapshotIsDeepCopy(t *testing.T) {
	s := newTestStore()
	spawnShip(s, 1, "ship-a", 10, 20)

	snap := s.CaptureSnapshot(3, 5000, 6000)
	if snap.Tick != 3 || snap.ServerTime != 5000 || snap.CaptureClientTime != 6000 {
		t.Fatalf("snapshot header wrong: %+v", snap)
	}

	// Mutating the store after capture must not reach back into the snapshot.
	s.SetKinematics("ship-a", 999, 999, 0, 0, 0, 0)
	s.SetEnergy("ship-a", 1)

	st := snap.Entities["ship-a"]
	if st.X != 10 || st.Y != 20 || st.Energy != 100 {
		t.Fatalf("snapshot was retroactively corrupted: %+v", st)
	}
}

func TestResetClearsStoreAndRegistry(t *testing.T) {
	s := newTestStore()
	spawnShip(s, 1, "ship-a", 0, 0)
	spawnShip(s, 2, "ship-b", 1, 1)

	s.Reset()

	if s.Count() != 0 {
		t.Fatalf("expected empty store after reset, got %d", s.Count())
	}
	if _, ok := s.LiveState("ship-a"); ok {
		t.Fatalf("expected no live entities after reset")
	}
	if s.Registry().Len() != 0 {
		t.Fatalf("expected empty registry after reset")
	}

	// The store must be usable again after a reset.
	spawnShip(s, 3, "ship-c", 2, 2)
	if s.Count() != 1 {
		t.Fatalf("expected store usable after reset, got %d", s.Count())
	}
}

func TestParallelStoresDoNotCollide(t *testing.T) {
	a := newTestStore()
	b := newTestStore()

	spawnShip(a, 1, "ship-a", 10, 0)
	spawnShip(b, 1, "ship-b", 20, 0)

	if _, ok := a.LiveState("ship-b"); ok {
		t.Fatalf("store a sees store b's entity")
	}
	if id, _ := a.Registry().IDForHandle(1); id != "ship-a" {
		t.Fatalf("registries collided: handle 1 in a is %q", id)
	}
	if id, _ := b.Registry().IDForHandle(1); id != "ship-b" {
		t.Fatalf("registries collided: handle 1 in b is %q", id)
	}
}
