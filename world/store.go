// Package world owns the canonical, mutable entity state the server has most
// recently told us about. It is written by the network translator and read by
// everything else; buffered history lives elsewhere (interp) and is captured
// from here by deep copy.
package world

import (
	"github.com/solheim/driftwars-client/interp"
	"github.com/solheim/driftwars-client/shared/netcomponents"
	"github.com/solheim/driftwars-client/shared/netconfig"
	"github.com/yohamta/donburi"
)

// Store is the normalized collection of current entity state, keyed by stable
// string network ID through an explicit Registry. Entities are donburi
// entries carrying the shared netcomponents.
type Store struct {
	ecs      donburi.World
	registry *Registry
}

// NewStore creates a store backed by a fresh donburi world and the given
// registry. The registry is shared with whoever translates wire handles.
func NewStore(registry *Registry) *Store {
	return &Store{
		ecs:      donburi.NewWorld(),
		registry: registry,
	}
}

// Registry returns the handle/ID lookup constructed with this store.
func (s *Store) Registry() *Registry {
	return s.registry
}

// Spawn creates (or replaces) an entity and binds it in the registry.
func (s *Store) Spawn(handle uint32, id, name string, st interp.EntityState) {
	if _, ok := s.registry.EntityForID(id); ok {
		// Respawn under the same ID: replace in place.
		s.Despawn(id)
	}

	entity := s.ecs.Create(netcomponents.Transform, netcomponents.Motion, netcomponents.Status)
	entry := s.ecs.Entry(entity)
	netcomponents.Transform.SetValue(entry, netcomponents.TransformData{X: st.X, Y: st.Y, Z: st.Z})
	netcomponents.Motion.SetValue(entry, netcomponents.MotionData{VX: st.VX, VY: st.VY, VZ: st.VZ})
	netcomponents.Status.SetValue(entry, netcomponents.StatusData{
		Kind:   st.Kind,
		Energy: st.Energy,
		State:  st.State,
		Name:   name,
	})

	s.registry.Bind(handle, id, entity)
}

// SetKinematics overwrites the entity's position and velocity.
func (s *Store) SetKinematics(id string, x, y, z, vx, vy, vz float64) bool {
	entry, ok := s.entry(id)
	if !ok {
		return false
	}
	netcomponents.Transform.SetValue(entry, netcomponents.TransformData{X: x, Y: y, Z: z})
	netcomponents.Motion.SetValue(entry, netcomponents.MotionData{VX: vx, VY: vy, VZ: vz})
	return true
}

// SetEnergy overwrites the entity's reactor energy.
func (s *Store) SetEnergy(id string, energy float64) bool {
	entry, ok := s.entry(id)
	if !ok {
		return false
	}
	netcomponents.Status.Get(entry).Energy = energy
	return true
}

// SetState overwrites the entity's discrete state.
func (s *Store) SetState(id string, state netconfig.StateID) bool {
	entry, ok := s.entry(id)
	if !ok {
		return false
	}
	netcomponents.Status.Get(entry).State = state
	return true
}

// Despawn removes the entity and its registry bindings.
func (s *Store) Despawn(id string) bool {
	entity, ok := s.registry.EntityForID(id)
	if !ok {
		return false
	}
	if s.ecs.Valid(entity) {
		s.ecs.Entry(entity).Remove()
	}
	s.registry.Unbind(id)
	return true
}

// Reset drops every entity and clears the registry. Buffer clearing is the
// caller's job so the whole teardown happens in one place (network reset).
func (s *Store) Reset() {
	s.registry.EachID(func(id string, entity donburi.Entity) {
		if s.ecs.Valid(entity) {
			s.ecs.Entry(entity).Remove()
		}
	})
	s.registry.Clear()
}

// Count returns how many entities are currently known.
func (s *Store) Count() int {
	return s.registry.Len()
}

// Name returns the entity's display name.
func (s *Store) Name(id string) (string, bool) {
	entry, ok := s.entry(id)
	if !ok {
		return "", false
	}
	return netcomponents.Status.Get(entry).Name, true
}

// LiveState returns a copy of the entity's current canonical state.
// Implements interp.LiveSource.
func (s *Store) LiveState(id string) (interp.EntityState, bool) {
	entry, ok := s.entry(id)
	if !ok {
		return interp.EntityState{}, false
	}
	return stateOf(entry), true
}

// EachOfKind visits every known entity of the kind; KindUnknown visits all.
// Implements interp.LiveSource.
func (s *Store) EachOfKind(kind netconfig.KindID, fn func(id string, st interp.EntityState)) {
	s.registry.EachID(func(id string, entity donburi.Entity) {
		if !s.ecs.Valid(entity) {
			return
		}
		st := stateOf(s.ecs.Entry(entity))
		if kind == netconfig.KindUnknown || st.Kind == kind {
			fn(id, st)
		}
	})
}

// CaptureSnapshot deep-copies every entity's mutable fields into an immutable
// whole-world snapshot. The copy happens now, at capture time, so later store
// mutation cannot retroactively corrupt buffered history.
func (s *Store) CaptureSnapshot(tick uint64, serverTime, captureClientTime float64) *interp.WorldSnapshot {
	snap := &interp.WorldSnapshot{
		Tick:              tick,
		ServerTime:        serverTime,
		CaptureClientTime: captureClientTime,
		Entities:          make(map[string]interp.EntityState, s.registry.Len()),
	}
	s.EachOfKind(netconfig.KindUnknown, func(id string, st interp.EntityState) {
		snap.Entities[id] = st
	})
	return snap
}

func (s *Store) entry(id string) (*donburi.Entry, bool) {
	entity, ok := s.registry.EntityForID(id)
	if !ok || !s.ecs.Valid(entity) {
		return nil, false
	}
	return s.ecs.Entry(entity), true
}

func stateOf(entry *donburi.Entry) interp.EntityState {
	pos := netcomponents.Transform.Get(entry)
	mot := netcomponents.Motion.Get(entry)
	status := netcomponents.Status.Get(entry)
	return interp.EntityState{
		Kind:   status.Kind,
		X:      pos.X,
		Y:      pos.Y,
		Z:      pos.Z,
		VX:     mot.VX,
		VY:     mot.VY,
		VZ:     mot.VZ,
		Energy: status.Energy,
		State:  status.State,
	}
}
