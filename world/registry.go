package world

import "github.com/yohamta/donburi"

// Registry is the bidirectional lookup between the compact numeric handles
// the wire protocol uses, the stable string network IDs, and the donburi
// entities backing them. It is constructed alongside the Store and passed
// around explicitly so parallel instances (tests, replays) never collide.
type Registry struct {
	byHandle map[uint32]string
	byID     map[string]donburi.Entity
	handles  map[string]uint32
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Clear()
	return r
}

// Bind associates a wire handle, a network ID and a donburi entity.
func (r *Registry) Bind(handle uint32, id string, entity donburi.Entity) {
	r.byHandle[handle] = id
	r.byID[id] = entity
	r.handles[id] = handle
}

// IDForHandle resolves a wire handle to its network ID.
func (r *Registry) IDForHandle(handle uint32) (string, bool) {
	id, ok := r.byHandle[handle]
	return id, ok
}

// HandleForID resolves a network ID to its wire handle.
func (r *Registry) HandleForID(id string) (uint32, bool) {
	h, ok := r.handles[id]
	return h, ok
}

// EntityForID resolves a network ID to its donburi entity.
func (r *Registry) EntityForID(id string) (donburi.Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Unbind removes every association for the network ID.
func (r *Registry) Unbind(id string) {
	if h, ok := r.handles[id]; ok {
		delete(r.byHandle, h)
	}
	delete(r.handles, id)
	delete(r.byID, id)
}

// EachID visits every bound network ID. Do not unbind during the visit.
func (r *Registry) EachID(fn func(id string, entity donburi.Entity)) {
	for id, entity := range r.byID {
		fn(id, entity)
	}
}

// Len returns how many entities are bound.
func (r *Registry) Len() int {
	return len(r.byID)
}

// Clear drops every association.
func (r *Registry) Clear() {
	r.byHandle = make(map[uint32]string)
	r.byID = make(map[string]donburi.Entity)
	r.handles = make(map[string]uint32)
}
