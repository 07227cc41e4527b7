package ecs

import "slices"

// World holds the entities of the active map and their components. It is
// not safe for concurrent use; each engine owns one.
type World struct {
	nextID   EntityID
	entities map[EntityID]map[ComponentType]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:   1,
		entities: make(map[EntityID]map[ComponentType]Component),
	}
}

// CreateEntity mints a new entity ID. IDs are never reused.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.entities[id] = make(map[ComponentType]Component)
	return id
}

// DestroyEntity removes the entity and all its components.
func (w *World) DestroyEntity(id EntityID) {
	delete(w.entities, id)
}

// DestroyAll removes every entity carrying component t and returns how many
// were removed.
func (w *World) DestroyAll(t ComponentType) int {
	ids := w.Query(t)
	for _, id := range ids {
		w.DestroyEntity(id)
	}
	return len(ids)
}

func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.entities) }

// Add attaches c to id, replacing any component of the same type. Adding to
// a dead entity is a no-op.
func (w *World) Add(id EntityID, c Component) {
	if comps, ok := w.entities[id]; ok {
		comps[c.Type()] = c
	}
}

// Get returns the component of type t on id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.entities[id][t]
}

func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns the live entities carrying every listed component type in
// ascending ID order, which is creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	var result []EntityID
next:
	for id, comps := range w.entities {
		for _, t := range types {
			if comps[t] == nil {
				continue next
			}
		}
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}
