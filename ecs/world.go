package ecs

import (
	"sort"

	"github.com/milk9111/skybird/ecs/component"
)

// World owns entities and their component stores. A World is the whole
// simulation context: the host loop owns it and hands it to every system.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e and all of its components.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether e refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity in creation-slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

// Get returns the component of the given kind attached to e.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !kind.Valid() {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e).(*T)
	return v, ok
}

// Has reports whether e carries a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !kind.Valid() {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

// Remove detaches the component of the given kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !kind.Valid() {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

// First returns the lowest-slot live entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	ents := Query(w, kind.ID())
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Query returns the live entities carrying every listed component, sorted
// by slot id so callers iterate in creation order.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(ids))
	for _, id := range ids {
		s := w.store(id, false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	var out []Entity
	for _, e := range sets[0].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		all := true
		for _, s := range sets[1:] {
			if !s.Has(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// ForEach calls fn for every entity carrying kind.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	for _, e := range Query(w, ka.ID()) {
		a, ok := Get(w, e, ka)
		if ok {
			fn(e, a)
		}
	}
}

// ForEach2 calls fn for every entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range Query(w, ka.ID(), kb.ID()) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

// ForEach3 calls fn for every entity carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range Query(w, ka.ID(), kb.ID(), kc.ID()) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// ForEach4 calls fn for every entity carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range Query(w, ka.ID(), kb.ID(), kc.ID(), kd.ID()) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}
