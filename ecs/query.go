package ecs

import "github.com/milk9111/reactor/ecs/component"

// ForEach calls fn for every entity that has a component of kind. The entity
// list is captured up front, so fn may add, remove or destroy freely; entities
// destroyed before their turn are skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	for _, id := range s.ids() {
		v, ok := s.get(id)
		if !ok {
			continue
		}
		fn(w.entities.handle(id), v)
	}
}

// ForEach2 iterates entities that carry both kinds, in the dense order of a.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, id := range sa.ids() {
		a, ok := sa.get(id)
		if !ok {
			continue
		}
		b, ok := sb.get(id)
		if !ok {
			continue
		}
		fn(w.entities.handle(id), a, b)
	}
}

// Query returns the entities that carry every kind, ordered by the dense order
// of the first kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, s)
	}

	var out []Entity
	for _, id := range stores[0].ids() {
		match := true
		for _, s := range stores[1:] {
			if !s.has(id) {
				match = false
				break
			}
		}
		if match {
			out = append(out, w.entities.handle(id))
		}
	}
	return out
}

// First returns the first entity carrying kind. It is how systems find
// singleton components such as the arena or the frame clock.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	s := storeFor(w, kind, false)
	if s == nil || s.len() == 0 {
		return 0, nil, false
	}
	id := s.denseEntities[0]
	return w.entities.handle(id), s.denseValues[0], true
}

// IntersectEntities returns the entities present in both kinds.
func IntersectEntities[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B]) []Entity {
	var out []Entity
	ForEach2(w, ka, kb, func(e Entity, _ *A, _ *B) {
		out = append(out, e)
	})
	return out
}
