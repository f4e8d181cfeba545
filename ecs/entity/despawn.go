package entity

import (
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
)

// Despawn removes a body and announces it. It reports false if e was
// already gone, so a body removed twice in one frame is announced once.
func Despawn(w *ecs.World, e ecs.Entity, cause ecs.Cause) bool {
	if !ecs.IsAlive(w, e) {
		return false
	}
	evt := ecs.DespawnEvent{Entity: e, Cause: cause}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		evt.Pos = t.Pos
	}
	if m, ok := ecs.Get(w, e, component.MoleculeComponent.Kind()); ok {
		evt.Body = ecs.BodyMolecule
		evt.Species = m.Species
	} else {
		evt.Body = ecs.BodyProjectile
	}
	ecs.DestroyEntity(w, e)
	ecs.Emit(w, ecs.EventDespawned, evt)
	return true
}
