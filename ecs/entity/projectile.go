package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/prefabs"
)

// NewProjectile adds a homing projectile at pos.
func NewProjectile(w *ecs.World, pos cp.Vector, spec prefabs.ProjectileSpec, cause ecs.Cause) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos, Scale: 1}); err != nil {
		return 0, fmt.Errorf("projectile: add transform: %w", err)
	}
	p := &component.Projectile{Radius: spec.Radius, Speed: spec.Speed}
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), p); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	ecs.Emit(w, ecs.EventSpawned, ecs.SpawnEvent{
		Entity: e,
		Body:   ecs.BodyProjectile,
		Pos:    pos,
		Radius: p.Radius,
		Cause:  cause,
	})
	return e, nil
}
