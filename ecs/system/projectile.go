package system

import (
	"math"

	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/ecs/entity"
	"github.com/milk9111/reactor/prefabs"
)

// ProjectileSystem steers every projectile straight at the player and
// resolves contact with them.
type ProjectileSystem struct {
	tuning *prefabs.TuningSpec
}

func NewProjectileSystem(tuning *prefabs.TuningSpec) *ProjectileSystem {
	return &ProjectileSystem{tuning: tuning}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	_, frame, ok := ecs.First(w, component.FrameComponent.Kind())
	if !ok {
		return
	}
	_, snap, ok := ecs.First(w, component.PlayerSnapshotComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, tr *component.Transform) {
		offset := snap.Pos.Sub(tr.Pos)
		dist := offset.Length()
		if dist < p.Radius+snap.Radius {
			damagePlayer(w, frame, snap, s.tuning.Player, e, ecs.BodyProjectile)
			entity.Despawn(w, e, ecs.CausePlayerContact)
			return
		}
		step := math.Min(p.Speed*frame.DT, dist)
		tr.Pos = tr.Pos.Add(offset.Mult(step / dist))
	})
}
