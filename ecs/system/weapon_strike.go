package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/ecs/entity"
	"github.com/milk9111/reactor/prefabs"
)

// WeaponStrikeSystem removes every body touched by an active weapon and
// awards score for it.
type WeaponStrikeSystem struct {
	tuning *prefabs.TuningSpec
}

func NewWeaponStrikeSystem(tuning *prefabs.TuningSpec) *WeaponStrikeSystem {
	return &WeaponStrikeSystem{tuning: tuning}
}

func (s *WeaponStrikeSystem) Update(w *ecs.World) {
	_, snap, ok := ecs.First(w, component.PlayerSnapshotComponent.Kind())
	if !ok || !snap.WeaponActive || len(snap.Colliders) == 0 {
		return
	}
	_, score, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return
	}
	reach := s.tuning.Weapon.ColliderRadius * snap.WeaponScale

	ecs.ForEach2(w, component.MoleculeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.Molecule, tr *component.Transform) {
		if !struck(tr.Pos, m.Radius+reach, snap.Colliders) {
			return
		}
		award(w, score, e, ecs.BodyMolecule, chem.Points(m.Species))
	})

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, tr *component.Transform) {
		if !struck(tr.Pos, p.Radius+reach, snap.Colliders) {
			return
		}
		award(w, score, e, ecs.BodyProjectile, s.tuning.Weapon.ProjectilePoints)
	})
}

// struck reports whether any collider sample lies within reach of pos. It
// stops at the first hit.
func struck(pos cp.Vector, reach float64, colliders []cp.Vector) bool {
	for _, c := range colliders {
		if pos.Distance(c) <= reach {
			return true
		}
	}
	return false
}

func award(w *ecs.World, score *component.Score, e ecs.Entity, body ecs.BodyKind, points int) {
	if !entity.Despawn(w, e, ecs.CauseWeapon) {
		return
	}
	score.Points += points
	ecs.Emit(w, ecs.EventScore, ecs.ScoreEvent{Delta: points, Entity: e, Body: body})
}
