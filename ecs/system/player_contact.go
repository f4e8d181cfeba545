package system

import (
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/ecs/entity"
	"github.com/milk9111/reactor/prefabs"
)

// PlayerContactSystem destroys molecules that touch the player and raises
// damage for them.
type PlayerContactSystem struct {
	tuning *prefabs.TuningSpec
}

func NewPlayerContactSystem(tuning *prefabs.TuningSpec) *PlayerContactSystem {
	return &PlayerContactSystem{tuning: tuning}
}

func (s *PlayerContactSystem) Update(w *ecs.World) {
	_, frame, ok := ecs.First(w, component.FrameComponent.Kind())
	if !ok {
		return
	}
	_, snap, ok := ecs.First(w, component.PlayerSnapshotComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.MoleculeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.Molecule, tr *component.Transform) {
		if tr.Pos.Distance(snap.Pos) > snap.Radius+m.Radius {
			return
		}
		damagePlayer(w, frame, snap, s.tuning.Player, e, ecs.BodyMolecule)
		entity.Despawn(w, e, ecs.CausePlayerContact)
	})
}
