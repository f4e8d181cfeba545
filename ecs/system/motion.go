package system

import (
	"math"

	"github.com/milk9111/reactor/common"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/prefabs"
)

// MotionSystem runs after the pair pass: it clears the reacted flag, decays
// cooldowns, ramps growth, integrates positions and reflects velocities at
// the arena edge. Positions are clamped later by ConfineSystem.
type MotionSystem struct {
	tuning *prefabs.TuningSpec
}

func NewMotionSystem(tuning *prefabs.TuningSpec) *MotionSystem {
	return &MotionSystem{tuning: tuning}
}

func (s *MotionSystem) Update(w *ecs.World) {
	_, frame, ok := ecs.First(w, component.FrameComponent.Kind())
	if !ok {
		return
	}
	_, arena, hasArena := ecs.First(w, component.ArenaComponent.Kind())
	dt := frame.DT

	ecs.ForEach2(w, component.MoleculeComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, m *component.Molecule, tr *component.Transform) {
		m.Reacted = false
		m.Cooldown = common.Clamp(m.Cooldown-dt, 0, component.CooldownMax)
		if s.tuning.GrowthRate > 0 {
			m.Growth = math.Min(1, m.Growth+dt*s.tuning.GrowthRate)
		} else {
			m.Growth = 1
		}

		tr.Pos = tr.Pos.Add(m.Vel.Mult(dt))
		if !hasArena {
			return
		}
		in := arena.Interior(m.Radius)
		if (tr.Pos.X > in.R && m.Vel.X > 0) || (tr.Pos.X < in.L && m.Vel.X < 0) {
			m.Vel.X = -m.Vel.X
		}
		if (tr.Pos.Y > in.T && m.Vel.Y > 0) || (tr.Pos.Y < in.B && m.Vel.Y < 0) {
			m.Vel.Y = -m.Vel.Y
		}
	})
}
