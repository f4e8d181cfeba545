package system

import (
	"github.com/milk9111/reactor/common"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
)

// ConfineSystem clamps molecule positions into the arena interior. Velocity
// is left alone; reflection already happened during integration.
type ConfineSystem struct{}

func NewConfineSystem() *ConfineSystem { return &ConfineSystem{} }

func (s *ConfineSystem) Update(w *ecs.World) {
	_, arena, ok := ecs.First(w, component.ArenaComponent.Kind())
	if !ok {
		return
	}
	ecs.ForEach2(w, component.MoleculeComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, m *component.Molecule, tr *component.Transform) {
		in := arena.Interior(m.Radius)
		tr.Pos.X = common.Clamp(tr.Pos.X, in.L, in.R)
		tr.Pos.Y = common.Clamp(tr.Pos.Y, in.B, in.T)
	})
}
