package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/prefabs"
)

// NewArena creates the reactor bounds centered on the origin.
func NewArena(w *ecs.World, spec prefabs.ArenaSpec) (ecs.Entity, error) {
	halfW := spec.Width / 2
	halfH := spec.Height / 2

	e := ecs.CreateEntity(w)
	arena := &component.Arena{
		Bounds: cp.BB{L: -halfW, B: -halfH, R: halfW, T: halfH},
		Insets: component.Insets{
			Left:   spec.Inset.Left,
			Right:  spec.Inset.Right,
			Top:    spec.Inset.Top,
			Bottom: spec.Inset.Bottom,
		},
		Emitter: cp.Vector{X: spec.Emitter.X, Y: spec.Emitter.Y},
	}
	if err := ecs.Add(w, e, component.ArenaComponent.Kind(), arena); err != nil {
		return 0, fmt.Errorf("arena: add arena: %w", err)
	}
	return e, nil
}
