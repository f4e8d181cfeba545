package entity

import (
	"fmt"

	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
)

// NewClock creates the entity holding the frame clock and the score.
func NewClock(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.FrameComponent.Kind(), &component.Frame{}); err != nil {
		return 0, fmt.Errorf("clock: add frame: %w", err)
	}
	if err := ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{}); err != nil {
		return 0, fmt.Errorf("clock: add score: %w", err)
	}
	return e, nil
}

// NewPlayerProxy creates the entity the engine copies the player snapshot
// into every frame.
func NewPlayerProxy(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerSnapshotComponent.Kind(), &component.PlayerSnapshot{}); err != nil {
		return 0, fmt.Errorf("player proxy: add snapshot: %w", err)
	}
	return e, nil
}
