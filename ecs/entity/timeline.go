package entity

import (
	"fmt"

	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/levels"
)

// NewSpawnTimeline creates a fresh timeline at level 0 for script.
func NewSpawnTimeline(w *ecs.World, script *levels.Script, rateFactor float64) (ecs.Entity, error) {
	if script == nil {
		return 0, fmt.Errorf("spawn timeline: nil script")
	}
	e := ecs.CreateEntity(w)
	tl := &component.SpawnTimeline{
		State:      component.TimelineIdle,
		RateFactor: rateFactor,
		Policy:     script.Policy(),
		Levels:     script.Events(),
	}
	if err := ecs.Add(w, e, component.SpawnTimelineComponent.Kind(), tl); err != nil {
		return 0, fmt.Errorf("spawn timeline: add timeline: %w", err)
	}
	return e, nil
}
