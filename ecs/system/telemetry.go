package system

import (
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
)

// TelemetrySystem accumulates survival time.
type TelemetrySystem struct{}

func NewTelemetrySystem() *TelemetrySystem { return &TelemetrySystem{} }

func (s *TelemetrySystem) Update(w *ecs.World) {
	_, frame, ok := ecs.First(w, component.FrameComponent.Kind())
	if !ok {
		return
	}
	_, score, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return
	}
	score.TimeSurvived += frame.DT
}
