package system

import (
	"log"

	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/ecs/entity"
	"github.com/milk9111/reactor/levels"
	"github.com/milk9111/reactor/prefabs"
)

// SpawnSystem advances the spawn timeline and emits the scripted molecules
// from the arena's aperture.
type SpawnSystem struct {
	tuning *prefabs.TuningSpec
}

func NewSpawnSystem(tuning *prefabs.TuningSpec) *SpawnSystem {
	return &SpawnSystem{tuning: tuning}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	_, tl, ok := ecs.First(w, component.SpawnTimelineComponent.Kind())
	if !ok {
		return
	}
	_, frame, ok := ecs.First(w, component.FrameComponent.Kind())
	if !ok {
		return
	}
	_, arena, ok := ecs.First(w, component.ArenaComponent.Kind())
	if !ok {
		return
	}

	if tl.State != component.TimelineAdvancing {
		tl.State = component.TimelineAdvancing
	}
	tl.Timer += frame.DT * (1 + float64(tl.Level)*tl.RateFactor)

	ev, ok := tl.Current()
	if !ok || tl.Timer <= ev.Time {
		return
	}

	origin := arena.Emitter
	dir, speed := ev.Launch()
	if ev.TrackPlayer {
		// A player standing on the emitter keeps the scripted direction.
		if _, snap, ok := ecs.First(w, component.PlayerSnapshotComponent.Kind()); ok {
			if offset := snap.Pos.Sub(origin); offset.LengthSq() > 0 {
				dir = offset.Normalize()
			}
		}
	}

	spec := entity.MoleculeSpec{
		Pos:      origin,
		Vel:      dir.Mult(speed),
		Species:  ev.SpeciesID(),
		Cooldown: s.tuning.SpawnCooldown,
	}
	if _, err := entity.NewMolecule(w, spec, ecs.CauseTimeline); err != nil {
		log.Printf("spawn: level %d event %d: %v", tl.Level, tl.Increment, err)
	}

	tl.Increment++
	if tl.Increment >= len(tl.Levels[tl.Level]) {
		completeLevel(w, tl)
	}
}

func completeLevel(w *ecs.World, tl *component.SpawnTimeline) {
	tl.Increment = 0
	tl.Timer = 0
	tl.State = component.TimelineLevelComplete

	next := tl.Level + 1
	if next >= len(tl.Levels) {
		switch tl.Policy {
		case levels.ExhaustHold:
			next = tl.Level
		default:
			next = 0
			tl.Cycle++
		}
	}
	log.Printf("spawn: level %d complete, next level %d (cycle %d)", tl.Level, next, tl.Cycle)
	tl.Level = next
	ecs.Emit(w, ecs.EventLevel, ecs.LevelEvent{Level: tl.Level, Cycle: tl.Cycle})
}
