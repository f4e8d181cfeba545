package component

import "github.com/milk9111/reactor/levels"

// TimelineState is the spawn timeline's position in its level cycle.
type TimelineState int

const (
	// TimelineIdle is the state before the first tick of a level.
	TimelineIdle TimelineState = iota
	// TimelineAdvancing is normal operation.
	TimelineAdvancing
	// TimelineLevelComplete is held for the tick on which a level ran out.
	TimelineLevelComplete
)

func (s TimelineState) String() string {
	switch s {
	case TimelineIdle:
		return "idle"
	case TimelineAdvancing:
		return "advancing"
	case TimelineLevelComplete:
		return "level_complete"
	}
	return "unknown"
}

// SpawnTimeline replays the scripted spawn events of each level.
type SpawnTimeline struct {
	State     TimelineState
	Level     int
	Increment int
	// Timer runs at 1 + Level*RateFactor times real time.
	Timer      float64
	RateFactor float64
	// Cycle counts how many times the script wrapped back to level 0.
	Cycle  int
	Policy levels.Exhaustion
	Levels [][]levels.Event
}

// Current returns the next event to fire.
func (t *SpawnTimeline) Current() (levels.Event, bool) {
	if t == nil || t.Level < 0 || t.Level >= len(t.Levels) {
		return levels.Event{}, false
	}
	evs := t.Levels[t.Level]
	if t.Increment < 0 || t.Increment >= len(evs) {
		return levels.Event{}, false
	}
	return evs[t.Increment], true
}

var SpawnTimelineComponent = NewComponent[SpawnTimeline]()
