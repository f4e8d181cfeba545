package levels

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
)

// Recorder builds a script from spawns captured live. Times are relative to
// the start of the level being recorded.
type Recorder struct {
	clock  float64
	levels []Level
}

func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Reset()
	return r
}

// Reset discards the recording and opens one empty level.
func (r *Recorder) Reset() {
	r.clock = 0
	r.levels = []Level{{Name: "recorded-1"}}
}

// Advance moves the level clock forward.
func (r *Recorder) Advance(dt float64) {
	r.clock += dt
}

// Capture appends a spawn at the current time to the open level.
func (r *Recorder) Capture(s chem.Species, vel cp.Vector, track bool) Event {
	ev := Event{
		Time:        round(r.clock, 4),
		Species:     int(s),
		Velocity:    []float64{round(vel.X, 1), round(vel.Y, 1)},
		TrackPlayer: track,
	}
	cur := &r.levels[len(r.levels)-1]
	cur.Events = append(cur.Events, ev)
	return ev
}

// NextLevel closes the open level and restarts the clock.
func (r *Recorder) NextLevel() {
	r.clock = 0
	r.levels = append(r.levels, Level{Name: fmt.Sprintf("recorded-%d", len(r.levels)+1)})
}

// Level is the 1-based index of the open level and how many events it holds.
func (r *Recorder) Level() (int, int) {
	return len(r.levels), len(r.levels[len(r.levels)-1].Events)
}

// Script returns the recording, skipping levels with no events.
func (r *Recorder) Script() *Script {
	s := &Script{Version: CurrentVersion, Exhaustion: ExhaustWrap}
	for _, l := range r.levels {
		if len(l.Events) > 0 {
			l.Events = append([]Event(nil), l.Events...)
			s.Levels = append(s.Levels, l)
		}
	}
	return s
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
