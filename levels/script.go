package levels

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the only level script version this build understands.
const CurrentVersion = 1

var ErrInvalidScript = errors.New("levels: invalid script")

// Exhaustion decides what the timeline does after the last level finishes.
type Exhaustion string

const (
	// ExhaustWrap restarts from level 0.
	ExhaustWrap Exhaustion = "wrap"
	// ExhaustHold replays the last level forever.
	ExhaustHold Exhaustion = "hold"
)

// Script is a versioned set of levels, each an ordered list of timed spawns.
type Script struct {
	Version    int        `yaml:"version"`
	Exhaustion Exhaustion `yaml:"exhaustion,omitempty"`
	Levels     []Level    `yaml:"levels"`
}

// Level is one designer-authored spawn sequence. Events are either listed
// inline or produced by a generator script.
type Level struct {
	Name   string  `yaml:"name,omitempty"`
	Script string  `yaml:"script,omitempty"`
	Events []Event `yaml:"events,omitempty"`
}

// Event spawns one molecule once the level timer passes Time. The launch is
// either a velocity vector or an angle in degrees plus a speed. With
// TrackPlayer set only the speed is used and the molecule is aimed at the
// player.
type Event struct {
	Time        float64   `yaml:"t"`
	Species     int       `yaml:"species"`
	Velocity    []float64 `yaml:"velocity,flow,omitempty"`
	Angle       *float64  `yaml:"angle,omitempty"`
	Speed       float64   `yaml:"speed,omitempty"`
	TrackPlayer bool      `yaml:"track,omitempty"`
}

// Launch returns the scripted unit direction and speed.
func (e Event) Launch() (cp.Vector, float64) {
	if len(e.Velocity) == 2 {
		v := cp.Vector{X: e.Velocity[0], Y: e.Velocity[1]}
		if v.LengthSq() == 0 {
			return cp.Vector{}, 0
		}
		return v.Normalize(), v.Length()
	}
	if e.Angle != nil {
		return cp.ForAngle(*e.Angle * math.Pi / 180), e.Speed
	}
	return cp.Vector{}, 0
}

// SpeciesID returns the event's species.
func (e Event) SpeciesID() chem.Species {
	return chem.Species(e.Species)
}

// Policy returns the exhaustion policy, defaulting to wrap.
func (s *Script) Policy() Exhaustion {
	if s == nil || s.Exhaustion == "" {
		return ExhaustWrap
	}
	return s.Exhaustion
}

// Events returns the per-level event lists.
func (s *Script) Events() [][]Event {
	if s == nil {
		return nil
	}
	out := make([][]Event, len(s.Levels))
	for i, l := range s.Levels {
		out[i] = append([]Event(nil), l.Events...)
	}
	return out
}

// Load reads, expands and validates the named script.
func Load(name string) (*Script, error) {
	data, err := ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	s, err := Parse(data, ReadFile)
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	return s, nil
}

// Default loads the shipped level script.
func Default() (*Script, error) {
	return Load(DefaultScript)
}

// Parse decodes a YAML script. Levels that name a generator script are
// expanded by reading it through read.
func Parse(data []byte, read func(string) ([]byte, error)) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	for i := range s.Levels {
		l := &s.Levels[i]
		if l.Script == "" {
			continue
		}
		if len(l.Events) > 0 {
			return nil, fmt.Errorf("%w: level %d has both events and script %s", ErrInvalidScript, i, l.Script)
		}
		if read == nil {
			return nil, fmt.Errorf("%w: level %d needs script %s but no reader was given", ErrInvalidScript, i, l.Script)
		}
		src, err := read(l.Script)
		if err != nil {
			return nil, fmt.Errorf("read generator %s: %w", l.Script, err)
		}
		events, err := Generate(src, i)
		if err != nil {
			return nil, fmt.Errorf("generator %s: %w", l.Script, err)
		}
		l.Events = events
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal encodes the script back to YAML with every level inlined.
func (s *Script) Marshal() ([]byte, error) {
	out := Script{Version: s.Version, Exhaustion: s.Exhaustion}
	for _, l := range s.Levels {
		out.Levels = append(out.Levels, Level{Name: l.Name, Events: l.Events})
	}
	return yaml.Marshal(&out)
}

// Validate checks the authoring rules every timeline relies on.
func (s *Script) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("%w: version %d, want %d", ErrInvalidScript, s.Version, CurrentVersion)
	}
	switch s.Exhaustion {
	case "", ExhaustWrap, ExhaustHold:
	default:
		return fmt.Errorf("%w: unknown exhaustion policy %q", ErrInvalidScript, s.Exhaustion)
	}
	if len(s.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidScript)
	}
	for i, l := range s.Levels {
		if len(l.Events) == 0 {
			return fmt.Errorf("%w: level %d (%s) has no events", ErrInvalidScript, i, l.Name)
		}
		prev := 0.0
		for j, e := range l.Events {
			if err := e.validate(prev); err != nil {
				return fmt.Errorf("%w: level %d event %d: %v", ErrInvalidScript, i, j, err)
			}
			if !e.SpeciesID().Valid() {
				log.Printf("levels: level %d event %d uses unknown species %d, default tier applies", i, j, e.Species)
			}
			prev = e.Time
		}
	}
	return nil
}

func (e Event) validate(prev float64) error {
	if e.Time < 0 {
		return fmt.Errorf("negative time %v", e.Time)
	}
	if e.Time < prev {
		return fmt.Errorf("time %v before previous event at %v", e.Time, prev)
	}
	if e.Species < 0 {
		return fmt.Errorf("negative species %d", e.Species)
	}
	hasVel := len(e.Velocity) > 0
	if hasVel && e.Angle != nil {
		return fmt.Errorf("both velocity and angle given")
	}
	switch {
	case hasVel:
		if len(e.Velocity) != 2 {
			return fmt.Errorf("velocity needs 2 components, got %d", len(e.Velocity))
		}
		if e.Velocity[0] == 0 && e.Velocity[1] == 0 {
			return fmt.Errorf("zero velocity")
		}
	case e.Angle != nil:
		if e.Speed <= 0 {
			return fmt.Errorf("angle launch needs a positive speed")
		}
	default:
		return fmt.Errorf("no velocity or angle")
	}
	return nil
}
