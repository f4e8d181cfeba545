package levels

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultScriptLoads(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(s.Levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(s.Levels))
	}
	if s.Policy() != ExhaustWrap {
		t.Fatalf("expected wrap policy, got %q", s.Policy())
	}
	if n := len(s.Levels[0].Events); n != 15 {
		t.Fatalf("expected 15 warmup events, got %d", n)
	}
	if n := len(s.Levels[2].Events); n != 19 {
		t.Fatalf("expected 19 generated spiral events, got %d", n)
	}
	if !s.Levels[0].Events[14].TrackPlayer {
		t.Fatalf("expected last warmup event to track the player")
	}
}

func TestParseValidation(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ok   bool
	}{
		{
			name: "minimal",
			src:  "version: 1\nlevels:\n  - events:\n      - {t: 1, species: 0, velocity: [1, 0]}\n",
			ok:   true,
		},
		{
			name: "angle_launch",
			src:  "version: 1\nlevels:\n  - events:\n      - {t: 1, species: 2, angle: 90, speed: 100}\n",
			ok:   true,
		},
		{
			name: "wrong_version",
			src:  "version: 2\nlevels:\n  - events:\n      - {t: 1, species: 0, velocity: [1, 0]}\n",
		},
		{
			name: "no_levels",
			src:  "version: 1\nlevels: []\n",
		},
		{
			name: "empty_level",
			src:  "version: 1\nlevels:\n  - name: empty\n",
		},
		{
			name: "out_of_order",
			src:  "version: 1\nlevels:\n  - events:\n      - {t: 2, species: 0, velocity: [1, 0]}\n      - {t: 1, species: 0, velocity: [1, 0]}\n",
		},
		{
			name: "zero_velocity",
			src:  "version: 1\nlevels:\n  - events:\n      - {t: 1, species: 0, velocity: [0, 0]}\n",
		},
		{
			name: "angle_without_speed",
			src:  "version: 1\nlevels:\n  - events:\n      - {t: 1, species: 0, angle: 45}\n",
		},
		{
			name: "velocity_and_angle",
			src:  "version: 1\nlevels:\n  - events:\n      - {t: 1, species: 0, angle: 45, speed: 3, velocity: [1, 1]}\n",
		},
		{
			name: "negative_species",
			src:  "version: 1\nlevels:\n  - events:\n      - {t: 1, species: -1, velocity: [1, 0]}\n",
		},
		{
			name: "bad_policy",
			src:  "version: 1\nexhaustion: loop\nlevels:\n  - events:\n      - {t: 1, species: 0, velocity: [1, 0]}\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.src), nil)
			if c.ok && err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidScript) {
				t.Fatalf("expected ErrInvalidScript, got %v", err)
			}
		})
	}
}

func TestLaunch(t *testing.T) {
	angle := 90.0
	cases := []struct {
		name  string
		ev    Event
		dirX  float64
		dirY  float64
		speed float64
	}{
		{"velocity", Event{Velocity: []float64{3, 4}}, 0.6, 0.8, 5},
		{"angle", Event{Angle: &angle, Speed: 120}, 0, 1, 120},
		{"zero_velocity", Event{Velocity: []float64{0, 0}}, 0, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir, speed := c.ev.Launch()
			if math.Abs(dir.X-c.dirX) > 1e-9 || math.Abs(dir.Y-c.dirY) > 1e-9 {
				t.Fatalf("dir = %v, want (%v, %v)", dir, c.dirX, c.dirY)
			}
			if math.Abs(speed-c.speed) > 1e-9 {
				t.Fatalf("speed = %v, want %v", speed, c.speed)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	src := []byte(`
for i := 0; i < 3; i++ {
	events = append(events, {t: i * 0.5, species: level, vx: 10, vy: i, track: i == 2})
}
`)
	events, err := Generate(src, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	last := events[2]
	if last.Time != 1.0 || last.Species != 4 || !last.TrackPlayer {
		t.Fatalf("unexpected last event %+v", last)
	}
	if len(last.Velocity) != 2 || last.Velocity[0] != 10 || last.Velocity[1] != 2 {
		t.Fatalf("unexpected velocity %v", last.Velocity)
	}
}

func TestGenerateRejectsNonMap(t *testing.T) {
	_, err := Generate([]byte(`events = append(events, 5)`), 0)
	if !errors.Is(err, ErrInvalidScript) {
		t.Fatalf("expected ErrInvalidScript, got %v", err)
	}
}

func TestMarshalRoundTripsGeneratedLevels(t *testing.T) {
	s, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	data, err := s.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	again, err := Parse(data, nil)
	if err != nil {
		t.Fatalf("re-parse of inlined script: %v", err)
	}
	if len(again.Levels[2].Events) != len(s.Levels[2].Events) {
		t.Fatalf("generated level lost events on export")
	}
}
