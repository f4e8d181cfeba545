package levels

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Generate runs a tengo generator script and converts the `events` array it
// builds into level events. The script sees `level` (its index) and appends
// maps with keys t, species, vx/vy or angle/speed, and track.
//
//	events = append(events, {t: 1.5, species: 0, angle: 90.0, speed: 120.0})
func Generate(src []byte, level int) ([]Event, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("events", []any{}); err != nil {
		return nil, err
	}
	if err := script.Add("level", level); err != nil {
		return nil, err
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, err
	}

	raw := compiled.Get("events").Array()
	out := make([]Event, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: events[%d] is %T, want map", ErrInvalidScript, i, item)
		}
		ev, err := eventFromMap(m)
		if err != nil {
			return nil, fmt.Errorf("%w: events[%d]: %v", ErrInvalidScript, i, err)
		}
		out = append(out, ev)
	}
	return out, nil
}

func eventFromMap(m map[string]any) (Event, error) {
	var ev Event
	var ok bool
	if ev.Time, ok = number(m["t"]); !ok {
		return ev, fmt.Errorf("missing t")
	}
	species, ok := number(m["species"])
	if !ok {
		return ev, fmt.Errorf("missing species")
	}
	ev.Species = int(species)

	vx, hasX := number(m["vx"])
	vy, hasY := number(m["vy"])
	if hasX || hasY {
		ev.Velocity = []float64{vx, vy}
	}
	if a, ok := number(m["angle"]); ok {
		ev.Angle = &a
	}
	if s, ok := number(m["speed"]); ok {
		ev.Speed = s
	}
	if t, ok := m["track"].(bool); ok {
		ev.TrackPlayer = t
	}
	return ev, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
