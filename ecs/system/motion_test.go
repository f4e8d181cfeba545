package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/prefabs"
)

func TestMotionIntegratesAndDecays(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	w := newTestWorld(t, tuning, 0.1)
	e := addMolecule(t, w, chem.TierZero, cp.Vector{}, cp.Vector{X: 30, Y: -20})
	m, tr := molecule(t, w, e)
	m.Cooldown = 0.5
	m.Reacted = true

	NewMotionSystem(tuning).Update(w)

	if !near(tr.Pos.X, 3) || !near(tr.Pos.Y, -2) {
		t.Fatalf("expected position (3,-2), got %v", tr.Pos)
	}
	if !near(m.Cooldown, 0.4) {
		t.Fatalf("expected cooldown 0.4, got %v", m.Cooldown)
	}
	if m.Reacted {
		t.Fatalf("reacted flag should be cleared")
	}
	if !near(m.Growth, 0.1*tuning.GrowthRate) {
		t.Fatalf("expected growth %v, got %v", 0.1*tuning.GrowthRate, m.Growth)
	}
}

func TestMotionCooldownBounds(t *testing.T) {
	tuning := prefabs.DefaultTuning()

	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"floors_at_zero", 0.05, 0},
		{"caps_at_max", component.CooldownMax + 5, component.CooldownMax},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, tuning, 0.1)
			e := addMolecule(t, w, chem.TierZero, cp.Vector{}, cp.Vector{})
			m, _ := molecule(t, w, e)
			m.Cooldown = c.in

			NewMotionSystem(tuning).Update(w)

			if !near(m.Cooldown, c.want) {
				t.Fatalf("expected cooldown %v, got %v", c.want, m.Cooldown)
			}
		})
	}
}

func TestMotionReflectsOnlyOutwardVelocity(t *testing.T) {
	tuning := prefabs.DefaultTuning()

	cases := []struct {
		name  string
		vel   cp.Vector
		wantX float64
	}{
		{"outward_reflects", cp.Vector{X: 50}, -50},
		{"inward_kept", cp.Vector{X: -5}, -5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, tuning, 0.1)
			_, arena, _ := ecs.First(w, component.ArenaComponent.Kind())
			in := arena.Interior(chem.RadiusOf(chem.TierZero))
			e := addMolecule(t, w, chem.TierZero, cp.Vector{X: in.R + 2}, c.vel)

			NewMotionSystem(tuning).Update(w)

			m, _ := molecule(t, w, e)
			if m.Vel.X != c.wantX {
				t.Fatalf("expected vx %v, got %v", c.wantX, m.Vel.X)
			}
		})
	}
}

func TestConfineClampsIntoInterior(t *testing.T) {
	tuning := prefabs.DefaultTuning()

	cases := []struct {
		name string
		off  cp.Vector
	}{
		{"right", cp.Vector{X: 1}},
		{"left", cp.Vector{X: -1}},
		{"top", cp.Vector{Y: 1}},
		{"bottom", cp.Vector{Y: -1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, tuning, 0)
			_, arena, _ := ecs.First(w, component.ArenaComponent.Kind())
			r := chem.RadiusOf(chem.TierFour)
			in := arena.Interior(r)

			pos := cp.Vector{}
			want := cp.Vector{}
			switch {
			case c.off.X > 0:
				pos.X, want.X = in.R+40, in.R
			case c.off.X < 0:
				pos.X, want.X = in.L-40, in.L
			case c.off.Y > 0:
				pos.Y, want.Y = in.T+40, in.T
			default:
				pos.Y, want.Y = in.B-40, in.B
			}
			e := addMolecule(t, w, chem.TierFour, pos, cp.Vector{X: 7, Y: 7})

			NewConfineSystem().Update(w)

			m, tr := molecule(t, w, e)
			if tr.Pos != want {
				t.Fatalf("expected %v, got %v", want, tr.Pos)
			}
			if m.Vel != (cp.Vector{X: 7, Y: 7}) {
				t.Fatalf("confinement must not touch velocity, got %v", m.Vel)
			}
		})
	}
}

func TestTelemetryAccumulatesSurvival(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	w := newTestWorld(t, tuning, 0.25)
	sys := NewTelemetrySystem()
	for i := 0; i < 4; i++ {
		sys.Update(w)
	}
	_, score, _ := ecs.First(w, component.ScoreComponent.Kind())
	if !near(score.TimeSurvived, 1) {
		t.Fatalf("expected 1s survived, got %v", score.TimeSurvived)
	}
}
