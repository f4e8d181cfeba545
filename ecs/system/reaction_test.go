package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/prefabs"
)

func TestElasticContact(t *testing.T) {
	tuning := prefabs.DefaultTuning()

	cases := []struct {
		name   string
		sa, sb chem.Species
		va, vb cp.Vector
	}{
		{"equal_mass_head_on", chem.TierOne, chem.TierOne, cp.Vector{X: 10}, cp.Vector{X: -10}},
		{"unequal_mass", chem.TierOne, chem.TierThree, cp.Vector{X: 40, Y: 5}, cp.Vector{X: -10, Y: -3}},
		{"one_at_rest", chem.TierThree, chem.TierFour, cp.Vector{X: 25}, cp.Vector{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, tuning, 0)
			ra, rb := chem.RadiusOf(c.sa), chem.RadiusOf(c.sb)
			gap := (ra + rb) * 0.8
			a := addMolecule(t, w, c.sa, cp.Vector{X: -gap / 2}, c.va)
			b := addMolecule(t, w, c.sb, cp.Vector{X: gap / 2}, c.vb)

			ma, ta := molecule(t, w, a)
			mb, tb := molecule(t, w, b)
			before := c.va.Mult(ma.Mass).Add(c.vb.Mult(mb.Mass))

			NewReactionSystem(tuning, testRNG()).Update(w)

			after := ma.Vel.Mult(ma.Mass).Add(mb.Vel.Mult(mb.Mass))
			if after.Distance(before) > 1e-9 {
				t.Fatalf("momentum changed: before %v after %v", before, after)
			}
			if d := ta.Pos.Distance(tb.Pos); d < 0.99*(ra+rb) {
				t.Fatalf("centers %v apart, want at least %v", d, 0.99*(ra+rb))
			}
		})
	}
}

func TestEqualMassHeadOnSwapsVelocities(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	w := newTestWorld(t, tuning, 0)
	a := addMolecule(t, w, chem.TierOne, cp.Vector{X: -7}, cp.Vector{X: 10})
	b := addMolecule(t, w, chem.TierOne, cp.Vector{X: 7}, cp.Vector{X: -10})

	NewReactionSystem(tuning, testRNG()).Update(w)

	ma, _ := molecule(t, w, a)
	mb, _ := molecule(t, w, b)
	if !near(ma.Vel.X, -10) || !near(mb.Vel.X, 10) {
		t.Fatalf("expected swapped velocities, got %v and %v", ma.Vel, mb.Vel)
	}
}

func TestCoincidentCentersSeparate(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	w := newTestWorld(t, tuning, 0)
	a := addMolecule(t, w, chem.TierOne, cp.Vector{}, cp.Vector{})
	b := addMolecule(t, w, chem.TierOne, cp.Vector{}, cp.Vector{})

	NewReactionSystem(tuning, testRNG()).Update(w)

	_, ta := molecule(t, w, a)
	_, tb := molecule(t, w, b)
	want := tuning.Separation * 16
	if !near(ta.Pos.Distance(tb.Pos), want) {
		t.Fatalf("expected centers %v apart, got %v", want, ta.Pos.Distance(tb.Pos))
	}
	if ta.Pos.X <= tb.Pos.X {
		t.Fatalf("expected first body pushed along +X, got %v and %v", ta.Pos, tb.Pos)
	}
}

func TestReactionCooldownGating(t *testing.T) {
	tuning := prefabs.DefaultTuning()

	cases := []struct {
		name      string
		cooldown  float64
		wantReact bool
	}{
		{"ready", 0, true},
		{"cooling", 0.5, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, tuning, 0)
			a := addMolecule(t, w, chem.TierTwo, cp.Vector{X: -5}, cp.Vector{})
			addMolecule(t, w, chem.TierTwo, cp.Vector{X: 5}, cp.Vector{})
			ma, _ := molecule(t, w, a)
			ma.Cooldown = c.cooldown
			w.Events().Drain()

			NewReactionSystem(tuning, testRNG()).Update(w)

			spawned := eventsOf(w, ecs.EventSpawned)
			if c.wantReact {
				if ecs.IsAlive(w, a) {
					t.Fatalf("reactant should be destroyed")
				}
				if len(spawned) != 1 {
					t.Fatalf("expected one product, got %d", len(spawned))
				}
				got := spawned[0].Data.(ecs.SpawnEvent)
				if got.Species != chem.TierFour || got.Cause != ecs.CauseReaction {
					t.Fatalf("unexpected product %+v", got)
				}
				return
			}
			if !ecs.IsAlive(w, a) || len(spawned) != 0 {
				t.Fatalf("cooling molecules must not react")
			}
		})
	}
}

func TestReactionProductsWaitOutCooldown(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	w := newTestWorld(t, tuning, 0)
	addMolecule(t, w, chem.TierZero, cp.Vector{X: -3}, cp.Vector{})
	addMolecule(t, w, chem.TierOne, cp.Vector{X: 3}, cp.Vector{})
	reaction := NewReactionSystem(tuning, testRNG())
	motion := NewMotionSystem(tuning)
	_, frame, _ := ecs.First(w, component.FrameComponent.Kind())

	// touch puts the two products back in contact at rest.
	touch := func() {
		t.Helper()
		list := collectMolecules(w)
		if len(list) != 2 {
			t.Fatalf("expected two products, got %d", len(list))
		}
		for i, ref := range list {
			ref.m.Vel = cp.Vector{}
			ref.tr.Pos = cp.Vector{X: float64(4*i - 2)}
		}
	}

	reaction.Update(w)
	for _, ref := range collectMolecules(w) {
		if ref.m.Species != chem.TierZero {
			t.Fatalf("expected tier-zero products, got %v", ref.m.Species)
		}
	}

	frame.DT = 0.1
	motion.Update(w)
	touch()
	w.Events().Drain()
	reaction.Update(w)

	if n := ecs.Count(w, component.ProjectileComponent.Kind()); n != 0 {
		t.Fatalf("products inside their cooldown window reacted into %d projectiles", n)
	}
	if n := len(eventsOf(w, ecs.EventDespawned)); n != 0 {
		t.Fatalf("expected no despawns inside the window, got %d", n)
	}

	frame.DT = tuning.SpawnCooldown
	motion.Update(w)
	touch()
	reaction.Update(w)

	if n := ecs.Count(w, component.ProjectileComponent.Kind()); n != 1 {
		t.Fatalf("expected the cooled products to react into one projectile, got %d", n)
	}
}

func TestReactionProducts(t *testing.T) {
	tuning := prefabs.DefaultTuning()

	cases := []struct {
		name            string
		sa, sb          chem.Species
		wantMolecules   int
		wantProjectiles int
	}{
		{"zero_zero_projectile", chem.TierZero, chem.TierZero, 0, 1},
		{"zero_one_split", chem.TierZero, chem.TierOne, 2, 0},
		{"one_four_volley", chem.TierOne, chem.TierFour, 0, 4},
		{"inert", chem.TierThree, chem.TierThree, 2, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t, tuning, 0)
			addMolecule(t, w, c.sa, cp.Vector{X: -3}, cp.Vector{})
			addMolecule(t, w, c.sb, cp.Vector{X: 3}, cp.Vector{})

			NewReactionSystem(tuning, testRNG()).Update(w)

			if got := ecs.Count(w, component.MoleculeComponent.Kind()); got != c.wantMolecules {
				t.Fatalf("expected %d molecules, got %d", c.wantMolecules, got)
			}
			if got := ecs.Count(w, component.ProjectileComponent.Kind()); got != c.wantProjectiles {
				t.Fatalf("expected %d projectiles, got %d", c.wantProjectiles, got)
			}
			ecs.ForEach(w, component.MoleculeComponent.Kind(), func(_ ecs.Entity, m *component.Molecule) {
				if c.name == "inert" {
					return
				}
				if m.Reacted || m.Cooldown != tuning.SpawnCooldown {
					t.Fatalf("product should start unreacted with spawn cooldown, got %+v", m)
				}
				if !near(m.Vel.Length(), tuning.ProductSpeed) {
					t.Fatalf("product speed %v, want %v", m.Vel.Length(), tuning.ProductSpeed)
				}
			})
		})
	}
}

func TestReactedMoleculeSkipsRestOfPass(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	w := newTestWorld(t, tuning, 0)
	// Three overlapping tier-two molecules can produce only one reaction.
	addMolecule(t, w, chem.TierTwo, cp.Vector{X: -4}, cp.Vector{})
	addMolecule(t, w, chem.TierTwo, cp.Vector{X: 0}, cp.Vector{})
	addMolecule(t, w, chem.TierTwo, cp.Vector{X: 4}, cp.Vector{})

	NewReactionSystem(tuning, testRNG()).Update(w)

	count := map[chem.Species]int{}
	ecs.ForEach(w, component.MoleculeComponent.Kind(), func(_ ecs.Entity, m *component.Molecule) {
		count[m.Species]++
	})
	if count[chem.TierTwo] != 1 || count[chem.TierFour] != 1 {
		t.Fatalf("expected one survivor and one product, got %v", count)
	}
}

func TestPopulationCapSuppressesReactions(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	w := newTestWorld(t, tuning, 0)
	a := addMolecule(t, w, chem.TierTwo, cp.Vector{X: -5}, cp.Vector{})
	b := addMolecule(t, w, chem.TierTwo, cp.Vector{X: 5}, cp.Vector{})
	// Fillers sit on a grid far from the pair and from each other.
	for i := 0; i < tuning.PopulationCap-2; i++ {
		pos := cp.Vector{X: 1000 + float64(i%20)*60, Y: float64(i/20) * 60}
		addMolecule(t, w, chem.TierTwo, pos, cp.Vector{})
	}
	w.Events().Drain()

	NewReactionSystem(tuning, testRNG()).Update(w)

	if got := ecs.Count(w, component.MoleculeComponent.Kind()); got != tuning.PopulationCap {
		t.Fatalf("expected %d molecules, got %d", tuning.PopulationCap, got)
	}
	if n := len(eventsOf(w, ecs.EventSpawned)); n != 0 {
		t.Fatalf("expected no products at the cap, got %d", n)
	}
	ma, ta := molecule(t, w, a)
	mb, tb := molecule(t, w, b)
	if ma.Reacted || mb.Reacted {
		t.Fatalf("capped pair must not be marked reacted")
	}
	want := 0.99 * (ma.Radius + mb.Radius)
	if d := ta.Pos.Distance(tb.Pos); d < want {
		t.Fatalf("capped pair should still separate: centers %v apart, want at least %v", d, want)
	}
}

func TestReactionIsDeterministicForSeed(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	run := func() []cp.Vector {
		w := newTestWorld(t, tuning, 0)
		addMolecule(t, w, chem.TierZero, cp.Vector{X: -4}, cp.Vector{})
		addMolecule(t, w, chem.TierFour, cp.Vector{X: 4}, cp.Vector{})
		w.Events().Drain()
		NewReactionSystem(tuning, testRNG()).Update(w)
		var out []cp.Vector
		for _, evt := range eventsOf(w, ecs.EventSpawned) {
			out = append(out, evt.Data.(ecs.SpawnEvent).Vel)
		}
		return out
	}
	a, b := run(), run()
	if len(a) != 2 || len(a) != len(b) {
		t.Fatalf("expected two products per run, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("product %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
