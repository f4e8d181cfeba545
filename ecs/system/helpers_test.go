package system

import (
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/ecs/entity"
	"github.com/milk9111/reactor/prefabs"
)

// newTestWorld builds a world with the arena, clock and player proxy every
// system expects. The player starts far from the emitter.
func newTestWorld(t *testing.T, tuning *prefabs.TuningSpec, dt float64) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	if _, err := entity.NewArena(w, tuning.Arena); err != nil {
		t.Fatalf("arena: %v", err)
	}
	if _, err := entity.NewClock(w); err != nil {
		t.Fatalf("clock: %v", err)
	}
	if _, err := entity.NewPlayerProxy(w); err != nil {
		t.Fatalf("player proxy: %v", err)
	}
	_, frame, _ := ecs.First(w, component.FrameComponent.Kind())
	frame.DT = dt
	_, snap, _ := ecs.First(w, component.PlayerSnapshotComponent.Kind())
	snap.Pos = cp.Vector{X: 400, Y: 300}
	snap.Radius = tuning.Player.Radius
	snap.WeaponScale = tuning.Weapon.Scale
	return w
}

func addMolecule(t *testing.T, w *ecs.World, s chem.Species, pos, vel cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewMolecule(w, entity.MoleculeSpec{Pos: pos, Vel: vel, Species: s}, ecs.CauseTimeline)
	if err != nil {
		t.Fatalf("molecule: %v", err)
	}
	return e
}

func molecule(t *testing.T, w *ecs.World, e ecs.Entity) (*component.Molecule, *component.Transform) {
	t.Helper()
	m, ok := ecs.Get(w, e, component.MoleculeComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no molecule", e)
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return m, tr
}

func snapshot(w *ecs.World) *component.PlayerSnapshot {
	_, snap, _ := ecs.First(w, component.PlayerSnapshotComponent.Kind())
	return snap
}

func eventsOf(w *ecs.World, typ string) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Drain() {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
