package sim

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/ecs/entity"
	"github.com/milk9111/reactor/ecs/system"
	"github.com/milk9111/reactor/levels"
	"github.com/milk9111/reactor/prefabs"
)

var (
	ErrNoPlayer   = errors.New("sim: no player snapshot")
	ErrNotPlaying = errors.New("sim: engine is not playing")
)

// Engine owns one session's world and runs the frame passes over it.
type Engine struct {
	tuning *prefabs.TuningSpec
	script *levels.Script
	seed   uint64
	debug  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	session   uuid.UUID
	records   Records
}

type Option func(*Engine)

func WithTuning(t *prefabs.TuningSpec) Option {
	return func(e *Engine) { e.tuning = t }
}

func WithScript(s *levels.Script) Option {
	return func(e *Engine) { e.script = s }
}

// WithSeed fixes the seed for reaction product scatter.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithDebug makes contract violations panic instead of returning errors.
func WithDebug(debug bool) Option {
	return func(e *Engine) { e.debug = debug }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{seed: 1}
	for _, opt := range opts {
		opt(e)
	}
	if e.tuning == nil {
		e.tuning = prefabs.DefaultTuning()
	}
	return e
}

// Reset starts a fresh session. Any running session is torn down first.
func (e *Engine) Reset() error {
	if e.world != nil {
		e.Teardown()
	}
	if e.script == nil {
		s, err := levels.Default()
		if err != nil {
			return fmt.Errorf("sim: reset: %w", err)
		}
		e.script = s
	}

	w := ecs.NewWorld()
	if _, err := entity.NewArena(w, e.tuning.Arena); err != nil {
		return fmt.Errorf("sim: reset: %w", err)
	}
	if _, err := entity.NewClock(w); err != nil {
		return fmt.Errorf("sim: reset: %w", err)
	}
	if _, err := entity.NewPlayerProxy(w); err != nil {
		return fmt.Errorf("sim: reset: %w", err)
	}
	if _, err := entity.NewSpawnTimeline(w, e.script, e.tuning.LevelRateFactor); err != nil {
		return fmt.Errorf("sim: reset: %w", err)
	}

	rng := rand.New(rand.NewPCG(e.seed, e.seed^0x9e3779b97f4a7c15))
	e.scheduler = ecs.NewScheduler(
		system.NewSpawnSystem(e.tuning),
		system.NewReactionSystem(e.tuning, rng),
		system.NewMotionSystem(e.tuning),
		system.NewPlayerContactSystem(e.tuning),
		system.NewProjectileSystem(e.tuning),
		system.NewConfineSystem(),
		system.NewWeaponStrikeSystem(e.tuning),
		system.NewTelemetrySystem(),
	)
	e.world = w
	e.session = uuid.New()
	log.Printf("sim: session %s started (%d levels, seed %d)", e.session, len(e.script.Levels), e.seed)
	return nil
}

// Step advances the session by dt seconds.
func (e *Engine) Step(dt float64, snap Snapshot) (FrameResult, error) {
	if e.world == nil {
		return FrameResult{}, ErrNotPlaying
	}
	if !snap.Present {
		if e.debug {
			panic(ErrNoPlayer)
		}
		return FrameResult{}, ErrNoPlayer
	}

	_, frame, _ := ecs.First(e.world, component.FrameComponent.Kind())
	frame.DT = dt
	frame.Tick++
	frame.PlayerHit = false

	_, proxy, _ := ecs.First(e.world, component.PlayerSnapshotComponent.Kind())
	*proxy = component.PlayerSnapshot{
		Pos:          snap.Pos,
		Radius:       snap.Radius,
		Invulnerable: snap.Invulnerable,
		WeaponActive: snap.WeaponActive,
		WeaponScale:  snap.WeaponScale,
		Colliders:    snap.Colliders,
	}

	e.scheduler.Update(e.world)
	return collect(e.world.Events().Drain()), nil
}

// Teardown ends the session, folding its results into the records.
func (e *Engine) Teardown() {
	if e.world == nil {
		return
	}
	score, survived := e.Score(), e.TimeSurvived()
	high, longest := e.records.Submit(e.session, score, survived)
	log.Printf("sim: session %s over: score %d, survived %s (high score %v, longest %v)",
		e.session, score, FormatSurvival(survived), high, longest)
	e.world = nil
	e.scheduler = nil
}

// SpawnMolecule injects a molecule outside the timeline, as the level
// recorder does when previewing a captured event. It carries the usual spawn
// cooldown and is announced in the next FrameResult.
func (e *Engine) SpawnMolecule(pos, vel cp.Vector, s chem.Species) (ecs.Entity, error) {
	if e.world == nil {
		return 0, ErrNotPlaying
	}
	return entity.NewMolecule(e.world, entity.MoleculeSpec{
		Pos:      pos,
		Vel:      vel,
		Species:  s,
		Cooldown: e.tuning.SpawnCooldown,
	}, ecs.CauseTimeline)
}

func (e *Engine) SpawnProjectile(pos cp.Vector) (ecs.Entity, error) {
	if e.world == nil {
		return 0, ErrNotPlaying
	}
	return entity.NewProjectile(e.world, pos, e.tuning.Projectile, ecs.CauseReaction)
}

// Reload swaps tuning and script. It takes effect on the next Reset.
func (e *Engine) Reload(tuning *prefabs.TuningSpec, script *levels.Script) {
	if tuning != nil {
		e.tuning = tuning
	}
	if script != nil {
		e.script = script
	}
}

func (e *Engine) Playing() bool { return e.world != nil }

func (e *Engine) SessionID() uuid.UUID { return e.session }

func (e *Engine) Records() Records { return e.records }

func (e *Engine) Tuning() *prefabs.TuningSpec { return e.tuning }

func (e *Engine) Score() int {
	if s := e.score(); s != nil {
		return s.Points
	}
	return 0
}

func (e *Engine) TimeSurvived() float64 {
	if s := e.score(); s != nil {
		return s.TimeSurvived
	}
	return 0
}

func (e *Engine) score() *component.Score {
	if e.world == nil {
		return nil
	}
	_, s, _ := ecs.First(e.world, component.ScoreComponent.Kind())
	return s
}

// Level returns the current level index and how many times the script has
// wrapped.
func (e *Engine) Level() (level, cycle int) {
	if e.world == nil {
		return 0, 0
	}
	_, tl, ok := ecs.First(e.world, component.SpawnTimelineComponent.Kind())
	if !ok {
		return 0, 0
	}
	return tl.Level, tl.Cycle
}

// Population is the number of live molecules.
func (e *Engine) Population() int {
	if e.world == nil {
		return 0
	}
	return ecs.Count(e.world, component.MoleculeComponent.Kind())
}

func (e *Engine) Molecules() []MoleculeView {
	if e.world == nil {
		return nil
	}
	out := make([]MoleculeView, 0, e.Population())
	ecs.ForEach2(e.world, component.MoleculeComponent.Kind(), component.TransformComponent.Kind(), func(ent ecs.Entity, m *component.Molecule, tr *component.Transform) {
		out = append(out, MoleculeView{
			Entity:  ent,
			Pos:     tr.Pos,
			Vel:     m.Vel,
			Species: m.Species,
			Radius:  m.Radius,
			Growth:  m.Growth,
		})
	})
	return out
}

func (e *Engine) Projectiles() []ProjectileView {
	if e.world == nil {
		return nil
	}
	var out []ProjectileView
	ecs.ForEach2(e.world, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(ent ecs.Entity, p *component.Projectile, tr *component.Transform) {
		out = append(out, ProjectileView{Entity: ent, Pos: tr.Pos, Radius: p.Radius})
	})
	return out
}

// Arena returns the reactor bounds, or false when no session is running.
func (e *Engine) Arena() (component.Arena, bool) {
	if e.world == nil {
		return component.Arena{}, false
	}
	_, a, ok := ecs.First(e.world, component.ArenaComponent.Kind())
	if !ok {
		return component.Arena{}, false
	}
	return *a, true
}
