package sim

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"github.com/milk9111/reactor/ecs"
)

// Snapshot is what the core needs to know about the player each frame.
// Present must be set; a zero Snapshot means there is no player.
type Snapshot struct {
	Present      bool
	Pos          cp.Vector
	Radius       float64
	Invulnerable bool

	WeaponActive bool
	WeaponScale  float64
	Colliders    []cp.Vector
}

// FrameResult is everything that happened during one Step, sorted by kind.
// Events keeps the original order.
type FrameResult struct {
	Spawned    []ecs.SpawnEvent
	Despawned  []ecs.DespawnEvent
	Damage     []ecs.DamageEvent
	Levels     []ecs.LevelEvent
	ScoreDelta int
	Events     []ecs.Event
}

func collect(events []ecs.Event) FrameResult {
	res := FrameResult{Events: events}
	for _, evt := range events {
		switch d := evt.Data.(type) {
		case ecs.SpawnEvent:
			res.Spawned = append(res.Spawned, d)
		case ecs.DespawnEvent:
			res.Despawned = append(res.Despawned, d)
		case ecs.DamageEvent:
			res.Damage = append(res.Damage, d)
		case ecs.ScoreEvent:
			res.ScoreDelta += d.Delta
		case ecs.LevelEvent:
			res.Levels = append(res.Levels, d)
		}
	}
	return res
}

// MoleculeView is a read-only copy of a molecule for rendering.
type MoleculeView struct {
	Entity  ecs.Entity
	Pos     cp.Vector
	Vel     cp.Vector
	Species chem.Species
	Radius  float64
	Growth  float64
}

// ProjectileView is a read-only copy of a projectile for rendering.
type ProjectileView struct {
	Entity ecs.Entity
	Pos    cp.Vector
	Radius float64
}
