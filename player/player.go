package player

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/common"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/prefabs"
	"github.com/milk9111/reactor/sim"
)

// Player is the cursor-steered ship. It lives outside the simulation core,
// which only sees it through a sim.Snapshot and answers with damage events.
type Player struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Facing float64
	Radius float64
	Lives  int

	// Invulnerable and Stunned count down the seconds left in each window.
	Invulnerable float64
	Stunned      float64

	Weapon *Weapon

	spec   prefabs.PlayerSpec
	bounds cp.BB
}

// New places a player at the origin with full lives. Movement is clamped to
// the outer arena, not its inset interior.
func New(tuning *prefabs.TuningSpec) *Player {
	halfW := tuning.Arena.Width / 2
	halfH := tuning.Arena.Height / 2
	return &Player{
		Radius: tuning.Player.Radius,
		Lives:  tuning.Player.Lives,
		Weapon: NewWeapon(tuning.Weapon),
		spec:   tuning.Player,
		bounds: cp.BB{L: -halfW, B: -halfH, R: halfW, T: halfH},
	}
}

// Update steers toward target, which is normally the cursor in world space.
func (p *Player) Update(dt float64, target cp.Vector) {
	offset := target.Sub(p.Pos)
	if offset.LengthSq() > 0 {
		p.Facing = math.Atan2(offset.Y, offset.X)
	}

	switch {
	case p.Stunned > 0:
		p.Stunned = common.Clamp(p.Stunned-dt, 0, 10)
		p.Vel = cp.Vector{}
	case offset.Length() >= p.spec.StopDistance:
		p.Vel = p.Vel.Add(offset.Normalize().Mult(p.spec.Acceleration * dt)).Clamp(p.spec.MaxSpeed)
	default:
		p.Vel = cp.Vector{}
	}

	p.Pos.X = common.Clamp(p.Pos.X+p.Vel.X*dt, p.bounds.L, p.bounds.R)
	p.Pos.Y = common.Clamp(p.Pos.Y+p.Vel.Y*dt, p.bounds.B, p.bounds.T)

	p.Invulnerable = math.Max(0, p.Invulnerable-dt)
	p.Weapon.Update(dt)
}

// ApplyDamage takes a life unless the invulnerability window is open. It
// reports whether the hit landed.
func (p *Player) ApplyDamage(d ecs.DamageEvent) bool {
	if p.Invulnerable > 0 || p.Lives <= 0 {
		return false
	}
	p.Lives -= d.Amount
	if p.Lives < 0 {
		p.Lives = 0
	}
	p.Invulnerable = d.Invulnerability
	p.Stunned = d.Stun
	p.Vel = cp.Vector{}
	log.Printf("player: hit by %s, %d lives left", d.Body, p.Lives)
	return true
}

func (p *Player) Alive() bool {
	return p.Lives > 0
}

// Snapshot is the view of the player handed to sim.Engine.Step.
func (p *Player) Snapshot() sim.Snapshot {
	active := p.Weapon.Active()
	snap := sim.Snapshot{
		Present:      true,
		Pos:          p.Pos,
		Radius:       p.Radius,
		Invulnerable: p.Invulnerable > 0,
		WeaponActive: active,
		WeaponScale:  p.Weapon.Scale(),
	}
	if active {
		snap.Colliders = p.Weapon.ColliderPoints(p.Pos, p.Facing)
	}
	return snap
}
