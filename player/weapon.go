package player

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/prefabs"
)

// WeaponState is the swing state machine's current state.
type WeaponState int

const (
	WeaponIdle WeaponState = iota
	WeaponSwinging
)

func (s WeaponState) String() string {
	if s == WeaponSwinging {
		return "swinging"
	}
	return "idle"
}

// Weapon is a blade mounted on the player that sweeps out and back when
// swung. It only strikes during the active part of the swing.
type Weapon struct {
	spec     prefabs.WeaponSpec
	state    WeaponState
	progress float64
}

func NewWeapon(spec prefabs.WeaponSpec) *Weapon {
	return &Weapon{spec: spec}
}

// Swing starts a swing. It reports false if one is already in progress.
func (w *Weapon) Swing() bool {
	if w.state == WeaponSwinging {
		return false
	}
	w.state = WeaponSwinging
	w.progress = 0
	return true
}

func (w *Weapon) Update(dt float64) {
	if w.state != WeaponSwinging {
		return
	}
	w.progress += dt
	if w.progress >= w.spec.SwingDuration {
		w.state = WeaponIdle
		w.progress = 0
	}
}

func (w *Weapon) State() WeaponState { return w.state }

// Fraction is how far through the swing the weapon is, in [0,1].
func (w *Weapon) Fraction() float64 {
	if w.state != WeaponSwinging || w.spec.SwingDuration <= 0 {
		return 0
	}
	return math.Min(w.progress/w.spec.SwingDuration, 1)
}

// Active reports whether the blade currently strikes.
func (w *Weapon) Active() bool {
	if w.state != WeaponSwinging {
		return false
	}
	f := w.Fraction()
	return f >= w.spec.ActiveFrom && f <= w.spec.ActiveTo
}

// Angle is the blade's sweep in radians, clockwise from rest. It peaks at
// SwingArc halfway through the swing.
func (w *Weapon) Angle() float64 {
	f := w.Fraction()
	var deg float64
	if f < 0.5 {
		deg = w.spec.SwingArc * (f / 0.5)
	} else {
		deg = w.spec.SwingArc * (1 - (f-0.5)/0.5)
	}
	return deg * math.Pi / 180
}

func (w *Weapon) Scale() float64 { return w.spec.Scale }

// Blade returns the world-space base and tip of the blade for a player at
// pos facing the given angle.
func (w *Weapon) Blade(pos cp.Vector, facing float64) (cp.Vector, cp.Vector) {
	half := w.spec.Length * w.spec.Scale / 2
	return w.point(pos, facing, w.spec.Reach-half), w.point(pos, facing, w.spec.Reach+half)
}

// ColliderPoints samples the blade evenly from its middle to its tip.
func (w *Weapon) ColliderPoints(pos cp.Vector, facing float64) []cp.Vector {
	n := w.spec.Samples
	if n <= 0 {
		return nil
	}
	span := w.spec.Length * w.spec.Scale
	out := make([]cp.Vector, n)
	for i := range out {
		d := w.spec.Reach + (float64(i+1)/float64(n)-0.5)*span
		out[i] = w.point(pos, facing, d)
	}
	return out
}

// point maps a distance along the blade into world space. At rest the blade
// points along the player's local +Y axis from the pivot.
func (w *Weapon) point(pos cp.Vector, facing, along float64) cp.Vector {
	pivot := cp.Vector{X: w.spec.Pivot.X, Y: w.spec.Pivot.Y}
	blade := rotate(cp.Vector{Y: along}, -w.Angle())
	return pos.Add(rotate(pivot.Add(blade), facing))
}

func rotate(v cp.Vector, angle float64) cp.Vector {
	s, c := math.Sincos(angle)
	return cp.Vector{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}
