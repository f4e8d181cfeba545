package component

import "github.com/jakecoffman/cp"

// PlayerSnapshot is the read-only view of the player the core receives each
// frame. The player component itself lives outside the core.
type PlayerSnapshot struct {
	Pos          cp.Vector
	Radius       float64
	Invulnerable bool

	WeaponActive bool
	WeaponScale  float64
	// Colliders are the weapon's collider sample points in world space.
	Colliders []cp.Vector
}

var PlayerSnapshotComponent = NewComponent[PlayerSnapshot]()
