package component

// Projectile homes in on the player and never reacts.
type Projectile struct {
	Radius float64
	Speed  float64
}

var ProjectileComponent = NewComponent[Projectile]()
