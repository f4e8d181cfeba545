package chem

// Species selects a molecule's radius, mass, score value and reactions.
type Species int

// Authored tiers. Anything past TierFour falls back to DefaultTier.
const (
	TierZero Species = iota
	TierOne
	TierTwo
	TierThree
	TierFour
	DefaultTier
)

// Count is the number of authored species.
const Count = int(DefaultTier)

var radii = [...]float64{6, 8, 10, 12, 16}

var masses = [...]float64{6, 8, 10, 12, 16}

const (
	defaultRadius = 20.0
	defaultMass   = 20.0
)

// Valid reports whether s is an authored species.
func (s Species) Valid() bool {
	return s >= 0 && int(s) < Count
}

// Tier returns s clamped into the lookup tables.
func (s Species) Tier() Species {
	if !s.Valid() {
		return DefaultTier
	}
	return s
}

// RadiusOf returns the collision radius of s.
func RadiusOf(s Species) float64 {
	if !s.Valid() {
		return defaultRadius
	}
	return radii[s]
}

// MassOf returns the mass of s.
func MassOf(s Species) float64 {
	if !s.Valid() {
		return defaultMass
	}
	return masses[s]
}

// Points is the score awarded for striking a molecule of s.
func Points(s Species) int {
	return int(s.Tier()) + 1
}
