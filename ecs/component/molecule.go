package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
)

// CooldownMax bounds Molecule.Cooldown.
const CooldownMax = 10.0

// Molecule is a collidable, reactable body. Position lives on Transform.
type Molecule struct {
	Vel     cp.Vector
	Species chem.Species
	Radius  float64
	Mass    float64
	// Reacted is set for the rest of the resolution pass once the molecule
	// has taken part in a reaction. Cleared every frame.
	Reacted bool
	// Cooldown is the time in seconds before the molecule may react again.
	Cooldown float64
	// Growth ramps from 0 to 1 after spawn. Cosmetic only.
	Growth float64
}

var MoleculeComponent = NewComponent[Molecule]()
