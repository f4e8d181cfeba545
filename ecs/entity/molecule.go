package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
)

// MoleculeSpec describes a molecule to spawn.
type MoleculeSpec struct {
	Pos      cp.Vector
	Vel      cp.Vector
	Species  chem.Species
	Cooldown float64
}

// NewMolecule adds a molecule to the store and announces it. Radius and mass
// come from the species table.
func NewMolecule(w *ecs.World, spec MoleculeSpec, cause ecs.Cause) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: spec.Pos, Scale: 1}); err != nil {
		return 0, fmt.Errorf("molecule: add transform: %w", err)
	}
	m := &component.Molecule{
		Vel:      spec.Vel,
		Species:  spec.Species,
		Radius:   chem.RadiusOf(spec.Species),
		Mass:     chem.MassOf(spec.Species),
		Cooldown: spec.Cooldown,
	}
	if err := ecs.Add(w, e, component.MoleculeComponent.Kind(), m); err != nil {
		return 0, fmt.Errorf("molecule: add molecule: %w", err)
	}
	ecs.Emit(w, ecs.EventSpawned, ecs.SpawnEvent{
		Entity:  e,
		Body:    ecs.BodyMolecule,
		Species: spec.Species,
		Pos:     spec.Pos,
		Vel:     spec.Vel,
		Radius:  m.Radius,
		Cause:   cause,
	})
	return e, nil
}
