package system

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"github.com/milk9111/reactor/ecs"
	"github.com/milk9111/reactor/ecs/component"
	"github.com/milk9111/reactor/ecs/entity"
	"github.com/milk9111/reactor/prefabs"
)

// ReactionSystem resolves every contacting molecule pair: reactions first,
// then the elastic impulse and de-penetration, which always apply.
type ReactionSystem struct {
	tuning *prefabs.TuningSpec
	rng    *rand.Rand
}

func NewReactionSystem(tuning *prefabs.TuningSpec, rng *rand.Rand) *ReactionSystem {
	return &ReactionSystem{tuning: tuning, rng: rng}
}

type moleculeRef struct {
	e  ecs.Entity
	m  *component.Molecule
	tr *component.Transform
}

func collectMolecules(w *ecs.World) []moleculeRef {
	list := make([]moleculeRef, 0, ecs.Count(w, component.MoleculeComponent.Kind()))
	ecs.ForEach2(w, component.MoleculeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.Molecule, tr *component.Transform) {
		list = append(list, moleculeRef{e: e, m: m, tr: tr})
	})
	return list
}

// product is a reaction output queued until the pair pass is over.
type product struct {
	pos        cp.Vector
	vel        cp.Vector
	species    chem.Species
	projectile bool
}

func (s *ReactionSystem) Update(w *ecs.World) {
	list := collectMolecules(w)
	n := len(list)
	if n < 2 {
		return
	}
	canReact := n < s.tuning.PopulationCap

	var products []product
	var doomed []ecs.Entity

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a := list[i]
			b := list[j]
			if a.m.Reacted || b.m.Reacted {
				continue
			}

			offset := a.tr.Pos.Sub(b.tr.Pos)
			reach := a.m.Radius + b.m.Radius
			if offset.LengthSq() > reach*reach {
				continue
			}

			if canReact {
				products, doomed = s.react(a, b, offset, products, doomed)
			}
			resolveContact(a.m, b.m, &a.tr.Pos, &b.tr.Pos, s.tuning.Separation)
		}
	}

	for _, e := range doomed {
		entity.Despawn(w, e, ecs.CauseReaction)
	}
	for _, p := range products {
		var err error
		if p.projectile {
			_, err = entity.NewProjectile(w, p.pos, s.tuning.Projectile, ecs.CauseReaction)
		} else {
			_, err = entity.NewMolecule(w, entity.MoleculeSpec{
				Pos:      p.pos,
				Vel:      p.vel,
				Species:  p.species,
				Cooldown: s.tuning.SpawnCooldown,
			}, ecs.CauseReaction)
		}
		if err != nil {
			log.Printf("reaction: spawn product: %v", err)
		}
	}
}

func (s *ReactionSystem) react(a, b moleculeRef, offset cp.Vector, products []product, doomed []ecs.Entity) ([]product, []ecs.Entity) {
	outcome := chem.Combine(a.m.Species, b.m.Species)
	if outcome.None() || a.m.Cooldown+b.m.Cooldown != 0 {
		return products, doomed
	}

	a.m.Reacted = true
	b.m.Reacted = true
	cd := math.Min(s.tuning.ReactionCooldown, component.CooldownMax)
	a.m.Cooldown = cd
	b.m.Cooldown = cd

	mid := b.tr.Pos.Add(offset.Mult(0.5))
	for _, p := range outcome.Products {
		pos := mid.Add(s.jitter())
		switch p := p.(type) {
		case chem.SpawnSpecies:
			products = append(products, product{pos: pos, vel: s.randomVelocity(), species: p.Species})
		case chem.SpawnProjectile:
			products = append(products, product{pos: pos, projectile: true})
		case chem.DestroyBoth:
			doomed = append(doomed, a.e, b.e)
		}
	}
	return products, doomed
}

func (s *ReactionSystem) jitter() cp.Vector {
	j := s.tuning.ProductJitter
	return cp.Vector{X: s.rng.Float64() * j, Y: s.rng.Float64() * j}
}

func (s *ReactionSystem) randomVelocity() cp.Vector {
	return cp.ForAngle(s.rng.Float64() * 2 * math.Pi).Mult(s.tuning.ProductSpeed)
}

// resolveContact applies the two-body elastic impulse along the line of
// centers and then pushes the bodies apart until their centers are
// separation*(ra+rb) apart.
func resolveContact(a, b *component.Molecule, pa, pb *cp.Vector, separation float64) {
	offset := pa.Sub(*pb)
	dist := offset.Length()
	normal := cp.Vector{X: 1}
	if dist > 0 {
		normal = offset.Mult(1 / dist)
	}

	rel := a.Vel.Sub(b.Vel)
	dp := normal.Mult(rel.Dot(normal) / (a.Mass + b.Mass))
	a.Vel = a.Vel.Sub(dp.Mult(2 * b.Mass))
	b.Vel = b.Vel.Add(dp.Mult(2 * a.Mass))

	target := separation * (a.Radius + b.Radius)
	push := normal.Mult((target - dist) / 2)
	*pa = pa.Add(push)
	*pb = pb.Sub(push)
}
