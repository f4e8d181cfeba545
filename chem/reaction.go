package chem

import "sort"

// Product is one entry of a reaction's output. It is a closed set:
// SpawnSpecies, DestroyBoth and SpawnProjectile.
type Product interface {
	isProduct()
}

// SpawnSpecies creates a new molecule of Species.
type SpawnSpecies struct {
	Species Species
}

// DestroyBoth removes both reacting molecules.
type DestroyBoth struct{}

// SpawnProjectile creates a homing projectile.
type SpawnProjectile struct{}

func (SpawnSpecies) isProduct()    {}
func (DestroyBoth) isProduct()     {}
func (SpawnProjectile) isProduct() {}

// Outcome is the result of combining two species.
type Outcome struct {
	Products []Product
}

// None reports that the pair does not react.
func (o Outcome) None() bool {
	return len(o.Products) == 0
}

type pair struct {
	lo, hi Species
}

func makePair(a, b Species) pair {
	if a > b {
		a, b = b, a
	}
	return pair{lo: a, hi: b}
}

func spawn(s Species) Product { return SpawnSpecies{Species: s} }

var (
	destroy    Product = DestroyBoth{}
	projectile Product = SpawnProjectile{}
)

var table = map[pair][]Product{
	{TierZero, TierZero}:  {destroy, projectile},
	{TierZero, TierOne}:   {destroy, spawn(TierZero), spawn(TierZero)},
	{TierZero, TierTwo}:   {destroy, spawn(TierOne), spawn(TierZero)},
	{TierZero, TierThree}: {destroy, spawn(TierTwo), spawn(TierOne)},
	{TierZero, TierFour}:  {destroy, spawn(TierThree), spawn(TierThree)},
	{TierOne, TierFour}:   {destroy, projectile, projectile, projectile, projectile},
	{TierTwo, TierTwo}:    {destroy, spawn(TierFour)},
}

// Combine looks up the reaction between a and b. The order of the arguments
// does not matter and unlisted pairs yield an empty Outcome.
func Combine(a, b Species) Outcome {
	products, ok := table[makePair(a, b)]
	if !ok {
		return Outcome{}
	}
	return Outcome{Products: append([]Product(nil), products...)}
}

// Pairs lists every reacting pair as [lo, hi], sorted.
func Pairs() [][2]Species {
	out := make([][2]Species, 0, len(table))
	for p := range table {
		out = append(out, [2]Species{p.lo, p.hi})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
