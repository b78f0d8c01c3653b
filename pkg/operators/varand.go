package operators

import (
	"math/rand"

	"github.com/XiaoConstantine/evo-go/pkg/core"
)

// VarAnd is the standard variation pipeline: clone the pool, then apply
// crossover to adjacent pairs with probability cxRate and mutation to each
// individual with probability mutRate. "And" because a clone can undergo
// both. It satisfies the engine's Varier port.
type VarAnd struct {
	mater   Mater
	mutator Mutator
}

// NewVarAnd composes a crossover and a mutation operator into a Varier.
func NewVarAnd(mater Mater, mutator Mutator) *VarAnd {
	return &VarAnd{mater: mater, mutator: mutator}
}

// Vary returns a varied copy of the offspring pool. Inputs are never
// modified, so elites selected by reference stay intact; touched clones are
// invalidated by the underlying operators.
func (v *VarAnd) Vary(rng *rand.Rand, offspring []*core.Individual, cxRate, mutRate float64) []*core.Individual {
	out := make([]*core.Individual, len(offspring))
	for i, ind := range offspring {
		out[i] = ind.Clone()
	}

	for i := 1; i < len(out); i += 2 {
		if rng.Float64() < cxRate {
			v.mater.Mate(rng, out[i-1], out[i])
		}
	}

	for _, ind := range out {
		if rng.Float64() < mutRate {
			v.mutator.Mutate(rng, ind)
		}
	}

	return out
}
