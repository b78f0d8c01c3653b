package operators

import (
	"math/rand"

	"github.com/XiaoConstantine/evo-go/pkg/core"
	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

// Mutator perturbs an individual in place.
type Mutator interface {
	Mutate(rng *rand.Rand, ind *core.Individual)
}

// UniformIntMutation independently resamples each gene with probability
// indProb, drawing uniformly from [0, upper[i]]. The per-position upper
// bounds encode the domain's gene limits.
type UniformIntMutation struct {
	upper   []int
	indProb float64
}

// NewUniformIntMutation creates a bounded uniform-int mutator. A common
// choice for indProb is 1/N so one gene flips per application on average.
func NewUniformIntMutation(upper []int, indProb float64) (*UniformIntMutation, error) {
	if len(upper) == 0 {
		return nil, errors.New(errors.InvalidInput, "mutation bounds must not be empty")
	}
	for i, up := range upper {
		if up < 0 {
			return nil, errors.WithFields(
				errors.New(errors.InvalidInput, "mutation bounds must be non-negative"),
				errors.Fields{"position": i, "upper": up})
		}
	}
	if indProb < 0 || indProb > 1 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "per-gene mutation probability must be in [0,1]"),
			errors.Fields{"ind_prob": indProb})
	}
	return &UniformIntMutation{upper: upper, indProb: indProb}, nil
}

// Mutate resamples genes in place and invalidates the individual's fitness.
func (m *UniformIntMutation) Mutate(rng *rand.Rand, ind *core.Individual) {
	genes := ind.Genes()
	n := len(genes)
	if len(m.upper) < n {
		n = len(m.upper)
	}

	for i := 0; i < n; i++ {
		if rng.Float64() < m.indProb {
			genes[i] = rng.Intn(m.upper[i] + 1)
		}
	}

	ind.Invalidate()
}
