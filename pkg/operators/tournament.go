// Package operators provides stock selection, crossover and mutation
// operators for the evolution engine. They cover the common
// integer-gene case; domains with richer encodings supply their own
// implementations of the core ports.
package operators

import (
	"math"
	"math/rand"

	"github.com/XiaoConstantine/evo-go/pkg/core"
	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

// Tournament implements tournament selection: to pick each member of the
// offspring pool it samples a small group with replacement and keeps the
// fittest contender.
type Tournament struct {
	size int
}

// NewTournament creates a tournament selector with the given group size.
func NewTournament(size int) (*Tournament, error) {
	if size < 1 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "tournament size must be at least 1"),
			errors.Fields{"size": size})
	}
	return &Tournament{size: size}, nil
}

// Select fills a pool of n individuals. Selected individuals are returned by
// reference; the variation pipeline clones before touching them.
func (t *Tournament) Select(rng *rand.Rand, members []*core.Individual, n int) []*core.Individual {
	selected := make([]*core.Individual, 0, n)

	for i := 0; i < n; i++ {
		best := members[rng.Intn(len(members))]
		for j := 1; j < t.size; j++ {
			contender := members[rng.Intn(len(members))]
			if fitnessOrInf(contender) < fitnessOrInf(best) {
				best = contender
			}
		}
		selected = append(selected, best)
	}

	return selected
}

// fitnessOrInf orders unevaluated individuals last in a minimizing
// tournament.
func fitnessOrInf(ind *core.Individual) float64 {
	if fitness, ok := ind.Fitness(); ok {
		return fitness
	}
	return math.Inf(1)
}
