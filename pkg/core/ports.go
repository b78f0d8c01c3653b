package core

import (
	"context"
	"math/rand"
)

// Generator produces a random domain-specific candidate. The engine's rng is
// passed in so a seeded run is fully reproducible.
type Generator interface {
	Generate(rng *rand.Rand) *Individual
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(rng *rand.Rand) *Individual

func (f GeneratorFunc) Generate(rng *rand.Rand) *Individual {
	return f(rng)
}

// Evaluator maps an individual to a scalar fitness. Lower is better; 0 means
// optimal. Evaluation is assumed total and deterministic for valid gene
// sequences; an error aborts the whole run.
type Evaluator interface {
	Evaluate(ctx context.Context, ind *Individual) (float64, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, ind *Individual) (float64, error)

func (f EvaluatorFunc) Evaluate(ctx context.Context, ind *Individual) (float64, error) {
	return f(ctx, ind)
}

// Selector draws n members from the population to form the offspring pool,
// sampling with replacement.
type Selector interface {
	Select(rng *rand.Rand, members []*Individual, n int) []*Individual
}

// SelectorFunc adapts a plain function to the Selector interface.
type SelectorFunc func(rng *rand.Rand, members []*Individual, n int) []*Individual

func (f SelectorFunc) Select(rng *rand.Rand, members []*Individual, n int) []*Individual {
	return f(rng, members, n)
}

// Varier applies crossover and mutation to an offspring pool at the given
// rates and returns the varied pool. Implementations must operate on clones
// and invalidate the fitness of every individual they touch.
type Varier interface {
	Vary(rng *rand.Rand, offspring []*Individual, cxRate, mutRate float64) []*Individual
}

// VarierFunc adapts a plain function to the Varier interface.
type VarierFunc func(rng *rand.Rand, offspring []*Individual, cxRate, mutRate float64) []*Individual

func (f VarierFunc) Vary(rng *rand.Rand, offspring []*Individual, cxRate, mutRate float64) []*Individual {
	return f(rng, offspring, cxRate, mutRate)
}

// EqualFunc decides whether two individuals are duplicates for hall of fame
// membership, regardless of fitness ties.
type EqualFunc func(a, b *Individual) bool

// StatusFunc receives one formatted human-readable progress line per
// reporting generation.
type StatusFunc func(line string)

// FinalFunc is invoked exactly once after the run terminates. best is non-nil
// only when solved is true.
type FinalFunc func(solved bool, best *Individual)
