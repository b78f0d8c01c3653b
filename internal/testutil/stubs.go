// Package testutil provides deterministic stub collaborators for engine
// tests.
package testutil

import (
	"context"
	"math/rand"
	"sync"

	"github.com/XiaoConstantine/evo-go/pkg/core"
)

// BoundedGenerator returns a generator producing gene sequences drawn
// uniformly from [0, upper[i]] per position.
func BoundedGenerator(upper []int) core.GeneratorFunc {
	return func(rng *rand.Rand) *core.Individual {
		genes := make([]int, len(upper))
		for i, up := range upper {
			genes[i] = rng.Intn(up + 1)
		}
		return core.NewIndividual(genes)
	}
}

// ConstantEvaluator returns an evaluator that scores every individual the
// same, regardless of genes. Useful to force stagnation.
func ConstantEvaluator(fitness float64) core.EvaluatorFunc {
	return func(ctx context.Context, ind *core.Individual) (float64, error) {
		return fitness, nil
	}
}

// SumEvaluator scores an individual by the sum of its genes, so the all-zero
// sequence is optimal.
func SumEvaluator() core.EvaluatorFunc {
	return func(ctx context.Context, ind *core.Individual) (float64, error) {
		sum := 0
		for _, g := range ind.Genes() {
			sum += g
		}
		return float64(sum), nil
	}
}

// FailingEvaluator returns err for every individual.
func FailingEvaluator(err error) core.EvaluatorFunc {
	return func(ctx context.Context, ind *core.Individual) (float64, error) {
		return 0, err
	}
}

// StatusRecorder captures status lines for assertions. Safe for concurrent
// use, though the engine emits sequentially.
type StatusRecorder struct {
	mu    sync.Mutex
	lines []string
}

// Func returns the core.StatusFunc to hand to the engine.
func (r *StatusRecorder) Func() core.StatusFunc {
	return func(line string) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.lines = append(r.lines, line)
	}
}

// Lines returns a copy of all captured lines.
func (r *StatusRecorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}
