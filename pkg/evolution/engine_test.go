package evolution

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/evo-go/internal/testutil"
	"github.com/XiaoConstantine/evo-go/pkg/core"
	"github.com/XiaoConstantine/evo-go/pkg/errors"
	"github.com/XiaoConstantine/evo-go/pkg/operators"
)

// defaultOperators builds the stock tournament/one-point/uniform-int stack
// for a gene space bounded by upper.
func defaultOperators(t *testing.T, upper []int) (core.Selector, core.Varier) {
	t.Helper()

	tournament, err := operators.NewTournament(2)
	require.NoError(t, err)

	mutation, err := operators.NewUniformIntMutation(upper, 1.0/float64(len(upper)))
	require.NoError(t, err)

	return tournament, operators.NewVarAnd(operators.NewOnePointCrossover(), mutation)
}

func testConfig() *Config {
	return &Config{
		PopulationSize: 20,
		MaxGenerations: 10,
		HallOfFameSize: 3,
		CrossoverRate:  0.9,
		MutationRate:   0.2,
		RandomSeed:     42,
		Stagnation: StagnationConfig{
			Threshold: 2,
			Kind:      ShockLeak,
		},
		Verbosity:        1,
		ConcurrencyLevel: 1,
	}
}

// rateRecorder captures the mutation rate the engine passes to variation each
// generation, and leaves the pool untouched.
type rateRecorder struct {
	rates []float64
}

func (r *rateRecorder) Vary(rng *rand.Rand, offspring []*core.Individual, cxRate, mutRate float64) []*core.Individual {
	r.rates = append(r.rates, mutRate)
	return offspring
}

func TestNewEngineValidation(t *testing.T) {
	upper := []int{9, 9, 9}
	selector, varier := defaultOperators(t, upper)
	deps := Collaborators{
		Generator: testutil.BoundedGenerator(upper),
		Evaluator: testutil.SumEvaluator(),
		Selector:  selector,
		Varier:    varier,
	}

	t.Run("nil config uses defaults", func(t *testing.T) {
		engine, err := NewEngine(nil, deps)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().PopulationSize, engine.config.PopulationSize)
	})

	t.Run("invalid config is fatal", func(t *testing.T) {
		cfg := testConfig()
		cfg.HallOfFameSize = 0

		_, err := NewEngine(cfg, deps)
		require.Error(t, err)

		var customErr *errors.Error
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, errors.ValidationFailed, customErr.Code())
	})

	t.Run("missing collaborators", func(t *testing.T) {
		for name, broken := range map[string]Collaborators{
			"generator": {Evaluator: deps.Evaluator, Selector: deps.Selector, Varier: deps.Varier},
			"evaluator": {Generator: deps.Generator, Selector: deps.Selector, Varier: deps.Varier},
			"selector":  {Generator: deps.Generator, Evaluator: deps.Evaluator, Varier: deps.Varier},
			"varier":    {Generator: deps.Generator, Evaluator: deps.Evaluator, Selector: deps.Selector},
		} {
			_, err := NewEngine(testConfig(), broken)
			require.Error(t, err, "missing %s must be rejected", name)

			var customErr *errors.Error
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, errors.InvalidInput, customErr.Code())
		}
	})
}

func TestPopulationSizeInvariance(t *testing.T) {
	upper := []int{9, 9, 9, 9, 9}
	selector, varier := defaultOperators(t, upper)

	engine, err := NewEngine(testConfig(), Collaborators{
		Generator: testutil.BoundedGenerator(upper),
		Evaluator: testutil.SumEvaluator(),
		Selector:  selector,
		Varier:    varier,
	})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 20, result.FinalPopulation.Len())
	assert.LessOrEqual(t, engine.HallOfFame().Len(), 3)
	assert.Greater(t, engine.HallOfFame().Len(), 0)
}

func TestElitismMonotonicMin(t *testing.T) {
	upper := []int{9, 9, 9, 9, 9}
	selector, varier := defaultOperators(t, upper)

	cfg := testConfig()
	cfg.MaxGenerations = 20
	cfg.Stagnation = StagnationConfig{Threshold: 50, Kind: ShockLeak}

	engine, err := NewEngine(cfg, Collaborators{
		Generator: testutil.BoundedGenerator(upper),
		Evaluator: testutil.SumEvaluator(),
		Selector:  selector,
		Varier:    varier,
	})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	// With elites reinjected every generation and no reset event, the per
	// generation minimum never regresses.
	records := result.Log.Records()
	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(t, records[i].Min, records[i-1].Min,
			"generation %d regressed", records[i].Gen)
	}
}

// A constant fitness stalls the search, so a radiation leak
// fires once the stagnation threshold is crossed and the mutation rate stays
// elevated until the countdown runs out.
func TestRadiationLeakScenario(t *testing.T) {
	upper := []int{9, 9, 9}
	selector, _ := defaultOperators(t, upper)
	recorder := &rateRecorder{}

	engine, err := NewEngine(testConfig(), Collaborators{
		Generator: testutil.BoundedGenerator(upper),
		Evaluator: testutil.ConstantEvaluator(5),
		Selector:  selector,
		Varier:    recorder,
	})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	records := result.Log.Records()
	require.Len(t, records, 11) // generation 0 plus 10 generations

	// First leak: the counter passes the threshold of 2 after three equal
	// observations, so generation 5 dispatches; a second cycle dispatches at
	// generation 9.
	for gen, want := range map[int]string{
		1: "", 2: "", 3: "", 4: "",
		5: "Radiation Leak",
		6: "", 7: "", 8: "",
		9:  "Radiation Leak",
		10: "",
	} {
		assert.Equal(t, want, records[gen].ShockEvent, "generation %d", gen)
	}
	assert.Equal(t, 2, records[5].Radiation)
	assert.Equal(t, 1, records[6].Radiation)
	assert.Equal(t, 0, records[7].Radiation)

	// Mutation rate per generation: elevated while radiation is active,
	// restored once the countdown reaches zero.
	assert.Equal(t, []float64{0.2, 0.2, 0.2, 0.2, 0.5, 0.5, 0.2, 0.2, 0.5, 0.5}, recorder.rates)
}

func TestCometStrikeScenario(t *testing.T) {
	upper := []int{9, 9, 9, 9, 9, 9}
	selector, varier := defaultOperators(t, upper)

	generatorCalls := 0
	generator := core.GeneratorFunc(func(rng *rand.Rand) *core.Individual {
		generatorCalls++
		return testutil.BoundedGenerator(upper)(rng)
	})

	cfg := testConfig()
	cfg.PopulationSize = 12
	cfg.HallOfFameSize = 4
	cfg.MaxGenerations = 6
	cfg.Stagnation = StagnationConfig{Threshold: 1, Kind: ShockReset}

	engine, err := NewEngine(cfg, Collaborators{
		Generator: generator,
		Evaluator: testutil.ConstantEvaluator(3),
		Selector:  selector,
		Varier:    varier,
	})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	records := result.Log.Records()
	require.Len(t, records, 7)
	assert.Equal(t, "Comet Strike", records[4].ShockEvent)
	assert.Equal(t, "Comet Strike", records[6].ShockEvent)
	assert.Empty(t, records[5].ShockEvent)

	// Each strike keeps the top 3 archive members and regenerates the rest
	// of the pool: 12 initial + 9 + 9.
	assert.Equal(t, 30, generatorCalls)

	// The cleared archive is rebuilt by the same generation's update.
	assert.Greater(t, engine.HallOfFame().Len(), 0)
	assert.Equal(t, 12, result.FinalPopulation.Len())
}

// An optimal individual present at generation 0 ends the run
// before any variation happens.
func TestSolvedAtGenerationZero(t *testing.T) {
	upper := []int{9, 9}
	selector, varier := defaultOperators(t, upper)

	calls := 0
	generator := core.GeneratorFunc(func(rng *rand.Rand) *core.Individual {
		calls++
		genes := []int{rng.Intn(4) + 6, rng.Intn(10)}
		if calls == 3 {
			genes[0] = 5
		}
		return core.NewIndividual(genes)
	})

	evaluator := core.EvaluatorFunc(func(ctx context.Context, ind *core.Individual) (float64, error) {
		if ind.Genes()[0] == 5 {
			return 0, nil
		}
		return 1, nil
	})

	finalCalls := 0
	var finalBest *core.Individual
	engine, err := NewEngine(testConfig(), Collaborators{
		Generator: generator,
		Evaluator: evaluator,
		Selector:  selector,
		Varier:    varier,
		Final: func(solved bool, best *core.Individual) {
			finalCalls++
			require.True(t, solved)
			finalBest = best
		},
	})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Solved)
	assert.Equal(t, 1, result.Log.Len(), "run must stop at generation 0")
	assert.Equal(t, 1, finalCalls)
	require.NotNil(t, finalBest)
	assert.Equal(t, 5, finalBest.Genes()[0])

	fitness, ok := result.Best.Fitness()
	require.True(t, ok)
	assert.Equal(t, 0.0, fitness)
}

func TestEarlyStopMidRun(t *testing.T) {
	upper := []int{1, 1, 1}
	selector, varier := defaultOperators(t, upper)

	// The generator never emits the optimum; only mutation can reach it.
	generator := core.GeneratorFunc(func(rng *rand.Rand) *core.Individual {
		genes := []int{1, rng.Intn(2), rng.Intn(2)}
		return core.NewIndividual(genes)
	})

	cfg := testConfig()
	cfg.PopulationSize = 30
	cfg.MaxGenerations = 200
	cfg.Stagnation = StagnationConfig{Threshold: 5, Kind: ShockLeak}

	engine, err := NewEngine(cfg, Collaborators{
		Generator: generator,
		Evaluator: testutil.SumEvaluator(),
		Selector:  selector,
		Varier:    varier,
	})
	require.NoError(t, err)

	result, err := engine.Run(context.Background())
	require.NoError(t, err)

	require.True(t, result.Solved)

	fitness, ok := result.Best.Fitness()
	require.True(t, ok)
	assert.Equal(t, 0.0, fitness)

	last, ok := result.Log.Last()
	require.True(t, ok)
	assert.Equal(t, 0.0, last.Min)
	assert.Less(t, result.Log.Len(), 201, "run must stop at the first perfect generation")
}

func TestDeterminism(t *testing.T) {
	run := func() []Record {
		upper := []int{9, 9, 9, 9}
		selector, varier := defaultOperators(t, upper)

		cfg := testConfig()
		cfg.ConcurrencyLevel = 4

		engine, err := NewEngine(cfg, Collaborators{
			Generator: testutil.BoundedGenerator(upper),
			Evaluator: testutil.SumEvaluator(),
			Selector:  selector,
			Varier:    varier,
		})
		require.NoError(t, err)

		result, err := engine.Run(context.Background())
		require.NoError(t, err)
		return result.Log.Records()
	}

	assert.Equal(t, run(), run(), "identical seeds must produce identical logs")
}

func TestStatusLinesFollowVerbosity(t *testing.T) {
	upper := []int{9, 9}
	selector, varier := defaultOperators(t, upper)
	recorder := &testutil.StatusRecorder{}

	cfg := testConfig()
	cfg.MaxGenerations = 4
	cfg.Verbosity = 2
	cfg.Stagnation = StagnationConfig{Threshold: 50, Kind: ShockLeak}

	engine, err := NewEngine(cfg, Collaborators{
		Generator: testutil.BoundedGenerator(upper),
		Evaluator: testutil.ConstantEvaluator(2),
		Selector:  selector,
		Varier:    varier,
		Status:    recorder.Func(),
	})
	require.NoError(t, err)

	_, err = engine.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"gen: 0, best: 2, mean: 2",
		"gen: 2, best: 2, mean: 2",
		"gen 2, stuck count is 1",
		"gen: 4, best: 2, mean: 2",
		"gen 4, stuck count is 3",
	}, recorder.Lines())
}

func TestEvaluationFailureAbortsRun(t *testing.T) {
	upper := []int{9, 9}
	selector, varier := defaultOperators(t, upper)

	finalCalled := false
	engine, err := NewEngine(testConfig(), Collaborators{
		Generator: testutil.BoundedGenerator(upper),
		Evaluator: testutil.FailingEvaluator(fmt.Errorf("scoring backend down")),
		Selector:  selector,
		Varier:    varier,
		Final:     func(bool, *core.Individual) { finalCalled = true },
	})
	require.NoError(t, err)

	_, err = engine.Run(context.Background())
	require.Error(t, err)

	var customErr *errors.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, errors.EvaluationFailed, customErr.Code())
	assert.False(t, finalCalled, "the final callback must not fire on an aborted run")
}

func TestCancellationBetweenGenerations(t *testing.T) {
	upper := []int{9, 9}
	selector, varier := defaultOperators(t, upper)

	engine, err := NewEngine(testConfig(), Collaborators{
		Generator: testutil.BoundedGenerator(upper),
		Evaluator: testutil.ConstantEvaluator(1),
		Selector:  selector,
		Varier:    varier,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = engine.Run(ctx)
	require.Error(t, err)

	var customErr *errors.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, errors.Canceled, customErr.Code())
}
