package evolution

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/XiaoConstantine/evo-go/pkg/core"
	"github.com/XiaoConstantine/evo-go/pkg/errors"
	"github.com/XiaoConstantine/evo-go/pkg/logging"
)

// Collaborators are the domain-supplied capability interfaces the engine is
// parameterized with. Generator, Evaluator, Selector and Varier are required;
// Equal defaults to core.GenesEqual; Status and Final are optional sinks.
type Collaborators struct {
	Generator core.Generator
	Evaluator core.Evaluator
	Selector  core.Selector
	Varier    core.Varier
	Equal     core.EqualFunc
	Status    core.StatusFunc
	Final     core.FinalFunc
}

// Result is the output surface of a run: the final population, the complete
// statistics log, and the best archived individual with its solved flag
// (fitness exactly 0).
type Result struct {
	FinalPopulation *core.Population
	Log             *Logbook
	Best            *core.Individual
	Solved          bool
}

// Engine orchestrates one full evolutionary run: the generation loop with
// elitist reinjection from the hall of fame, stagnation-triggered shock
// events, statistics recording and early stop at a perfect fitness.
//
// Execution is single-threaded and synchronous; the only parallelism is the
// scatter/gather boundary around fitness evaluation. An Engine is not safe
// for concurrent use and runs once.
type Engine struct {
	config *Config
	deps   Collaborators

	rng     *rand.Rand
	hof     *HallOfFame
	logbook *Logbook
	ctrl    *stagnationController
	runID   string
}

// NewEngine validates the configuration and collaborator set and builds a
// ready-to-run engine. A nil config uses DefaultConfig.
func NewEngine(config *Config, deps Collaborators) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch {
	case deps.Generator == nil:
		return nil, errors.New(errors.InvalidInput, "engine requires a Generator")
	case deps.Evaluator == nil:
		return nil, errors.New(errors.InvalidInput, "engine requires an Evaluator")
	case deps.Selector == nil:
		return nil, errors.New(errors.InvalidInput, "engine requires a Selector")
	case deps.Varier == nil:
		return nil, errors.New(errors.InvalidInput, "engine requires a Varier")
	}

	if deps.Equal == nil {
		deps.Equal = core.GenesEqual
	}

	hof, err := NewHallOfFame(config.HallOfFameSize, deps.Equal)
	if err != nil {
		return nil, err
	}

	return &Engine{
		config:  config,
		deps:    deps,
		rng:     rand.New(rand.NewSource(config.RandomSeed)),
		hof:     hof,
		logbook: NewLogbook(),
		ctrl:    newStagnationController(config.Stagnation.Threshold, config.Stagnation.Kind, config.MutationRate),
		runID:   uuid.NewString(),
	}, nil
}

// HallOfFame exposes the elite archive, for reporting.
func (e *Engine) HallOfFame() *HallOfFame {
	return e.hof
}

// Run executes the generational loop until the generation budget is exhausted
// or an individual reaches fitness 0, whichever comes first. Cancellation is
// cooperative: the context is checked once per generation.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	logger := logging.GetLogger()
	ctx = logging.WithRunID(ctx, e.runID)

	logger.Info(ctx, "Starting evolutionary run: population_size=%d, max_generations=%d, shock=%s",
		e.config.PopulationSize,
		e.config.MaxGenerations,
		e.config.Stagnation.Kind)

	pop, err := core.NewPopulation(e.config.PopulationSize, e.rng, e.deps.Generator)
	if err != nil {
		return nil, err
	}

	// Generation 0: score the fresh population, seed the archive, record.
	nevals, err := e.evaluateInvalid(ctx, pop.Members())
	if err != nil {
		return nil, err
	}
	e.hof.Update(pop.Members())

	min, mean := summarize(pop.Members())
	e.logbook.Append(Record{Gen: 0, NEvals: nevals, Min: min, Mean: mean})
	e.emitSummary()

	// A perfect individual in the initial population ends the run before any
	// variation happens.
	if min == 0 {
		logger.Info(ctx, "Perfect fitness reached at generation 0, stopping early")
		return e.finish(ctx, pop), nil
	}

	for gen := 1; gen <= e.config.MaxGenerations; gen++ {
		genCtx := logging.WithGeneration(ctx, gen)

		if err := errors.CheckContext(ctx, "evolutionary run"); err != nil {
			return nil, err
		}

		e.ctrl.DecayRadiation()
		if e.ctrl.RadiationActive() && e.reporting(gen) {
			e.status(fmt.Sprintf("gen %d, radiation is %d", gen, e.ctrl.radiation))
		}

		offspring, shockEvent := e.selectOffspring(genCtx, pop, gen)

		offspring = e.deps.Varier.Vary(e.rng, offspring, e.config.CrossoverRate, e.ctrl.mutationRate)

		nevals, err := e.evaluateInvalid(genCtx, offspring)
		if err != nil {
			return nil, err
		}

		// Elitism: archive members rejoin the pool untouched, restoring the
		// population to its fixed size, then compete for archive slots again.
		offspring = append(offspring, e.hof.Members()...)
		e.hof.Update(offspring)

		if err := pop.Replace(offspring); err != nil {
			return nil, err
		}

		min, mean := summarize(pop.Members())
		e.logbook.Append(Record{
			Gen:        gen,
			NEvals:     nevals,
			Min:        min,
			Mean:       mean,
			Radiation:  e.ctrl.radiation,
			ShockEvent: shockEvent,
		})
		if e.reporting(gen) {
			e.emitSummary()
		}

		// The stagnation signal is the minimum over the whole log, not this
		// generation's minimum.
		runningMin, _ := e.logbook.RunningMin()
		e.ctrl.ObserveMin(runningMin)

		if !e.ctrl.RadiationActive() && e.reporting(gen) {
			e.status(fmt.Sprintf("gen %d, stuck count is %d", gen, e.ctrl.stuckCount))
		}

		if runningMin == 0 {
			logger.Info(genCtx, "Perfect fitness reached, stopping early")
			break
		}
	}

	return e.finish(ctx, pop), nil
}

// selectOffspring produces the next offspring pool: the normal selection path
// sized to leave room for the elites, or a shock event when the stagnation
// threshold has been crossed. It returns the pool and the shock label for the
// statistics record (empty on the normal path).
func (e *Engine) selectOffspring(ctx context.Context, pop *core.Population, gen int) ([]*core.Individual, string) {
	logger := logging.GetLogger()

	if !e.ctrl.Triggered() {
		return e.deps.Selector.Select(e.rng, pop.Members(), pop.Len()-e.hof.Len()), ""
	}

	defer e.ctrl.ResetStuck()

	switch e.ctrl.kind {
	case ShockReset:
		logger.Warn(ctx, "Stagnation threshold crossed, resetting population")
		e.status(fmt.Sprintf("gen %d, the comet strikes", gen))

		elite := e.hof.Members()
		if len(elite) > cometSurvivors {
			elite = elite[:cometSurvivors]
		}

		offspring := make([]*core.Individual, 0, pop.Len())
		for i := 0; i < pop.Len()-len(elite); i++ {
			offspring = append(offspring, e.deps.Generator.Generate(e.rng))
		}
		offspring = append(offspring, elite...)

		// The archive rebuilds from the next evaluation pass.
		e.hof.Clear()
		return offspring, shockLabelReset

	default: // ShockLeak
		logger.Warn(ctx, "Stagnation threshold crossed, elevating mutation rate to %.2f for %d generations",
			elevatedMutationRate, e.ctrl.threshold)
		e.status(fmt.Sprintf("gen %d, radiation leak", gen))

		e.ctrl.TriggerLeak()

		// A leak never touches the population directly; selection proceeds.
		return e.deps.Selector.Select(e.rng, pop.Members(), pop.Len()-e.hof.Len()), shockLabelLeak
	}
}

// evaluateInvalid scores every member whose fitness is invalid and returns
// how many were evaluated. Individual evaluations are independent, so they
// fan out across a bounded worker pool; results are gathered before the
// generation proceeds. An evaluator error aborts the run.
func (e *Engine) evaluateInvalid(ctx context.Context, members []*core.Individual) (int, error) {
	invalid := make([]*core.Individual, 0, len(members))
	for _, ind := range members {
		if !ind.Valid() {
			invalid = append(invalid, ind)
		}
	}
	if len(invalid) == 0 {
		return 0, nil
	}

	fitnesses := make([]float64, len(invalid))
	var mu sync.Mutex
	var firstErr error

	p := pool.New().WithMaxGoroutines(e.config.ConcurrencyLevel)
	for i, ind := range invalid {
		i, ind := i, ind
		p.Go(func() {
			fitness, err := e.deps.Evaluator.Evaluate(ctx, ind)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			fitnesses[i] = fitness
		})
	}
	p.Wait()

	if firstErr != nil {
		return 0, errors.WithFields(
			errors.Wrap(firstErr, errors.EvaluationFailed, "fitness evaluation failed"),
			errors.Fields{"invalid_count": len(invalid)})
	}

	for i, ind := range invalid {
		ind.SetFitness(fitnesses[i])
	}
	return len(invalid), nil
}

// finish assembles the result and fires the final callback exactly once.
func (e *Engine) finish(ctx context.Context, pop *core.Population) *Result {
	logger := logging.GetLogger()

	best := e.hof.Best()
	solved := false
	if best != nil {
		if fitness, ok := best.Fitness(); ok && fitness == 0 {
			solved = true
		}
	}

	logger.Info(ctx, "Run finished: generations_recorded=%d, solved=%v", e.logbook.Len(), solved)

	if e.deps.Final != nil {
		if solved {
			e.deps.Final(true, best)
		} else {
			e.deps.Final(false, nil)
		}
	}

	return &Result{
		FinalPopulation: pop,
		Log:             e.logbook,
		Best:            best,
		Solved:          solved,
	}
}

// reporting applies the verbosity policy for generation gen.
func (e *Engine) reporting(gen int) bool {
	return gen%e.config.Verbosity == 0
}

// status forwards a progress line to the optional status sink.
func (e *Engine) status(line string) {
	if e.deps.Status != nil {
		e.deps.Status(line)
	}
}

// emitSummary formats the standard status line from the last record's typed
// fields. Values are read straight from the record, never recovered from
// rendered text.
func (e *Engine) emitSummary() {
	if e.deps.Status == nil {
		return
	}
	rec, ok := e.logbook.Last()
	if !ok {
		return
	}
	e.status(fmt.Sprintf("gen: %d, best: %v, mean: %v", rec.Gen, rec.Min, rec.Mean))
}

// summarize computes the min and mean fitness over a member set.
func summarize(members []*core.Individual) (min, mean float64) {
	n := 0
	sum := 0.0
	for _, ind := range members {
		fitness, ok := ind.Fitness()
		if !ok {
			continue
		}
		if n == 0 || fitness < min {
			min = fitness
		}
		sum += fitness
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return min, sum / float64(n)
}
