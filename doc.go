// Package evo is an elitist evolutionary search engine for fixed-length
// integer genomes.
//
// Evo-Go runs a generational genetic algorithm with a hall-of-fame archive:
// the best individuals found so far bypass variation and are reinjected into
// every generation, so the best fitness in the statistics log never regresses.
// When the search stagnates, the engine fires a configurable shock event to
// push it out of the local optimum.
//
// Key features:
//
//   - Elitist generational loop: selection, crossover and mutation produce an
//     offspring pool sized to leave room for the archive members, which rejoin
//     untouched each generation.
//   - Hall of fame: a bounded, deduplicated archive ordered best first, with
//     a pluggable similarity predicate.
//   - Stagnation detection: the engine tracks consecutive generations without
//     an improvement of the running minimum and fires a shock when a
//     threshold is crossed.
//   - Shock events: a population reset that keeps only the top archive
//     members and regenerates the rest, or a temporary mutation-rate surge
//     that decays over a fixed number of generations.
//   - Statistics logbook: one record per generation with evaluation counts,
//     min and mean fitness and shock annotations, queryable by column.
//   - Parallel fitness evaluation across a bounded worker pool, with
//     deterministic statistics for a fixed seed.
//
// The engine is domain-agnostic: problems plug in through small capability
// interfaces (Generator, Evaluator, Selector, Varier) defined in pkg/core,
// with ready-made tournament selection, one-point crossover and bounded
// uniform integer mutation in pkg/operators.
//
// Quick start:
//
//	import (
//	    "context"
//	    "math/rand"
//
//	    "github.com/XiaoConstantine/evo-go/pkg/core"
//	    "github.com/XiaoConstantine/evo-go/pkg/evolution"
//	    "github.com/XiaoConstantine/evo-go/pkg/operators"
//	)
//
//	func main() {
//	    upper := make([]int, 100) // bit-string genome
//	    for i := range upper {
//	        upper[i] = 1
//	    }
//
//	    mutation, _ := operators.NewUniformIntMutation(upper, 0.01)
//	    tournament, _ := operators.NewTournament(2)
//
//	    engine, _ := evolution.NewEngine(nil, evolution.Collaborators{
//	        Generator: core.GeneratorFunc(func(rng *rand.Rand) *core.Individual {
//	            genes := make([]int, len(upper))
//	            for i := range genes {
//	                genes[i] = rng.Intn(2)
//	            }
//	            return core.NewIndividual(genes)
//	        }),
//	        Evaluator: core.EvaluatorFunc(func(ctx context.Context, ind *core.Individual) (float64, error) {
//	            zeros := 0
//	            for _, g := range ind.Genes() {
//	                if g == 0 {
//	                    zeros++
//	                }
//	            }
//	            return float64(zeros), nil
//	        }),
//	        Selector: tournament,
//	        Varier:   operators.NewVarAnd(operators.NewOnePointCrossover(), mutation),
//	    })
//
//	    result, _ := engine.Run(context.Background())
//	    _ = result.Solved
//	}
//
// Fitness is minimized and a fitness of exactly 0 means solved; the run stops
// early as soon as any individual reaches it.
//
// Configuration can be loaded from YAML files through pkg/config, which
// overlays files over defaults and validates the merged result:
//
//	cfg, err := config.Load("run.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logging.SetLogger(cfg.BuildLogger())
//	engine, err := evolution.NewEngine(&cfg.Engine, deps)
//
// Runs are reproducible: the engine owns a single seeded random source, and
// identical configurations with deterministic collaborators produce identical
// statistics logs regardless of the evaluation concurrency level.
//
// See the examples directory for a complete OneMax run and a Sudoku solver
// built on candidate-list genome encoding.
//
// For more information and source code, visit:
// https://github.com/XiaoConstantine/evo-go
//
// Evo-Go is released under the MIT License.
package evo
