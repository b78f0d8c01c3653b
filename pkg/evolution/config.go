package evolution

import (
	"github.com/go-playground/validator/v10"

	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

// StagnationConfig pairs the stagnation threshold with the shock kind that
// fires when it is crossed. Exactly one kind is active per run; the two are a
// mutually exclusive configuration, not a combination.
type StagnationConfig struct {
	// Threshold is the number of consecutive unimproved generations tolerated
	// before a shock event fires.
	Threshold int `json:"threshold" yaml:"threshold" validate:"gte=0"`

	// Kind picks the corrective action: "reset" or "leak".
	Kind ShockKind `json:"kind" yaml:"kind" validate:"oneof=reset leak"`
}

// Config contains the engine parameters. All fields are required at
// construction; NewEngine validates and refuses to run on a bad set.
type Config struct {
	PopulationSize int `json:"population_size" yaml:"population_size" validate:"required,gt=0"`
	MaxGenerations int `json:"max_generations" yaml:"max_generations" validate:"gte=0"`

	// HallOfFameSize bounds the elite archive; it must fit in the population
	// because archive members are reinjected every generation.
	HallOfFameSize int `json:"hall_of_fame_size" yaml:"hall_of_fame_size" validate:"required,gte=1,ltefield=PopulationSize"`

	CrossoverRate float64 `json:"crossover_rate" yaml:"crossover_rate" validate:"gte=0,lte=1"`
	MutationRate  float64 `json:"mutation_rate" yaml:"mutation_rate" validate:"gte=0,lte=1"`

	// RandomSeed makes runs reproducible: identical seeds and collaborator
	// behavior produce identical statistics logs.
	RandomSeed int64 `json:"random_seed" yaml:"random_seed"`

	Stagnation StagnationConfig `json:"stagnation" yaml:"stagnation"`

	// Verbosity emits a status line every N generations.
	Verbosity int `json:"verbosity" yaml:"verbosity" validate:"gte=1"`

	// ConcurrencyLevel bounds the goroutines used at the evaluation
	// scatter/gather boundary, the engine's only parallel section.
	ConcurrencyLevel int `json:"concurrency_level" yaml:"concurrency_level" validate:"gte=1"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		PopulationSize: 1000,
		MaxGenerations: 500,
		HallOfFameSize: 50,
		CrossoverRate:  0.9,
		MutationRate:   0.2,
		RandomSeed:     42,
		Stagnation: StagnationConfig{
			Threshold: 50,
			Kind:      ShockLeak,
		},
		Verbosity:        1,
		ConcurrencyLevel: 1,
	}
}

var validate = validator.New()

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, errors.ValidationFailed, "invalid engine configuration")
	}
	return nil
}
