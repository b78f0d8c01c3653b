package core

import (
	"math/rand"

	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

// Population is the ordered, fixed-size working set of individuals evolved
// per generation. Its size is constant at generation boundaries; only the
// engine replaces its contents, and only through Replace.
type Population struct {
	size    int
	members []*Individual
}

// NewPopulation bulk-constructs n individuals through the domain generator.
func NewPopulation(n int, rng *rand.Rand, generator Generator) (*Population, error) {
	if n <= 0 {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "population size must be positive"),
			errors.Fields{"size": n})
	}
	if generator == nil {
		return nil, errors.New(errors.InvalidInput, "population generator must not be nil")
	}

	members := make([]*Individual, 0, n)
	for i := 0; i < n; i++ {
		members = append(members, generator.Generate(rng))
	}

	return &Population{size: n, members: members}, nil
}

// Members returns the ordered member slice. The slice is shared with the
// population; callers must not grow or reorder it.
func (p *Population) Members() []*Individual {
	return p.members
}

// Len returns the population size.
func (p *Population) Len() int {
	return len(p.members)
}

// Replace swaps in a new ordered member sequence. The new sequence must match
// the population's fixed size.
func (p *Population) Replace(members []*Individual) error {
	if len(members) != p.size {
		return errors.WithFields(
			errors.New(errors.InvalidEngineState, "replacement must preserve population size"),
			errors.Fields{"want": p.size, "got": len(members)})
	}
	p.members = members
	return nil
}
