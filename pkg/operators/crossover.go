package operators

import (
	"math/rand"

	"github.com/XiaoConstantine/evo-go/pkg/core"
)

// Mater recombines two individuals in place.
type Mater interface {
	Mate(rng *rand.Rand, a, b *core.Individual)
}

// OnePointCrossover swaps the gene tails of two individuals at a random cut
// point, producing two offspring in place.
type OnePointCrossover struct{}

// NewOnePointCrossover creates a one-point crossover operator.
func NewOnePointCrossover() *OnePointCrossover {
	return &OnePointCrossover{}
}

// Mate cuts both gene sequences at the same point in [1, len-1] and swaps
// the tails. Both individuals are invalidated. Sequences shorter than two
// genes have no interior cut point and are left untouched.
func (c *OnePointCrossover) Mate(rng *rand.Rand, a, b *core.Individual) {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	if n < 2 {
		return
	}

	point := 1 + rng.Intn(n-1)
	genesA, genesB := a.Genes(), b.Genes()
	for i := point; i < n; i++ {
		genesA[i], genesB[i] = genesB[i], genesA[i]
	}

	a.Invalidate()
	b.Invalidate()
}
