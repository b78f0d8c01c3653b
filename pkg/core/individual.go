package core

import (
	"github.com/google/uuid"
)

// Individual is one candidate solution: a fixed-length gene sequence plus a
// lazily computed fitness. Fitness is a scalar cost where lower is better and
// 0 means optimal.
//
// The fitness caching discipline is strict: once a fitness has been computed
// for a gene sequence it is never recomputed within a run. Any operator that
// modifies genes must call Invalidate so the next evaluation pass picks the
// individual up again.
type Individual struct {
	id      string
	genes   []int
	fitness float64
	valid   bool
}

// NewIndividual creates an individual with the given genes and no fitness.
// The slice is owned by the individual after this call.
func NewIndividual(genes []int) *Individual {
	return &Individual{
		id:    uuid.NewString(),
		genes: genes,
	}
}

// ID returns the individual's unique identifier. IDs are diagnostics only;
// they never participate in equality or selection.
func (ind *Individual) ID() string {
	return ind.id
}

// Genes returns the underlying gene sequence. Callers that modify it must
// call Invalidate afterwards.
func (ind *Individual) Genes() []int {
	return ind.genes
}

// Len returns the number of genes.
func (ind *Individual) Len() int {
	return len(ind.genes)
}

// Fitness returns the cached fitness and whether it is valid.
func (ind *Individual) Fitness() (float64, bool) {
	return ind.fitness, ind.valid
}

// Valid reports whether a fitness has been assigned since the genes last
// changed.
func (ind *Individual) Valid() bool {
	return ind.valid
}

// SetFitness assigns a fitness and marks it valid.
func (ind *Individual) SetFitness(fitness float64) {
	ind.fitness = fitness
	ind.valid = true
}

// Invalidate discards the cached fitness after a gene modification.
func (ind *Individual) Invalidate() {
	ind.fitness = 0
	ind.valid = false
}

// Clone returns a deep copy with a fresh ID. The cached fitness carries over,
// so an untouched clone is not re-evaluated.
func (ind *Individual) Clone() *Individual {
	genes := make([]int, len(ind.genes))
	copy(genes, ind.genes)

	return &Individual{
		id:      uuid.NewString(),
		genes:   genes,
		fitness: ind.fitness,
		valid:   ind.valid,
	}
}

// GenesEqual reports whether two individuals carry identical gene sequences.
// It is the default deduplication predicate for the hall of fame.
func GenesEqual(a, b *Individual) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, g := range a.genes {
		if b.genes[i] != g {
			return false
		}
	}
	return true
}
