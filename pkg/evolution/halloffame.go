package evolution

import (
	"github.com/XiaoConstantine/evo-go/pkg/core"
	"github.com/XiaoConstantine/evo-go/pkg/errors"
)

// HallOfFame is the bounded best-of-all-time archive. Members are kept
// best-first (lowest fitness first) and deduplicated through the similar
// predicate, so two gene sequences the predicate considers equal occupy a
// single slot regardless of fitness ties.
//
// The engine uses the archive both for reporting and for elitist reinjection:
// its members bypass selection and variation and survive unchanged into the
// next generation.
type HallOfFame struct {
	capacity int
	similar  core.EqualFunc
	members  []*core.Individual
}

// NewHallOfFame creates an empty archive. A capacity below 1 is a fatal
// configuration error: the engine refuses to degrade to non-elitist behavior.
func NewHallOfFame(capacity int, similar core.EqualFunc) (*HallOfFame, error) {
	if capacity < 1 {
		return nil, errors.WithFields(
			errors.New(errors.ValidationFailed, "hall of fame capacity must be at least 1"),
			errors.Fields{"capacity": capacity})
	}
	if similar == nil {
		similar = core.GenesEqual
	}
	return &HallOfFame{
		capacity: capacity,
		similar:  similar,
		members:  make([]*core.Individual, 0, capacity),
	}, nil
}

// Update offers a batch of candidates to the archive. A candidate enters if
// the archive is not yet full or its fitness beats the current worst member,
// unless the similar predicate matches an existing member. The worst member
// is evicted when capacity is exceeded. Candidates without a valid fitness
// are ignored.
func (h *HallOfFame) Update(candidates []*core.Individual) {
	for _, cand := range candidates {
		fitness, ok := cand.Fitness()
		if !ok {
			continue
		}

		if len(h.members) >= h.capacity {
			worst, _ := h.members[len(h.members)-1].Fitness()
			if fitness >= worst {
				continue
			}
		}

		if h.contains(cand) {
			continue
		}

		h.insert(cand, fitness)
		if len(h.members) > h.capacity {
			h.members = h.members[:h.capacity]
		}
	}
}

func (h *HallOfFame) contains(cand *core.Individual) bool {
	for _, member := range h.members {
		if h.similar(cand, member) {
			return true
		}
	}
	return false
}

// insert places cand after any member of equal or better fitness, preserving
// insertion order among ties.
func (h *HallOfFame) insert(cand *core.Individual, fitness float64) {
	pos := len(h.members)
	for i, member := range h.members {
		f, _ := member.Fitness()
		if fitness < f {
			pos = i
			break
		}
	}

	h.members = append(h.members, nil)
	copy(h.members[pos+1:], h.members[pos:])
	h.members[pos] = cand
}

// Members returns the archived individuals best-first. The returned slice is
// a copy; the individuals are shared.
func (h *HallOfFame) Members() []*core.Individual {
	out := make([]*core.Individual, len(h.members))
	copy(out, h.members)
	return out
}

// Best returns the best archived individual, or nil when empty.
func (h *HallOfFame) Best() *core.Individual {
	if len(h.members) == 0 {
		return nil
	}
	return h.members[0]
}

// Len returns the current number of archived individuals.
func (h *HallOfFame) Len() int {
	return len(h.members)
}

// Clear empties the archive. Used by the population-reset shock event; the
// archive is rebuilt on the next evaluation pass.
func (h *HallOfFame) Clear() {
	h.members = h.members[:0]
}
