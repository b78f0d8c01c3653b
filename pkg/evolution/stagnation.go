package evolution

// ShockKind selects which corrective action fires when the search stagnates.
type ShockKind string

const (
	// ShockReset regenerates the population from scratch, keeping only the
	// top hall of fame members ("Comet Strike").
	ShockReset ShockKind = "reset"
	// ShockLeak temporarily elevates the mutation rate ("Radiation Leak").
	ShockLeak ShockKind = "leak"
)

// Shock event labels as they appear in the statistics log.
const (
	shockLabelReset = "Comet Strike"
	shockLabelLeak  = "Radiation Leak"
)

// Mutation probability while a radiation leak is active.
const elevatedMutationRate = 0.5

// cometSurvivors is how many archive members survive a population reset.
const cometSurvivors = 3

// stagnationController tracks how many consecutive generations the running
// best fitness has failed to improve and owns the active mutation rate, which
// deviates from the configured base rate only while radiation is active.
type stagnationController struct {
	threshold int
	kind      ShockKind

	baseMutationRate float64
	mutationRate     float64

	stuckCount int
	radiation  int

	lastMin    float64
	lastMinSet bool
}

func newStagnationController(threshold int, kind ShockKind, baseMutationRate float64) *stagnationController {
	return &stagnationController{
		threshold:        threshold,
		kind:             kind,
		baseMutationRate: baseMutationRate,
		mutationRate:     baseMutationRate,
	}
}

// DecayRadiation ticks the radiation countdown at the top of a generation.
// When the counter reaches zero the base mutation rate is restored; while it
// is still running, stagnation counting is suppressed.
func (c *stagnationController) DecayRadiation() {
	c.radiation--
	if c.radiation <= 0 {
		c.radiation = 0
		c.mutationRate = c.baseMutationRate
		return
	}
	c.stuckCount = 0
}

// RadiationActive reports whether an elevated mutation rate is in effect.
func (c *stagnationController) RadiationActive() bool {
	return c.radiation > 0
}

// Triggered reports whether the stagnation threshold has been crossed.
func (c *stagnationController) Triggered() bool {
	return c.stuckCount > c.threshold
}

// TriggerLeak starts a radiation leak: the mutation rate jumps to the
// elevated value for the next threshold generations.
func (c *stagnationController) TriggerLeak() {
	c.mutationRate = elevatedMutationRate
	c.radiation = c.threshold
}

// ResetStuck clears the stagnation counter after a shock dispatch.
func (c *stagnationController) ResetStuck() {
	c.stuckCount = 0
}

// ObserveMin feeds the running minimum recorded for this generation. The
// counter increments only when the minimum matches the previous observation;
// any improvement, and the very first observation, resets it.
func (c *stagnationController) ObserveMin(runningMin float64) {
	if c.lastMinSet && runningMin == c.lastMin {
		c.stuckCount++
	} else {
		c.stuckCount = 0
	}
	c.lastMin = runningMin
	c.lastMinSet = true
}
