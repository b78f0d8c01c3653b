package evolution

// Record holds the statistics of one generation.
type Record struct {
	Gen        int     `json:"gen"`
	NEvals     int     `json:"nevals"`
	Min        float64 `json:"min"`
	Mean       float64 `json:"mean"`
	Radiation  int     `json:"radiation"`
	ShockEvent string  `json:"shock_event,omitempty"`
}

// Logbook is the append-only per-generation statistics log. Record order is
// generation order; the engine reads the min column back to detect
// stagnation, and callers use it for post-run analysis.
type Logbook struct {
	records []Record
}

// NewLogbook creates an empty logbook.
func NewLogbook() *Logbook {
	return &Logbook{records: make([]Record, 0)}
}

// Append adds one generation's record.
func (lb *Logbook) Append(rec Record) {
	lb.records = append(lb.records, rec)
}

// Len returns the number of recorded generations.
func (lb *Logbook) Len() int {
	return len(lb.records)
}

// Records returns a copy of all records in generation order.
func (lb *Logbook) Records() []Record {
	out := make([]Record, len(lb.records))
	copy(out, lb.records)
	return out
}

// Last returns the most recent record.
func (lb *Logbook) Last() (Record, bool) {
	if len(lb.records) == 0 {
		return Record{}, false
	}
	return lb.records[len(lb.records)-1], true
}

// Select returns the full ordered column of a recorded field. Recognized
// fields are "gen", "nevals", "min", "mean" and "radiation"; an unknown field
// yields nil, matching the caller-configuration error policy: the core does
// not guess.
func (lb *Logbook) Select(field string) []float64 {
	pick := func(rec Record) (float64, bool) {
		switch field {
		case "gen":
			return float64(rec.Gen), true
		case "nevals":
			return float64(rec.NEvals), true
		case "min":
			return rec.Min, true
		case "mean":
			return rec.Mean, true
		case "radiation":
			return float64(rec.Radiation), true
		}
		return 0, false
	}

	if _, ok := pick(Record{}); !ok {
		return nil
	}

	out := make([]float64, 0, len(lb.records))
	for _, rec := range lb.records {
		v, _ := pick(rec)
		out = append(out, v)
	}
	return out
}

// RunningMin returns the minimum of the min column across the whole log.
// This deliberately scans the entire history rather than comparing only
// consecutive generations; stagnation detection depends on it.
func (lb *Logbook) RunningMin() (float64, bool) {
	if len(lb.records) == 0 {
		return 0, false
	}
	min := lb.records[0].Min
	for _, rec := range lb.records[1:] {
		if rec.Min < min {
			min = rec.Min
		}
	}
	return min, true
}
