package adc128

// ChannelStats is the finalized summary for one channel.
//
// Average divides the running sum by the pass count, not by the number
// of words recorded for the channel, so a channel repeated within one
// pass averages above its own maximum.
type ChannelStats struct {
	Channel  int
	Min      uint16
	Max      uint16
	Sum      uint64
	Average  uint64
	DeltaMin int64 // Average - Min
	DeltaMax int64 // Max - Average
}

type accum struct {
	min uint16
	max uint16
	sum uint64
}

// Aggregator folds the decoded word sequence into per-channel
// accumulators. It is built for one plan, fed every decoded word in
// order, then finalized exactly once.
type Aggregator struct {
	plan  Plan
	stats map[int]*accum
	final bool
}

// NewAggregator returns an Aggregator sized for the distinct channels
// of the plan.
func NewAggregator(p Plan) *Aggregator {
	return &Aggregator{
		plan:  p,
		stats: make(map[int]*accum, len(p.channels)),
	}
}

// Add folds one decoded sample into its channel accumulator. The
// accumulator is seeded on the channel's first word of the first pass
// (min at the top of the range, max and sum at zero); later words for
// the same channel, including repeats within one pass, only accumulate.
func (a *Aggregator) Add(channel int, value uint16) {
	st := a.stats[channel]
	if st == nil {
		st = &accum{min: 0xffff}
		a.stats[channel] = st
	}
	if value < st.min {
		st.min = value
	}
	if value > st.max {
		st.max = value
	}
	st.sum += uint64(value)
}

// Finalize computes the derived statistics and returns one entry per
// distinct channel, in plan order. The aggregator is read-only after.
func (a *Aggregator) Finalize() []ChannelStats {
	a.final = true
	out := make([]ChannelStats, 0, len(a.stats))
	seen := make(map[int]bool, len(a.stats))
	for _, ch := range a.plan.channels {
		ch %= 16
		if seen[ch] {
			continue
		}
		seen[ch] = true
		st := a.stats[ch]
		if st == nil {
			continue
		}
		avg := st.sum / uint64(a.plan.samples)
		out = append(out, ChannelStats{
			Channel:  ch,
			Min:      st.min,
			Max:      st.max,
			Sum:      st.sum,
			Average:  avg,
			DeltaMin: int64(avg) - int64(st.min),
			DeltaMax: int64(st.max) - int64(avg),
		})
	}
	return out
}

// Finalized reports whether Finalize has been called.
func (a *Aggregator) Finalized() bool { return a.final }
