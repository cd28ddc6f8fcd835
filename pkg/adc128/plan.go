// Package adc128 drives a TI ADC128S052 multi-channel ADC over SPI.
//
// One acquisition is a single full-duplex block exchange: the transmit
// side clocks out one 16-bit command frame per (pass, channel) pair and
// the device returns the conversion for each frame one frame late. The
// package builds the command block, runs the exchange, decodes the
// returned words and reduces them to per-channel statistics.
package adc128

import "fmt"

// Plan describes one batched acquisition: the channel sequence clocked
// out during each pass, in order, and the number of passes. A Plan is
// immutable once built.
type Plan struct {
	channels []int
	samples  int
}

// ParsePlan builds a Plan from a channel spec string and a pass count.
// Each character of the spec is one decimal digit naming a channel;
// channels may repeat and appear in any order, e.g. "0011" samples
// channel 0 twice then channel 1 twice per pass.
func ParsePlan(spec string, samples int) (Plan, error) {
	if len(spec) == 0 {
		return Plan{}, fmt.Errorf("%w: empty spec", ErrInvalidChannelSpec)
	}
	if samples < 1 {
		return Plan{}, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, samples)
	}
	channels := make([]int, len(spec))
	for i := 0; i < len(spec); i++ {
		c := spec[i]
		if c < '0' || c > '9' {
			return Plan{}, fmt.Errorf("%w: %q at position %d", ErrInvalidChannelSpec, c, i)
		}
		channels[i] = int(c - '0')
	}
	return Plan{channels: channels, samples: samples}, nil
}

// Channels returns a copy of the per-pass channel sequence.
func (p Plan) Channels() []int {
	out := make([]int, len(p.channels))
	copy(out, p.channels)
	return out
}

// Samples returns the number of passes over the channel sequence.
func (p Plan) Samples() int { return p.samples }

// Words returns the total number of sample words the acquisition
// produces: one per (pass, channel position) pair.
func (p Plan) Words() int { return len(p.channels) * p.samples }

func (p Plan) String() string {
	return fmt.Sprintf("Plan{channels:%v, samples:%d}", p.channels, p.samples)
}
