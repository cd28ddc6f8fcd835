package adc128

import (
	"fmt"
	"time"
)

// Conn is the full-duplex exchange the capture needs from the bus
// layer. periph.io's spi.Conn satisfies it.
type Conn interface {
	// Tx transmits w and fills r simultaneously; len(w) == len(r).
	Tx(w, r []byte) error
}

// Timing brackets the single block exchange. It is observational only;
// nothing feeds back into control logic.
type Timing struct {
	Start   time.Time
	Elapsed time.Duration
	Bytes   int
}

// BitsPerSecond is the effective wire rate of the exchange.
func (t Timing) BitsPerSecond() float64 {
	if t.Elapsed <= 0 {
		return 0
	}
	return float64(t.Bytes) * 8 * float64(time.Second) / float64(t.Elapsed)
}

// Kbps is the wire rate in units of 1024 bits per second.
func (t Timing) Kbps() float64 {
	return t.BitsPerSecond() / 1024
}

// KSamplesPerSecond divides the wire rate by the 16 bits of one sample
// word and the pass count.
func (t Timing) KSamplesPerSecond(samples int) float64 {
	if samples < 1 {
		return 0
	}
	return t.BitsPerSecond() / 16 / float64(samples)
}

// Exchange clocks the whole block through the device in one full-duplex
// transfer and records its timing. A failed or short exchange is fatal
// for the acquisition: the protocol has no partial-completion
// semantics, so there is no retry.
func Exchange(c Conn, b *Block) (Timing, error) {
	start := time.Now()
	err := c.Tx(b.Tx, b.Rx)
	elapsed := time.Since(start)
	if err != nil {
		return Timing{}, fmt.Errorf("%w: %v", ErrTransfer, err)
	}
	return Timing{Start: start, Elapsed: elapsed, Bytes: len(b.Tx)}, nil
}
