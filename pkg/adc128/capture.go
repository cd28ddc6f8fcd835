package adc128

import (
	"fmt"
	"io"
)

// Result of one batched acquisition.
type Result struct {
	// Stats holds one entry per distinct channel, in plan order.
	Stats []ChannelStats

	// Timing of the block exchange.
	Timing Timing

	// Raw is the receive block with the latency frame stripped:
	// big-endian sample words in (pass, channel position) order.
	Raw []byte
}

// Capture runs the full pipeline against an open connection: build the
// command block, clock it through the device, decode the returned words
// and fold them into per-channel statistics. On any failure no
// statistics are produced.
func Capture(c Conn, p Plan) (*Result, error) {
	b := NewBlock(p)

	timing, err := Exchange(c, b)
	if err != nil {
		return nil, err
	}

	dec, err := NewDecoder(b)
	if err != nil {
		return nil, err
	}

	agg := NewAggregator(p)
	for {
		ch, val, ok := dec.Next()
		if !ok {
			break
		}
		agg.Add(ch, val)
	}

	return &Result{
		Stats:  agg.Finalize(),
		Timing: timing,
		Raw:    b.Rx[FrameSize:],
	}, nil
}

// WriteRaw persists the captured words exactly as decoded. The write
// must cover the whole buffer or the acquisition's output is considered
// lost.
func (r *Result) WriteRaw(w io.Writer) error {
	n, err := w.Write(r.Raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if n != len(r.Raw) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrOutputWrite, n, len(r.Raw))
	}
	return nil
}
