package adc128

import (
	"encoding/binary"
	"fmt"
)

// Decoder walks a received block one sample word at a time. Words are
// big-endian on the wire regardless of host byte order. The first frame
// of the buffer is the latency artifact and is skipped; word (i, j) of
// the remainder belongs to channel channels[j] mod 16.
type Decoder struct {
	buf  []byte
	plan Plan
	pos  int
}

// NewDecoder validates the receive buffer length and positions the
// decoder past the latency frame.
func NewDecoder(b *Block) (*Decoder, error) {
	need := b.plan.BlockLen()
	if len(b.Rx) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBlock, len(b.Rx), need)
	}
	return &Decoder{buf: b.Rx[FrameSize:], plan: b.plan}, nil
}

// Next returns the logical channel and raw value of the next sample
// word. ok is false once all Words() of the plan have been consumed.
func (d *Decoder) Next() (channel int, value uint16, ok bool) {
	if d.pos >= d.plan.Words() {
		return 0, 0, false
	}
	j := d.pos % len(d.plan.channels)
	channel = d.plan.channels[j] % 16
	off := d.pos * FrameSize
	value = binary.BigEndian.Uint16(d.buf[off : off+FrameSize])
	d.pos++
	return channel, value, true
}

// Remaining reports how many sample words are left to decode.
func (d *Decoder) Remaining() int { return d.plan.Words() - d.pos }
