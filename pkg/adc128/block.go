package adc128

// Constants from the datasheet

// FrameSize is the width of one command frame and one sample word, in
// bytes. The device converts with 16 SCLK cycles per channel.
const FrameSize = 2

// Control register layout: the multiplexer address sits in bits 5:3 of
// the first byte clocked out; every other bit is don't-care.
const (
	ctrlChanShift = 3
	ctrlChanMask  = 0xF
)

// ControlByte encodes the channel select for one command frame.
func ControlByte(channel int) byte {
	return byte(channel&ctrlChanMask) << ctrlChanShift
}

// ControlChannel extracts the channel select from a control byte.
func ControlChannel(ctrl byte) int {
	return int(ctrl>>ctrlChanShift) & ctrlChanMask
}

// BlockLen returns the exchange size in bytes. One extra frame is
// appended because the device returns the conversion for frame k while
// frame k+1 is shifting, so the last requested conversion needs a
// trailing frame to clock out through.
func (p Plan) BlockLen() int {
	return p.Words()*FrameSize + FrameSize
}

// Block holds the paired transmit and receive buffers for one
// acquisition. Both are allocated together, have identical length and
// live exactly as long as the capture that owns them.
type Block struct {
	Tx []byte
	Rx []byte

	plan Plan
}

// NewBlock allocates the buffers for the plan and fills the transmit
// side: for each pass, one command frame per channel position, control
// byte first. The trailing frame stays zero; only the receive side of
// it carries data.
func NewBlock(p Plan) *Block {
	n := p.BlockLen()
	b := &Block{
		Tx:   make([]byte, n),
		Rx:   make([]byte, n),
		plan: p,
	}
	off := 0
	for i := 0; i < p.samples; i++ {
		for _, ch := range p.channels {
			b.Tx[off] = ControlByte(ch)
			off += FrameSize
		}
	}
	return b
}

// Plan returns the plan the block was built for.
func (b *Block) Plan() Plan { return b.plan }
