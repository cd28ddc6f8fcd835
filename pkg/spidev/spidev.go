// Package spidev opens Linux spidev ports and negotiates the transfer
// parameters used for block exchanges.
package spidev

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

var (
	// ErrDeviceOpen is returned when the spidev node cannot be opened.
	ErrDeviceOpen = errors.New("cannot open spi device")

	// ErrModeNegotiation is returned when the mode or word size cannot
	// be applied to the port.
	ErrModeNegotiation = errors.New("cannot set spi mode")

	// ErrSpeedNegotiation is returned when the clock limit cannot be
	// applied to the port.
	ErrSpeedNegotiation = errors.New("cannot set spi max speed")
)

// Init loads the host drivers. Call once before Open.
func Init() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceOpen, err)
	}
	return nil
}

// Port wraps an open spidev port together with the parameters
// negotiated on it.
type Port struct {
	port  spi.PortCloser
	name  string
	speed physic.Frequency
}

// Open opens a named spidev port, e.g. "/dev/spidev1.1".
func Open(name string) (*Port, error) {
	p, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDeviceOpen, name, err)
	}
	return &Port{port: p, name: name}, nil
}

// Connect negotiates clock speed, SPI mode and word size, returning the
// connection used for full-duplex exchanges. The exchange blocks until
// the kernel completes it; there is no timeout on spidev transfers.
func (p *Port) Connect(speedHz uint32, mode uint8, bits int) (spi.Conn, error) {
	f := physic.Frequency(speedHz) * physic.Hertz
	if err := p.port.LimitSpeed(f); err != nil {
		return nil, fmt.Errorf("%w: %d Hz: %v", ErrSpeedNegotiation, speedHz, err)
	}
	c, err := p.port.Connect(f, spi.Mode(mode), bits)
	if err != nil {
		return nil, fmt.Errorf("%w: mode %d, %d bits per word: %v", ErrModeNegotiation, mode, bits, err)
	}
	p.speed = f
	return c, nil
}

// Speed reports the clock negotiated by Connect.
func (p *Port) Speed() physic.Frequency { return p.speed }

// Name reports the port name given to Open.
func (p *Port) Name() string { return p.name }

// Close releases the port.
func (p *Port) Close() error { return p.port.Close() }

func (p *Port) String() string {
	return fmt.Sprintf("spidev[%s @ %s]", p.name, p.speed)
}
