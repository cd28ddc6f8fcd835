package adc128

import "errors"

var (
	// ErrInvalidChannelSpec is returned when the channel spec string is
	// empty or contains anything other than decimal digits.
	ErrInvalidChannelSpec = errors.New("channel spec must be a non-empty string of digits")

	// ErrInvalidSampleCount is returned for a sample count below 1.
	ErrInvalidSampleCount = errors.New("sample count must be at least 1")

	// ErrTransfer is returned when the full-duplex block exchange fails
	// or completes short. The acquisition has no partial results.
	ErrTransfer = errors.New("spi block transfer failed")

	// ErrShortBlock is returned when the receive buffer is too small to
	// hold every sample word of the plan.
	ErrShortBlock = errors.New("receive block shorter than plan")

	// ErrOutputWrite is returned when the captured data could not be
	// fully written to the output file.
	ErrOutputWrite = errors.New("short write of captured data")
)
