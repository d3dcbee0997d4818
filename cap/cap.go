// Package cap declares the abstract capabilities external driver code may
// depend on. Component drivers written against these interfaces run on any
// peripheral that implements the minimal non-blocking primitives; the
// concrete register layout never leaks past the HAL.
package cap

import "golang.org/x/exp/constraints"

// Word is the transfer unit of a serial capability, commonly uint8 for UARTs
// and uint8 or uint16 for SPI.
type Word interface{ constraints.Unsigned }

// Reader is the minimal non-blocking receive primitive. ReadWord returns the
// word if one is available, nb.ErrPending if not, or a fatal hardware error
// (overrun, framing, noise) for this attempt.
type Reader[W Word] interface {
	ReadWord() (W, error)
}

// Writer is the minimal non-blocking transmit primitive. WriteWord latches
// the word for transmission and returns nil, or returns nb.ErrPending
// without side effects if the peripheral cannot accept a word now.
type Writer[W Word] interface {
	WriteWord(W) error
}

// Flusher reports completion of all previously accepted words. Flush returns
// nb.ErrPending while transmission is still in flight.
type Flusher interface {
	Flush() error
}

// Transferer is the minimal full-duplex primitive: clock one word out and
// the simultaneous word in.
type Transferer[W Word] interface {
	TransferWord(W) (W, error)
}

// InputPin is a readable digital pin.
type InputPin interface {
	IsHigh() bool
	IsLow() bool
}

// OutputPin is a writable digital pin.
type OutputPin interface {
	High()
	Low()
	Set(level bool)
}
