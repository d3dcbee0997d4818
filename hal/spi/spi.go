// Package spi drives an SPI controller in master mode through the
// non-blocking word protocol, and derives the blocking bus interface
// tinygo.org/x/drivers component drivers expect.
package spi

import (
	"sync/atomic"

	"tinygo.org/x/drivers"

	"tinyhal/cap"
	"tinyhal/device/f0"
	"tinyhal/errcode"
	"tinyhal/hal/gpio"
	"tinyhal/hal/rcc"
	"tinyhal/nb"
)

// Bus is the peripheral clock enable resource the controller lives on.
type Bus interface {
	Enable(mask uint32)
}

// Handle exclusively represents one SPI register block.
type Handle struct {
	regs       *f0.SPI_Type
	enableMask uint32
	clk        func(rcc.Clocks) rcc.Hertz
	used       atomic.Bool
}

// NewHandle wraps an SPI register block. Production code receives handles
// from hal.Take; tests may wrap a mock block directly.
func NewHandle(regs *f0.SPI_Type, enableMask uint32, clk func(rcc.Clocks) rcc.Hertz) *Handle {
	return &Handle{regs: regs, enableMask: enableMask, clk: clk}
}

// Config carries the bus parameters. Frequency is the highest acceptable
// clock; the divisor is rounded down to the nearest power of two the bus
// clock allows. Mode is the usual CPOL/CPHA encoding 0..3.
type Config struct {
	Frequency rcc.Hertz
	Mode      uint8
}

// SPI is a configured controller. Not safe for concurrent use; a transfer
// in flight belongs to the context that started it.
type SPI struct {
	regs     *f0.SPI_Type
	inflight bool
}

// New consumes the handle and the three bus pins and brings the controller
// up in master mode with software slave select. A second New on the same
// handle panics.
func New(h *Handle, sck, mosi, miso gpio.Alternate, cfg Config, clocks rcc.Clocks, bus Bus) *SPI {
	if !h.used.CompareAndSwap(false, true) {
		panic("spi: handle already in use")
	}
	if cfg.Frequency == 0 {
		panic("spi: zero bus frequency")
	}
	if cfg.Mode > 3 {
		panic("spi: bad mode")
	}
	_, _, _ = sck.Function(), mosi.Function(), miso.Function()

	bus.Enable(h.enableMask)

	pclk := uint32(h.clk(clocks))
	br := uint32(0)
	for pclk/(2<<br) > uint32(cfg.Frequency) && br < 7 {
		br++
	}

	cr1 := uint32(f0.SPI_CR1_MSTR | f0.SPI_CR1_SSM | f0.SPI_CR1_SSI)
	cr1 |= br << f0.SPI_CR1_BR_Pos
	if cfg.Mode&0x1 != 0 {
		cr1 |= f0.SPI_CR1_CPHA
	}
	if cfg.Mode&0x2 != 0 {
		cr1 |= f0.SPI_CR1_CPOL
	}
	h.regs.CR1.Set(cr1 | f0.SPI_CR1_SPE)
	return &SPI{regs: h.regs}
}

// TransferWord clocks one word out and the simultaneous word in. The first
// accepting attempt latches w into the data register; until the inbound
// word arrives, further attempts return nb.ErrPending without touching the
// data register again, so the transfer continues regardless of the word
// passed on the retry. An overrun aborts the transfer with errcode.Overrun
// after clearing the flag.
func (s *SPI) TransferWord(w byte) (byte, error) {
	if s.regs.SR.HasBits(f0.SPI_SR_OVR) {
		// Clear sequence: read DR then SR.
		_ = s.regs.DR.Get()
		_ = s.regs.SR.Get()
		s.inflight = false
		return 0, errcode.Overrun
	}
	if !s.inflight {
		if !s.regs.SR.HasBits(f0.SPI_SR_TXE) {
			return 0, nb.ErrPending
		}
		s.regs.DR.Set(uint32(w))
		s.inflight = true
	}
	if !s.regs.SR.HasBits(f0.SPI_SR_RXNE) {
		return 0, nb.ErrPending
	}
	s.inflight = false
	return byte(s.regs.DR.Get()), nil
}

// Transfer is the blocking form of TransferWord.
func (s *SPI) Transfer(b byte) (byte, error) {
	return nb.Block(func() (byte, error) { return s.TransferWord(b) })
}

// Tx clocks out w while storing the simultaneous input in r. The buffers
// must be the same length; w may be nil to clock out zeros, r may be nil to
// discard input.
func (s *SPI) Tx(w, r []byte) error {
	n := len(w)
	if w == nil {
		n = len(r)
	} else if r != nil && len(r) != len(w) {
		return &errcode.E{C: errcode.Error, Op: "spi.Tx"}
	}
	for i := 0; i < n; i++ {
		var out byte
		if w != nil {
			out = w[i]
		}
		in, err := s.Transfer(out)
		if err != nil {
			return err
		}
		if r != nil {
			r[i] = in
		}
	}
	return nil
}

var (
	_ cap.Transferer[byte] = (*SPI)(nil)
	_ drivers.SPI          = (*SPI)(nil)
)
