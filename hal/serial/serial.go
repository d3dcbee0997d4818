// Package serial drives a USART through the non-blocking word protocol.
//
// Every primitive either completes, reports nb.ErrPending for this attempt,
// or surfaces a fatal line error as an errcode. An abandoned Pending
// attempt leaves no state behind: the data register is only ever written
// on the attempt that accepts the word, and error flags are cleared in the
// same attempt that reports them.
package serial

import (
	"sync/atomic"

	"tinyhal/cap"
	"tinyhal/device/f0"
	"tinyhal/errcode"
	"tinyhal/hal/gpio"
	"tinyhal/hal/rcc"
	"tinyhal/nb"
)

// Bus is the peripheral clock enable resource the port lives on, either
// *rcc.APB1 or *rcc.APB2.
type Bus interface {
	Enable(mask uint32)
}

// Handle exclusively represents one USART register block. The clk selector
// picks the bus clock the baud divisor is derived from.
type Handle struct {
	regs       *f0.USART_Type
	enableMask uint32
	clk        func(rcc.Clocks) rcc.Hertz
	used       atomic.Bool
}

// NewHandle wraps a USART register block. Production code receives handles
// from hal.Take; tests may wrap a mock block directly.
func NewHandle(regs *f0.USART_Type, enableMask uint32, clk func(rcc.Clocks) rcc.Hertz) *Handle {
	return &Handle{regs: regs, enableMask: enableMask, clk: clk}
}

// Config carries the line parameters. The word format is fixed at 8N1.
type Config struct {
	Baud uint32
}

// Serial is a configured port. The zero value is not usable; construct one
// with New.
type Serial struct {
	tx    Tx
	rx    Rx
	split atomic.Bool
}

// New consumes the handle and both alternate-function pins and brings the
// port up: enables the peripheral clock, programs the baud divisor from the
// frozen clock snapshot and turns the transmitter and receiver on. A second
// New on the same handle panics.
func New(h *Handle, tx, rx gpio.Alternate, cfg Config, clocks rcc.Clocks, bus Bus) *Serial {
	if !h.used.CompareAndSwap(false, true) {
		panic("serial: handle already in use")
	}
	if cfg.Baud == 0 {
		panic("serial: zero baud rate")
	}
	// Taking the pins by value moves them in; Function panics if either
	// was already consumed elsewhere.
	_, _ = tx.Function(), rx.Function()

	bus.Enable(h.enableMask)
	h.regs.BRR.Set(uint32(h.clk(clocks)) / cfg.Baud)
	h.regs.CR1.Set(f0.USART_CR1_UE | f0.USART_CR1_TE | f0.USART_CR1_RE)
	return &Serial{tx: Tx{regs: h.regs}, rx: Rx{regs: h.regs}}
}

func (s *Serial) live() {
	if s.split.Load() {
		panic("serial: port already split")
	}
}

// ReadWord attempts to receive one word. See Rx.ReadWord.
func (s *Serial) ReadWord() (byte, error) {
	s.live()
	return s.rx.ReadWord()
}

// WriteWord attempts to send one word. See Tx.WriteWord.
func (s *Serial) WriteWord(b byte) error {
	s.live()
	return s.tx.WriteWord(b)
}

// Flush reports whether all accepted words have left the shift register.
// See Tx.Flush.
func (s *Serial) Flush() error {
	s.live()
	return s.tx.Flush()
}

// Split consumes the port and yields its two directions as independently
// ownable halves. The halves share no register fields: Tx owns ISR.TXE/TC
// and TDR, Rx owns the receive flags, ICR and RDR.
func (s *Serial) Split() (*Tx, *Rx) {
	if !s.split.CompareAndSwap(false, true) {
		panic("serial: port already split")
	}
	tx, rx := s.tx, s.rx
	return &tx, &rx
}

// Tx is the transmit half of a port.
type Tx struct {
	regs *f0.USART_Type
}

// WriteWord latches b for transmission, or returns nb.ErrPending without
// touching the data register if the holding register is full. A word is
// written at most once per accepted attempt, so retrying after Pending
// never duplicates data.
func (t *Tx) WriteWord(b byte) error {
	if !t.regs.ISR.HasBits(f0.USART_ISR_TXE) {
		return nb.ErrPending
	}
	t.regs.TDR.Set(uint32(b))
	return nil
}

// Flush returns nil once every accepted word has been shifted out, and
// nb.ErrPending while transmission is still in flight.
func (t *Tx) Flush() error {
	if !t.regs.ISR.HasBits(f0.USART_ISR_TC) {
		return nb.ErrPending
	}
	return nil
}

// Rx is the receive half of a port.
type Rx struct {
	regs *f0.USART_Type
}

// ReadWord returns a received word if one is waiting, nb.ErrPending if not,
// or the fatal line error for this attempt. Each error flag is cleared
// before the error returns, so the next attempt sees a clean status and the
// error is reported exactly once.
func (r *Rx) ReadWord() (byte, error) {
	isr := r.regs.ISR.Get()
	switch {
	case isr&f0.USART_ISR_ORE != 0:
		r.regs.ICR.Set(f0.USART_ICR_ORECF)
		return 0, errcode.Overrun
	case isr&f0.USART_ISR_FE != 0:
		r.regs.ICR.Set(f0.USART_ICR_FECF)
		return 0, errcode.Framing
	case isr&f0.USART_ISR_NF != 0:
		r.regs.ICR.Set(f0.USART_ICR_NCF)
		return 0, errcode.Noise
	case isr&f0.USART_ISR_PE != 0:
		r.regs.ICR.Set(f0.USART_ICR_PECF)
		return 0, errcode.Parity
	case isr&f0.USART_ISR_RXNE != 0:
		return byte(r.regs.RDR.Get()), nil
	}
	return 0, nb.ErrPending
}

// Capability conformance.
var (
	_ cap.Reader[byte] = (*Serial)(nil)
	_ cap.Writer[byte] = (*Serial)(nil)
	_ cap.Flusher      = (*Serial)(nil)
	_ cap.Writer[byte] = (*Tx)(nil)
	_ cap.Flusher      = (*Tx)(nil)
	_ cap.Reader[byte] = (*Rx)(nil)
)
