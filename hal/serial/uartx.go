//go:build rp2040 || rp2350

package serial

import (
	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"tinyhal/cap"
	"tinyhal/nb"
)

// Uartx adapts an interrupt-driven uartx port to the same word capabilities
// the register-level driver implements, so component code written against
// cap.Reader/cap.Writer runs unchanged on RP2 parts.
//
// Receive is genuinely non-blocking: words come out of the ISR-fed ring.
// Transmit rides uartx.Write, which drains the FIFO before returning, so
// WriteWord never reports Pending and Flush is trivially satisfied.
type Uartx struct {
	u *uartx.UART
}

// NewUartx wraps an already configured uartx port.
func NewUartx(u *uartx.UART) *Uartx { return &Uartx{u: u} }

// ReadWord returns the next buffered word, or nb.ErrPending when the ring
// is empty.
func (p *Uartx) ReadWord() (byte, error) {
	if p.u.Buffered() == 0 {
		return 0, nb.ErrPending
	}
	b, err := p.u.ReadByte()
	if err != nil {
		return 0, nb.ErrPending
	}
	return b, nil
}

// WriteWord sends one word through the interrupt-driven ring.
func (p *Uartx) WriteWord(b byte) error {
	buf := [1]byte{b}
	_, err := p.u.Write(buf[:])
	return err
}

// Flush reports completion; uartx.Write has already drained the hardware
// FIFO by the time it returns.
func (p *Uartx) Flush() error { return nil }

var (
	_ cap.Reader[byte] = (*Uartx)(nil)
	_ cap.Writer[byte] = (*Uartx)(nil)
	_ cap.Flusher      = (*Uartx)(nil)
)
