// Package gpio owns the general-purpose I/O ports and hands out one typed
// value per physical pin.
//
// Splitting a port yields 16 pin values plus a Config proxy. The partition
// is: Config owns the shared configuration fields (MODER, PUPDR, OTYPER,
// OSPEEDR, AFRL/AFRH, LCKR); each pin value owns its own bit of IDR and,
// through the set/reset register, of ODR. Pin reads and writes therefore
// need no synchronization at all. Mode transitions touch the shared fields;
// each read-modify-write of a shared field runs inside critical.Do, so
// transitions from different preemptible contexts cannot tear each other.
package gpio

import (
	"sync/atomic"

	"tinyhal/critical"
	"tinyhal/device/f0"
	"tinyhal/hal/rcc"
)

// Handle exclusively represents one port's register block. It is obtained
// from the peripheral registry and consumed by Split.
type Handle struct {
	regs       *f0.GPIO_Type
	enableMask uint32
	split      atomic.Bool
}

// NewHandle wraps a port register block; enableMask is the port's bit in the
// AHB clock enable field. Production code receives handles from hal.Take;
// tests may wrap a mock block directly.
func NewHandle(regs *f0.GPIO_Type, enableMask uint32) *Handle {
	return &Handle{regs: regs, enableMask: enableMask}
}

// Split consumes the handle, enables the port clock and yields the port's
// pins in their reset state (floating input) together with the shared
// configuration proxy. A second call panics: the handle was moved.
func (h *Handle) Split(ahb *rcc.AHB) *Parts {
	if !h.split.CompareAndSwap(false, true) {
		panic("gpio: port already split")
	}
	ahb.Enable(h.enableMask)
	return &Parts{
		Config: Config{regs: h.regs},
		P0:     newFloating(h.regs, 0),
		P1:     newFloating(h.regs, 1),
		P2:     newFloating(h.regs, 2),
		P3:     newFloating(h.regs, 3),
		P4:     newFloating(h.regs, 4),
		P5:     newFloating(h.regs, 5),
		P6:     newFloating(h.regs, 6),
		P7:     newFloating(h.regs, 7),
		P8:     newFloating(h.regs, 8),
		P9:     newFloating(h.regs, 9),
		P10:    newFloating(h.regs, 10),
		P11:    newFloating(h.regs, 11),
		P12:    newFloating(h.regs, 12),
		P13:    newFloating(h.regs, 13),
		P14:    newFloating(h.regs, 14),
		P15:    newFloating(h.regs, 15),
	}
}

// Parts is a split port.
type Parts struct {
	Config Config

	P0, P1, P2, P3, P4, P5, P6, P7       Floating
	P8, P9, P10, P11, P12, P13, P14, P15 Floating
}

// Config is the borrowed proxy over a port's shared configuration fields.
// Every method is one read-modify-write of one register, run with
// preemption suspended; the critical section covers exactly that sequence.
type Config struct {
	regs *f0.GPIO_Type
}

func (c *Config) setMode(n uint8, bits uint32) {
	critical.Do(func() {
		c.regs.MODER.ReplaceBits(bits, 0x3, n*2)
	})
}

func (c *Config) setPull(n uint8, bits uint32) {
	critical.Do(func() {
		c.regs.PUPDR.ReplaceBits(bits, 0x3, n*2)
	})
}

func (c *Config) setOutputType(n uint8, bit uint32) {
	critical.Do(func() {
		c.regs.OTYPER.ReplaceBits(bit, 0x1, n)
	})
}

func (c *Config) setAltFunc(n uint8, fn uint8) {
	reg := &c.regs.AFRL
	if n >= 8 {
		reg = &c.regs.AFRH
	}
	critical.Do(func() {
		reg.ReplaceBits(uint32(fn), 0xF, (n%8)*4)
	})
}
