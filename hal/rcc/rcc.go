// Package rcc owns the reset and clock control block. Constraining the RCC
// handle splits its register fields into disjoint sub-resources so that
// independent subsystems can enable their peripheral clocks without sharing
// (or locking) anything:
//
//	CFGR  - CR, CFGR and the remaining misc fields (the clock tree itself)
//	AHB   - AHBENR
//	APB1  - APB1ENR, APB1RSTR
//	APB2  - APB2ENR, APB2RSTR
//
// The partition is fixed here at design time; no runtime disjointness
// checking is needed or performed.
package rcc

import (
	"sync/atomic"

	"tinyhal/device/f0"
)

// Hertz is a frequency in Hz.
type Hertz uint32

// KHz returns n kilohertz.
func KHz(n uint32) Hertz { return Hertz(n * 1_000) }

// MHz returns n megahertz.
func MHz(n uint32) Hertz { return Hertz(n * 1_000_000) }

// Handle exclusively represents the RCC register block. It is obtained from
// the peripheral registry and consumed by Constrain.
type Handle struct {
	regs        *f0.RCC_Type
	constrained atomic.Bool
}

// NewHandle wraps an RCC register block. Production code receives the
// handle from hal.Take; tests may wrap a mock block directly.
func NewHandle(regs *f0.RCC_Type) *Handle {
	return &Handle{regs: regs}
}

// Constrain consumes the handle and yields the split sub-resources. A
// second call panics: the handle was moved.
func (h *Handle) Constrain() *RCC {
	if !h.constrained.CompareAndSwap(false, true) {
		panic("rcc: handle already constrained")
	}
	return &RCC{
		AHB:  AHB{regs: h.regs},
		APB1: APB1{regs: h.regs},
		APB2: APB2{regs: h.regs},
		CFGR: CFGR{regs: h.regs},
	}
}

// RCC is the constrained form of the clock control block. Each field may be
// moved to a different owner independently of the others.
type RCC struct {
	AHB  AHB
	APB1 APB1
	APB2 APB2
	CFGR CFGR
}

// AHB owns the AHB peripheral clock enable field.
type AHB struct {
	regs *f0.RCC_Type
}

// Enable gates the AHB peripherals in mask onto the bus clock.
func (b *AHB) Enable(mask uint32) { b.regs.AHBENR.SetBits(mask) }

// Disable removes the AHB peripherals in mask from the bus clock.
func (b *AHB) Disable(mask uint32) { b.regs.AHBENR.ClearBits(mask) }

// APB1 owns the APB1 enable and reset fields.
type APB1 struct {
	regs *f0.RCC_Type
}

// Enable gates the APB1 peripherals in mask onto the bus clock.
func (b *APB1) Enable(mask uint32) { b.regs.APB1ENR.SetBits(mask) }

// Disable removes the APB1 peripherals in mask from the bus clock.
func (b *APB1) Disable(mask uint32) { b.regs.APB1ENR.ClearBits(mask) }

// Reset pulses the reset line of the APB1 peripherals in mask.
func (b *APB1) Reset(mask uint32) {
	b.regs.APB1RSTR.SetBits(mask)
	b.regs.APB1RSTR.ClearBits(mask)
}

// APB2 owns the APB2 enable and reset fields.
type APB2 struct {
	regs *f0.RCC_Type
}

// Enable gates the APB2 peripherals in mask onto the bus clock.
func (b *APB2) Enable(mask uint32) { b.regs.APB2ENR.SetBits(mask) }

// Disable removes the APB2 peripherals in mask from the bus clock.
func (b *APB2) Disable(mask uint32) { b.regs.APB2ENR.ClearBits(mask) }

// Reset pulses the reset line of the APB2 peripherals in mask.
func (b *APB2) Reset(mask uint32) {
	b.regs.APB2RSTR.SetBits(mask)
	b.regs.APB2RSTR.ClearBits(mask)
}
