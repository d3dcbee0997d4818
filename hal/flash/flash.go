// Package flash owns the flash interface block. The only part of it the
// clock tree cares about is the access-control register: wait states must be
// raised before the core clock goes up and may be lowered after it comes
// down, so the ACR is handed to the clock freeze as its own resource.
package flash

import (
	"sync/atomic"

	"tinyhal/device/f0"
)

// Handle exclusively represents the flash register block. It is obtained
// from the peripheral registry and consumed by Constrain.
type Handle struct {
	regs        *f0.FLASH_Type
	constrained atomic.Bool
}

// NewHandle wraps a flash register block. Production code receives the
// handle from hal.Take; tests may wrap a mock block directly.
func NewHandle(regs *f0.FLASH_Type) *Handle {
	return &Handle{regs: regs}
}

// Constrain consumes the handle and yields its sub-resources. A second call
// panics: the handle was moved.
func (h *Handle) Constrain() *Parts {
	if !h.constrained.CompareAndSwap(false, true) {
		panic("flash: handle already constrained")
	}
	return &Parts{ACR: ACR{regs: h.regs}}
}

// Parts is the set of split flash resources.
type Parts struct {
	ACR ACR
}

// ACR owns the access-control register.
type ACR struct {
	regs *f0.FLASH_Type
}

// SetLatency programs the flash wait states. Called by the clock freeze in
// the hardware-mandated order; not normally called by applications.
func (a *ACR) SetLatency(waitStates uint8) {
	a.regs.ACR.ReplaceBits(uint32(waitStates)&0x7, f0.FLASH_ACR_LATENCY_Msk, 0)
}

// Latency returns the currently programmed wait states.
func (a *ACR) Latency() uint8 {
	return uint8((a.regs.ACR.Get() & f0.FLASH_ACR_LATENCY_Msk) >> f0.FLASH_ACR_LATENCY_Pos)
}
