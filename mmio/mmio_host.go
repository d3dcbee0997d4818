//go:build !baremetal

package mmio

import "sync/atomic"

// Reg32 is one 32-bit register cell backed by ordinary memory. Host tests
// build register blocks out of these and drive flag bits by hand. Access is
// atomic so tests that poke registers from a second goroutine stay clean
// under the race detector.
type Reg32 struct {
	reg uint32
}

// Get reads the register.
func (r *Reg32) Get() uint32 {
	return atomic.LoadUint32(&r.reg)
}

// Set writes the register.
func (r *Reg32) Set(v uint32) {
	atomic.StoreUint32(&r.reg, v)
}
