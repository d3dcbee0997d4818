//go:build baremetal

package mmio

import "runtime/volatile"

// Reg32 is one 32-bit hardware register. Accesses are volatile so the
// compiler cannot elide, reorder or coalesce them.
type Reg32 struct {
	reg uint32
}

// Get performs a volatile read of the register.
func (r *Reg32) Get() uint32 {
	return volatile.LoadUint32(&r.reg)
}

// Set performs a volatile write of the register.
func (r *Reg32) Set(v uint32) {
	volatile.StoreUint32(&r.reg, v)
}
