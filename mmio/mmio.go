// Package mmio provides the register cell type the HAL is written against.
//
// A register block is an address-located struct whose fields are all Reg32.
// On bare metal the cells alias memory-mapped hardware and every access is a
// volatile load or store. On a host build the cells are ordinary memory with
// atomic access, which is what the package tests poke at.
package mmio

// SetBits sets the bits in mask, leaving the rest of the register alone.
func (r *Reg32) SetBits(mask uint32) {
	r.Set(r.Get() | mask)
}

// ClearBits clears the bits in mask, leaving the rest of the register alone.
func (r *Reg32) ClearBits(mask uint32) {
	r.Set(r.Get() &^ mask)
}

// HasBits reports whether any bit in mask is set.
func (r *Reg32) HasBits(mask uint32) bool {
	return r.Get()&mask != 0
}

// ReplaceBits writes value into the field selected by mask at bit position
// pos, preserving all other bits. mask is given unshifted.
func (r *Reg32) ReplaceBits(value, mask uint32, pos uint8) {
	r.Set(r.Get()&^(mask<<pos) | value<<pos)
}
