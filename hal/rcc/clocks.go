package rcc

// Clocks is the immutable snapshot of the frozen clock tree. It is freely
// copyable; holding one is proof that the frequencies below can no longer
// change, because the builder that produced it is dead.
type Clocks struct {
	sysclk Hertz
	hclk   Hertz
	pclk1  Hertz
	pclk2  Hertz
}

// Sysclk returns the system (core) clock frequency.
func (c Clocks) Sysclk() Hertz { return c.sysclk }

// Hclk returns the AHB clock frequency.
func (c Clocks) Hclk() Hertz { return c.hclk }

// Pclk1 returns the low-speed peripheral bus clock frequency.
func (c Clocks) Pclk1() Hertz { return c.pclk1 }

// Pclk2 returns the high-speed peripheral bus clock frequency.
func (c Clocks) Pclk2() Hertz { return c.pclk2 }
