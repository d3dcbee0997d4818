package rcc

import (
	"tinyhal/device/f0"
	"tinyhal/errcode"
	"tinyhal/hal/flash"
)

// Clock tree limits of the F0-class reference device.
const (
	// HSI is the internal oscillator every clock in the tree derives from.
	HSI = Hertz(8_000_000)

	maxSysclk = Hertz(72_000_000)
	maxPclk1  = Hertz(36_000_000)

	minPLLMul = 2
	maxPLLMul = 9
)

// CFGR accumulates requested clock targets and owns the clock tree fields of
// the RCC block. Setters consume and return the builder; Freeze consumes it
// for good.
type CFGR struct {
	regs *f0.RCC_Type

	sysclk Hertz
	hclk   Hertz
	pclk1  Hertz
	pclk2  Hertz

	frozen bool
}

func (c *CFGR) use() *CFGR {
	if c.frozen {
		panic("rcc: clock configuration already frozen")
	}
	return c
}

// Sysclk requests a system clock frequency. It must be HSI or an exact PLL
// multiple of it (2x..9x).
func (c *CFGR) Sysclk(f Hertz) *CFGR {
	c.use().sysclk = f
	return c
}

// Hclk requests an upper bound for the AHB clock.
func (c *CFGR) Hclk(f Hertz) *CFGR {
	c.use().hclk = f
	return c
}

// Pclk1 requests an upper bound for the low-speed peripheral bus clock.
func (c *CFGR) Pclk1(f Hertz) *CFGR {
	c.use().pclk1 = f
	return c
}

// Pclk2 requests an upper bound for the high-speed peripheral bus clock.
func (c *CFGR) Pclk2(f Hertz) *CFGR {
	c.use().pclk2 = f
	return c
}

// resolved is the fully computed configuration, produced before any register
// is written so that an unsatisfiable request leaves hardware untouched.
type resolved struct {
	usePLL bool
	pllMul uint32 // 2..9 when usePLL

	hpreBits  uint32
	ppre1Bits uint32
	ppre2Bits uint32

	latency uint8

	clocks Clocks
}

// hpreTable maps AHB prescaler divisors to HPRE field values.
var hpreTable = []struct {
	div  uint32
	bits uint32
}{
	{1, 0b0000},
	{2, 0b1000},
	{4, 0b1001},
	{8, 0b1010},
	{16, 0b1011},
	{64, 0b1100},
	{128, 0b1101},
	{256, 0b1110},
	{512, 0b1111},
}

// ppreTable maps APB prescaler divisors to PPRE field values.
var ppreTable = []struct {
	div  uint32
	bits uint32
}{
	{1, 0b000},
	{2, 0b100},
	{4, 0b101},
	{8, 0b110},
	{16, 0b111},
}

func (c *CFGR) resolve() (resolved, error) {
	var r resolved

	// System clock: HSI straight through, or an exact PLL multiple.
	sys := c.sysclk
	if sys == 0 || sys == HSI {
		r.clocks.sysclk = HSI
	} else {
		mul := uint32(sys / HSI)
		if Hertz(mul)*HSI != sys || mul < minPLLMul || mul > maxPLLMul || sys > maxSysclk {
			return resolved{}, errcode.Unsatisfiable
		}
		r.usePLL = true
		r.pllMul = mul
		r.clocks.sysclk = sys
	}

	// AHB clock: largest divided frequency not above the target.
	hclkCap := c.hclk
	if hclkCap == 0 {
		hclkCap = r.clocks.sysclk
	}
	found := false
	for _, e := range hpreTable {
		f := r.clocks.sysclk / Hertz(e.div)
		if f <= hclkCap {
			r.hpreBits = e.bits
			r.clocks.hclk = f
			found = true
			break
		}
	}
	if !found {
		return resolved{}, errcode.Unsatisfiable
	}

	// APB clocks, derived from HCLK. PCLK1 is additionally capped by
	// hardware at 36 MHz.
	pclk1Cap := c.pclk1
	if pclk1Cap == 0 || pclk1Cap > maxPclk1 {
		pclk1Cap = maxPclk1
	}
	if r.clocks.hclk < pclk1Cap {
		pclk1Cap = r.clocks.hclk
	}
	bits, f, ok := divideAPB(r.clocks.hclk, pclk1Cap)
	if !ok {
		return resolved{}, errcode.Unsatisfiable
	}
	r.ppre1Bits, r.clocks.pclk1 = bits, f

	pclk2Cap := c.pclk2
	if pclk2Cap == 0 || pclk2Cap > r.clocks.hclk {
		pclk2Cap = r.clocks.hclk
	}
	bits, f, ok = divideAPB(r.clocks.hclk, pclk2Cap)
	if !ok {
		return resolved{}, errcode.Unsatisfiable
	}
	r.ppre2Bits, r.clocks.pclk2 = bits, f

	// Flash wait states for the resolved system clock.
	switch {
	case r.clocks.sysclk <= MHz(24):
		r.latency = 0
	case r.clocks.sysclk <= MHz(48):
		r.latency = 1
	default:
		r.latency = 2
	}

	return r, nil
}

func divideAPB(hclk, limit Hertz) (bits uint32, f Hertz, ok bool) {
	for _, e := range ppreTable {
		f = hclk / Hertz(e.div)
		if f <= limit {
			return e.bits, f, true
		}
	}
	return 0, 0, false
}

// Freeze consumes the builder, validates the accumulated targets and applies
// the resolved configuration to hardware. If the combination is not
// representable it returns errcode.Unsatisfiable and writes nothing.
//
// Writes follow the hardware-mandated order: wait states are raised before
// the clock goes up and lowered only after it has come down. On success the
// returned Clocks snapshot is the caller's proof that the configuration can
// no longer change; the builder is dead afterwards.
func (c *CFGR) Freeze(acr *flash.ACR) (Clocks, error) {
	c.use()
	c.frozen = true
	r, err := c.resolve()
	if err != nil {
		return Clocks{}, err
	}

	raising := r.latency >= acr.Latency()
	if raising {
		acr.SetLatency(r.latency)
	}

	if r.usePLL {
		c.regs.CFGR.ReplaceBits((r.pllMul-2)<<f0.RCC_CFGR_PLLMUL_Pos, f0.RCC_CFGR_PLLMUL_Msk, 0)
		c.regs.CR.SetBits(f0.RCC_CR_PLLON)
		for !c.regs.CR.HasBits(f0.RCC_CR_PLLRDY) {
		}
	}

	c.regs.CFGR.ReplaceBits(
		r.hpreBits<<f0.RCC_CFGR_HPRE_Pos|
			r.ppre1Bits<<f0.RCC_CFGR_PPRE1_Pos|
			r.ppre2Bits<<f0.RCC_CFGR_PPRE2_Pos,
		f0.RCC_CFGR_HPRE_Msk|f0.RCC_CFGR_PPRE1_Msk|f0.RCC_CFGR_PPRE2_Msk, 0)

	sw, sws := uint32(f0.RCC_CFGR_SW_HSI), uint32(f0.RCC_CFGR_SWS_HSI)
	if r.usePLL {
		sw, sws = f0.RCC_CFGR_SW_PLL, f0.RCC_CFGR_SWS_PLL
	}
	c.regs.CFGR.ReplaceBits(sw, f0.RCC_CFGR_SW_Msk, 0)
	for c.regs.CFGR.Get()&f0.RCC_CFGR_SWS_Msk != sws {
	}

	if !raising {
		acr.SetLatency(r.latency)
	}

	return r.clocks, nil
}
