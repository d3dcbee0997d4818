package serial

import (
	"errors"
	"testing"

	"tinyhal/cap"
	"tinyhal/device/f0"
	"tinyhal/errcode"
	"tinyhal/hal/flash"
	"tinyhal/hal/gpio"
	"tinyhal/hal/rcc"
	"tinyhal/nb"
)

type rig struct {
	regs    *f0.USART_Type
	rccRegs *f0.RCC_Type
	port    *Serial
}

// newRig builds a port on mock registers: default clock freeze (8 MHz
// everywhere, no PLL spin needed), PA9/PA10 routed to AF1, 115200 baud on
// the high-speed bus.
func newRig(t *testing.T) *rig {
	t.Helper()
	regs := &f0.USART_Type{}
	rccRegs := &f0.RCC_Type{}
	split := rcc.NewHandle(rccRegs).Constrain()
	acr := flash.NewHandle(&f0.FLASH_Type{}).Constrain().ACR
	clocks, err := split.CFGR.Freeze(&acr)
	if err != nil {
		t.Fatalf("default freeze: %v", err)
	}

	port := gpio.NewHandle(&f0.GPIO_Type{}, f0.RCC_AHBENR_IOPAEN).Split(&split.AHB)
	tx := port.P9.IntoAlternate(&port.Config, 1)
	rx := port.P10.IntoAlternate(&port.Config, 1)

	h := NewHandle(regs, f0.RCC_APB2ENR_USART1EN, rcc.Clocks.Pclk2)
	s := New(h, tx, rx, Config{Baud: 115200}, clocks, &split.APB2)
	return &rig{regs: regs, rccRegs: rccRegs, port: s}
}

func TestNewBringsPortUp(t *testing.T) {
	r := newRig(t)
	if !r.rccRegs.APB2ENR.HasBits(f0.RCC_APB2ENR_USART1EN) {
		t.Fatal("peripheral clock not enabled")
	}
	if got, want := r.regs.BRR.Get(), uint32(8_000_000/115200); got != want {
		t.Fatalf("BRR = %d, want %d", got, want)
	}
	const on = f0.USART_CR1_UE | f0.USART_CR1_TE | f0.USART_CR1_RE
	if got := r.regs.CR1.Get(); got != on {
		t.Fatalf("CR1 = %#x, want %#x", got, on)
	}
}

func TestHandleConsumedByNew(t *testing.T) {
	regs := &f0.USART_Type{}
	h := NewHandle(regs, f0.RCC_APB2ENR_USART1EN, rcc.Clocks.Pclk2)
	h.used.Store(true)
	defer func() {
		if recover() == nil {
			t.Fatal("reusing a consumed handle did not panic")
		}
	}()
	New(h, gpio.Alternate{}, gpio.Alternate{}, Config{Baud: 9600}, rcc.Clocks{}, nopBus{})
}

type nopBus struct{}

func (nopBus) Enable(mask uint32) {}

func TestWriteWordPendingLeavesNoTrace(t *testing.T) {
	r := newRig(t)
	r.regs.TDR.Set(0xAA) // sentinel
	if err := r.port.WriteWord('x'); !errors.Is(err, nb.ErrPending) {
		t.Fatalf("WriteWord with TXE clear = %v, want ErrPending", err)
	}
	if r.regs.TDR.Get() != 0xAA {
		t.Fatal("pending attempt wrote the data register")
	}
}

func TestWriteWordAcceptsOnTXE(t *testing.T) {
	r := newRig(t)
	r.regs.ISR.SetBits(f0.USART_ISR_TXE)
	if err := r.port.WriteWord('x'); err != nil {
		t.Fatalf("WriteWord = %v", err)
	}
	if got := r.regs.TDR.Get(); got != 'x' {
		t.Fatalf("TDR = %#x, want 'x'", got)
	}
}

func TestFlush(t *testing.T) {
	r := newRig(t)
	if err := r.port.Flush(); !errors.Is(err, nb.ErrPending) {
		t.Fatalf("Flush with TC clear = %v, want ErrPending", err)
	}
	r.regs.ISR.SetBits(f0.USART_ISR_TC)
	if err := r.port.Flush(); err != nil {
		t.Fatalf("Flush with TC set = %v", err)
	}
}

func TestReadWord(t *testing.T) {
	r := newRig(t)
	if _, err := r.port.ReadWord(); !errors.Is(err, nb.ErrPending) {
		t.Fatalf("ReadWord on idle line = %v, want ErrPending", err)
	}
	r.regs.RDR.Set('q')
	r.regs.ISR.SetBits(f0.USART_ISR_RXNE)
	b, err := r.port.ReadWord()
	if err != nil || b != 'q' {
		t.Fatalf("ReadWord = %q, %v", b, err)
	}
}

func TestFatalFlagsClearedOnReport(t *testing.T) {
	r := newRig(t)
	cases := []struct {
		flag  uint32
		clear uint32
		code  errcode.Code
	}{
		{f0.USART_ISR_ORE, f0.USART_ICR_ORECF, errcode.Overrun},
		{f0.USART_ISR_FE, f0.USART_ICR_FECF, errcode.Framing},
		{f0.USART_ISR_NF, f0.USART_ICR_NCF, errcode.Noise},
		{f0.USART_ISR_PE, f0.USART_ICR_PECF, errcode.Parity},
	}
	for _, tc := range cases {
		r.regs.ISR.SetBits(tc.flag)
		r.regs.ICR.Set(0)
		if _, err := r.port.ReadWord(); !errors.Is(err, tc.code) {
			t.Fatalf("flag %#x: got %v, want %v", tc.flag, err, tc.code)
		}
		if got := r.regs.ICR.Get(); got != tc.clear {
			t.Fatalf("flag %#x: ICR = %#x, want %#x", tc.flag, got, tc.clear)
		}
		// The hardware drops the flag once its clear bit is written.
		r.regs.ISR.ClearBits(tc.flag)
		if _, err := r.port.ReadWord(); !errors.Is(err, nb.ErrPending) {
			t.Fatalf("flag %#x reported twice: %v", tc.flag, err)
		}
	}
}

func TestErrorFlagsTakePriorityOverData(t *testing.T) {
	r := newRig(t)
	r.regs.RDR.Set('z')
	r.regs.ISR.SetBits(f0.USART_ISR_RXNE | f0.USART_ISR_ORE)
	if _, err := r.port.ReadWord(); !errors.Is(err, errcode.Overrun) {
		t.Fatalf("ReadWord = %v, want Overrun before data", err)
	}
	r.regs.ISR.ClearBits(f0.USART_ISR_ORE)
	b, err := r.port.ReadWord()
	if err != nil || b != 'z' {
		t.Fatalf("ReadWord after clearing overrun = %q, %v", b, err)
	}
}

func TestSplitConsumesPort(t *testing.T) {
	r := newRig(t)
	tx, rx := r.port.Split()

	r.regs.ISR.SetBits(f0.USART_ISR_TXE)
	if err := tx.WriteWord('a'); err != nil {
		t.Fatalf("tx.WriteWord = %v", err)
	}
	if _, err := rx.ReadWord(); !errors.Is(err, nb.ErrPending) {
		t.Fatalf("rx.ReadWord = %v, want ErrPending", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("using the port after Split did not panic")
		}
	}()
	r.port.WriteWord('b')
}

func TestSecondSplitPanics(t *testing.T) {
	r := newRig(t)
	r.port.Split()
	defer func() {
		if recover() == nil {
			t.Fatal("second Split did not panic")
		}
	}()
	r.port.Split()
}

func TestWriteStringBusyWaits(t *testing.T) {
	r := newRig(t)
	tx, _ := r.port.Split()
	r.regs.ISR.SetBits(f0.USART_ISR_TXE)
	n, err := cap.WriteString(tx, "ok")
	if err != nil || n != 2 {
		t.Fatalf("WriteString = %d, %v", n, err)
	}
	if got := byte(r.regs.TDR.Get()); got != 'k' {
		t.Fatalf("last TDR = %q, want 'k'", got)
	}
}
