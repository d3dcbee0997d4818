package gpio

import (
	"tinyhal/cap"
	"tinyhal/device/f0"
)

// pinState is the single shared record for one physical pin. gen counts the
// transitions the pin has gone through; each typed pin value remembers the
// generation it was minted at, and a value whose generation has fallen
// behind the shared state was consumed by a transition. The counter makes
// consumption permanent: a value minted before a round trip through other
// modes stays dead even once the pin is back in the mode it was minted in.
type pinState struct {
	regs *f0.GPIO_Type
	n    uint8
	gen  uint32
}

// pin is the common core embedded in every typed pin value.
type pin struct {
	s   *pinState
	gen uint32
}

func (p pin) live() *pinState {
	if p.s == nil {
		panic("gpio: zero pin value")
	}
	if p.s.gen != p.gen {
		panic("gpio: pin value used after transition")
	}
	return p.s
}

// begin validates the old value and the proxy, then consumes the value by
// advancing the pin's generation, all before any register is touched. The
// typed value the transition returns is minted at the new generation.
func (p pin) begin(cfg *Config) *pinState {
	s := p.live()
	if cfg == nil || cfg.regs != s.regs {
		panic("gpio: config proxy belongs to a different port")
	}
	s.gen++
	return s
}

// Pin reports the pin number within its port. Available in every mode.
func (p pin) Pin() uint8 { return p.live().n }

// IntoFloatingInput reconfigures the pin as a floating input.
func (p pin) IntoFloatingInput(cfg *Config) Floating {
	s := p.begin(cfg)
	cfg.setPull(s.n, f0.GPIO_PUPDR_NONE)
	cfg.setMode(s.n, f0.GPIO_MODER_INPUT)
	return Floating{input{pin{s, s.gen}}}
}

// IntoPullUpInput reconfigures the pin as an input with the pull-up enabled.
func (p pin) IntoPullUpInput(cfg *Config) PullUp {
	s := p.begin(cfg)
	cfg.setPull(s.n, f0.GPIO_PUPDR_UP)
	cfg.setMode(s.n, f0.GPIO_MODER_INPUT)
	return PullUp{input{pin{s, s.gen}}}
}

// IntoPullDownInput reconfigures the pin as an input with the pull-down
// enabled.
func (p pin) IntoPullDownInput(cfg *Config) PullDown {
	s := p.begin(cfg)
	cfg.setPull(s.n, f0.GPIO_PUPDR_DOWN)
	cfg.setMode(s.n, f0.GPIO_MODER_INPUT)
	return PullDown{input{pin{s, s.gen}}}
}

// IntoPushPullOutput reconfigures the pin as a push-pull output. The output
// type is set before the mode switches so the pin never drives open-drain
// transiently.
func (p pin) IntoPushPullOutput(cfg *Config) PushPull {
	s := p.begin(cfg)
	cfg.setOutputType(s.n, f0.GPIO_OTYPER_PUSHPULL)
	cfg.setMode(s.n, f0.GPIO_MODER_OUTPUT)
	return PushPull{output{pin{s, s.gen}}}
}

// IntoOpenDrainOutput reconfigures the pin as an open-drain output.
func (p pin) IntoOpenDrainOutput(cfg *Config) OpenDrain {
	s := p.begin(cfg)
	cfg.setOutputType(s.n, f0.GPIO_OTYPER_OPENDRAIN)
	cfg.setMode(s.n, f0.GPIO_MODER_OUTPUT)
	return OpenDrain{output{pin{s, s.gen}}}
}

// IntoAlternate routes the pin to alternate function fn (0..15).
func (p pin) IntoAlternate(cfg *Config, fn uint8) Alternate {
	if fn > 15 {
		panic("gpio: bad alternate function")
	}
	s := p.begin(cfg)
	cfg.setAltFunc(s.n, fn)
	cfg.setMode(s.n, f0.GPIO_MODER_ALTERNATE)
	return Alternate{pin: pin{s, s.gen}, fn: fn}
}

// IntoAnalog disconnects the pin's digital logic.
func (p pin) IntoAnalog(cfg *Config) Analog {
	s := p.begin(cfg)
	cfg.setPull(s.n, f0.GPIO_PUPDR_NONE)
	cfg.setMode(s.n, f0.GPIO_MODER_ANALOG)
	return Analog{pin{s, s.gen}}
}

// input carries the operations shared by all input modes.
type input struct{ pin }

// IsHigh reports whether the pin reads high.
func (p input) IsHigh() bool {
	s := p.live()
	return s.regs.IDR.HasBits(1 << s.n)
}

// IsLow reports whether the pin reads low.
func (p input) IsLow() bool { return !p.IsHigh() }

// Floating is an input pin with no pull resistor.
type Floating struct{ input }

// PullUp is an input pin with the pull-up enabled.
type PullUp struct{ input }

// PullDown is an input pin with the pull-down enabled.
type PullDown struct{ input }

// output carries the operations shared by both output modes. Level changes
// go through the set/reset register, so they are single atomic writes that
// never touch other pins' bits.
type output struct{ pin }

// High drives the pin high.
func (p output) High() {
	s := p.live()
	s.regs.BSRR.Set(1 << s.n)
}

// Low drives the pin low.
func (p output) Low() {
	s := p.live()
	s.regs.BSRR.Set(1 << (uint32(s.n) + 16))
}

// Set drives the pin to level.
func (p output) Set(level bool) {
	if level {
		p.High()
	} else {
		p.Low()
	}
}

// IsSet reports the currently driven level.
func (p output) IsSet() bool {
	s := p.live()
	return s.regs.ODR.HasBits(1 << s.n)
}

// Toggle inverts the driven level.
func (p output) Toggle() {
	p.Set(!p.IsSet())
}

// PushPull is a push-pull output pin.
type PushPull struct{ output }

// OpenDrain is an open-drain output pin.
type OpenDrain struct{ output }

// Alternate is a pin routed to a peripheral function.
type Alternate struct {
	pin
	fn uint8
}

// Function returns the routed alternate function index.
func (p Alternate) Function() uint8 {
	p.live()
	return p.fn
}

// Analog is a pin with its digital logic disconnected.
type Analog struct{ pin }

// Capability conformance of the concrete pin types.
var (
	_ cap.InputPin  = Floating{}
	_ cap.InputPin  = PullUp{}
	_ cap.InputPin  = PullDown{}
	_ cap.OutputPin = PushPull{}
	_ cap.OutputPin = OpenDrain{}
)

func newFloating(regs *f0.GPIO_Type, n uint8) Floating {
	return Floating{input{pin{s: &pinState{regs: regs, n: n}}}}
}
