// Package hal is the take-once registry for the chip's peripherals.
//
// The zero-address singletons of a microcontroller cannot be constructed;
// they can only be claimed. Take hands out the one Peripherals set per
// process and nils out afterwards, so every live handle in the program is
// reachable from exactly one Take call. The check-and-set is a single
// atomic CAS, which also holds up against an interrupt handler calling
// Take on a single core.
package hal

import (
	"sync/atomic"

	"tinyhal/device/f0"
	"tinyhal/hal/flash"
	"tinyhal/hal/gpio"
	"tinyhal/hal/rcc"
	"tinyhal/hal/serial"
	"tinyhal/hal/spi"
)

// Peripherals is the set of singleton peripheral handles. Handles are
// movable pointer values; the registry constructs each exactly once, so at
// most one live handle exists per peripheral identity.
type Peripherals struct {
	RCC    *rcc.Handle
	FLASH  *flash.Handle
	GPIOA  *gpio.Handle
	GPIOB  *gpio.Handle
	USART1 *serial.Handle
	USART2 *serial.Handle
	SPI1   *spi.Handle
}

var taken atomic.Bool

// Take returns the peripheral set on the first call and nil on every call
// after that. nil is the only absence signal; there is no error to inspect
// and no way to put the set back.
func Take() *Peripherals {
	if !taken.CompareAndSwap(false, true) {
		return nil
	}
	return &Peripherals{
		RCC:    rcc.NewHandle(f0.RCC),
		FLASH:  flash.NewHandle(f0.FLASH),
		GPIOA:  gpio.NewHandle(f0.GPIOA, f0.RCC_AHBENR_IOPAEN),
		GPIOB:  gpio.NewHandle(f0.GPIOB, f0.RCC_AHBENR_IOPBEN),
		USART1: serial.NewHandle(f0.USART1, f0.RCC_APB2ENR_USART1EN, rcc.Clocks.Pclk2),
		USART2: serial.NewHandle(f0.USART2, f0.RCC_APB1ENR_USART2EN, rcc.Clocks.Pclk1),
		SPI1:   spi.NewHandle(f0.SPI1, f0.RCC_APB2ENR_SPI1EN, rcc.Clocks.Pclk2),
	}
}
