// Package board pins down the wiring of the reference board: which port
// bits carry the user LED, the console USART and the SPI header. Programs
// select peripherals through these names so moving to a different layout is
// a one-package change.
package board

// User LED on PA5, active high.
const LEDPin = 5

// Console on USART1: PA9 TX, PA10 RX, both AF1.
const (
	ConsoleTxPin = 9
	ConsoleRxPin = 10
	ConsoleAF    = 1
	ConsoleBaud  = 115200
)

// SPI header on SPI1: PA5 SCK, PA6 MISO, PA7 MOSI, all AF0. SCK shares the
// pin with the LED; a program uses one or the other.
const (
	SPISckPin  = 5
	SPIMisoPin = 6
	SPIMosiPin = 7
	SPIAF      = 0
)
