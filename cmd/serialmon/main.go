// Serialmon is the host-side counterpart of the echo and blinky targets: a
// minimal terminal that mirrors a device's console port to stdout and
// forwards stdin to the device.
//
// Usage:
//
//	serialmon -port /dev/ttyACM0 -baud 115200
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tarm/serial"
)

func main() {
	var (
		portName = flag.String("port", "/dev/ttyACM0", "serial device")
		baud     = flag.Int("baud", 115200, "baud rate")
	)
	flag.Parse()

	port, err := serial.OpenPort(&serial.Config{Name: *portName, Baud: *baud})
	if err != nil {
		log.Fatalf("open %s: %v", *portName, err)
	}
	defer port.Close()

	fmt.Fprintf(os.Stderr, "connected to %s at %d baud\n", *portName, *baud)

	go func() {
		if _, err := io.Copy(port, os.Stdin); err != nil {
			log.Fatalf("stdin -> %s: %v", *portName, err)
		}
	}()

	if _, err := io.Copy(os.Stdout, port); err != nil {
		log.Fatalf("%s -> stdout: %v", *portName, err)
	}
}
