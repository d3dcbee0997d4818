//go:build baremetal

package critical

import "runtime/interrupt"

// enter masks interrupts and returns the function that restores the previous
// mask state. On a single core this is the whole story: with interrupts off
// nothing can preempt the section.
func enter() func() {
	state := interrupt.Disable()
	return func() { interrupt.Restore(state) }
}
