// Package critical provides the one locking discipline the HAL asks of its
// callers: a scoped region with preemption suspended.
//
// Resources handed out by the registry and splitters are exclusive by
// ownership and need no locking. A few registers stay shared after a split
// (the per-port pin configuration proxy is the main one); code touching
// such a register wraps exactly the read-modify-write sequence in Do.
package critical

// Do runs fn with preemption suspended. Preemption is restored
// unconditionally when fn returns, including via panic.
func Do(fn func()) {
	restore := enter()
	defer restore()
	fn()
}
