//go:build !baremetal

package critical

import "sync"

// On a host there is no interrupt mask; a process-wide mutex gives tests the
// same mutual-exclusion shape.
var mu sync.Mutex

func enter() func() {
	mu.Lock()
	return mu.Unlock
}
