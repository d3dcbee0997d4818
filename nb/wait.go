package nb

import (
	"context"
	"runtime"
)

// Wait retries attempt from a goroutine, yielding the processor to the
// scheduler on every ErrPending so other goroutines run between retries.
// Local state is kept on the goroutine stack across suspensions. Wait
// returns ctx.Err() if the context is cancelled between attempts; the
// in-flight operation is simply abandoned, which the attempt contract must
// permit.
func Wait[T any](ctx context.Context, attempt func() (T, error)) (T, error) {
	for {
		v, err := attempt()
		if err == nil {
			return v, nil
		}
		if !IsPending(err) {
			var zero T
			return zero, err
		}
		runtime.Gosched()
		if cerr := ctx.Err(); cerr != nil {
			var zero T
			return zero, cerr
		}
	}
}

// WaitYield is Wait with the suspension point made explicit: yield is called
// once per pending attempt. It exists for schedulers that are not the Go
// runtime (and for tests that count suspensions).
func WaitYield[T any](attempt func() (T, error), yield func()) (T, error) {
	for {
		v, err := attempt()
		if err == nil {
			return v, nil
		}
		if !IsPending(err) {
			var zero T
			return zero, err
		}
		yield()
	}
}
