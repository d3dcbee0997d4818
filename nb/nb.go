// Package nb is the non-blocking operation protocol the HAL's drivers are
// written in.
//
// A hardware operation that may not complete synchronously is expressed as a
// single attempt function, func() (T, error). The attempt either returns a
// result, returns ErrPending ("no progress now, retry later"), or returns a
// fatal error for this call. Attempts must be idempotent under retry: calling
// again after ErrPending must not duplicate side effects already committed.
//
// The three adapters in this package (Block, Poller, Wait) convert any
// attempt into busy-wait, poll-based, or suspend/resume execution. They are
// written purely against the attempt contract and never touch hardware, so a
// driver implements its register-level attempt exactly once.
//
// A caller abandons an in-flight operation by simply not retrying; whether
// that is safe after partial progress is documented by the driver that
// constructed the attempt.
package nb

import "errors"

// ErrPending signals that an attempt made no progress and should be retried.
// It is not a failure and is never surfaced by the adapters.
var ErrPending = errors.New("nb: pending")

// IsPending reports whether err is the retry signal.
func IsPending(err error) bool { return errors.Is(err, ErrPending) }

// Block retries attempt in a tight loop until it completes, discarding
// ErrPending. There is no backoff; on a single-core machine the spin is the
// point. Fatal errors propagate unchanged.
func Block[T any](attempt func() (T, error)) (T, error) {
	for {
		v, err := attempt()
		if err == nil {
			return v, nil
		}
		if !IsPending(err) {
			var zero T
			return zero, err
		}
	}
}
