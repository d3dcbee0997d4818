package nb

// Poller wraps an attempt for a cooperative scheduler that calls Poll once
// per scheduling round.
type Poller[T any] struct {
	attempt func() (T, error)
	done    bool
	result  T
	err     error
}

// NewPoller returns a Poller over attempt. The attempt is not invoked until
// the first Poll.
func NewPoller[T any](attempt func() (T, error)) *Poller[T] {
	return &Poller[T]{attempt: attempt}
}

// Poll runs one attempt. It returns done=false while the operation is
// pending. Once the attempt completes, Poll latches the terminal result and
// every later call returns it without re-running the attempt.
func (p *Poller[T]) Poll() (v T, done bool, err error) {
	if p.done {
		return p.result, true, p.err
	}
	v, err = p.attempt()
	if IsPending(err) {
		var zero T
		return zero, false, nil
	}
	p.done, p.result, p.err = true, v, err
	return v, true, err
}

// Done reports whether the operation has completed.
func (p *Poller[T]) Done() bool { return p.done }
