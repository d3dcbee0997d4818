package nb

import (
	"context"
	"testing"

	"tinyhal/errcode"
)

// pendAttempt returns ErrPending n times, then the given terminal result.
func pendAttempt(n int, v byte, err error) (attempt func() (byte, error), calls *int) {
	calls = new(int)
	attempt = func() (byte, error) {
		*calls++
		if *calls <= n {
			return 0, ErrPending
		}
		return v, err
	}
	return attempt, calls
}

func TestBlockRetriesExactly(t *testing.T) {
	const n = 5
	attempt, calls := pendAttempt(n, 0x42, nil)
	v, err := Block(attempt)
	if err != nil || v != 0x42 {
		t.Fatalf("Block: v=%#x err=%v", v, err)
	}
	if *calls != n+1 {
		t.Fatalf("Block: %d attempts, want %d", *calls, n+1)
	}
}

func TestBlockPropagatesFatal(t *testing.T) {
	attempt, calls := pendAttempt(2, 0, errcode.Overrun)
	_, err := Block(attempt)
	if err != errcode.Overrun {
		t.Fatalf("Block fatal: err=%v", err)
	}
	if *calls != 3 {
		t.Fatalf("Block fatal: %d attempts, want 3", *calls)
	}
}

func TestPollerCountsPendings(t *testing.T) {
	const n = 4
	attempt, calls := pendAttempt(n, 0x7E, nil)
	p := NewPoller(attempt)

	notReady := 0
	for !p.Done() {
		v, done, err := p.Poll()
		if err != nil {
			t.Fatalf("Poll: err=%v", err)
		}
		if !done {
			notReady++
			continue
		}
		if v != 0x7E {
			t.Fatalf("Poll: v=%#x", v)
		}
	}
	if notReady != n {
		t.Fatalf("Poll: %d not-ready rounds, want %d", notReady, n)
	}
	if *calls != n+1 {
		t.Fatalf("Poll: %d attempts, want %d", *calls, n+1)
	}

	// Completion is latched; the attempt must not run again.
	v, done, err := p.Poll()
	if !done || err != nil || v != 0x7E {
		t.Fatalf("Poll after done: v=%#x done=%v err=%v", v, done, err)
	}
	if *calls != n+1 {
		t.Fatalf("Poll after done re-ran attempt: %d calls", *calls)
	}
}

func TestPollerLatchesFatal(t *testing.T) {
	attempt, calls := pendAttempt(1, 0, errcode.Framing)
	p := NewPoller(attempt)
	if _, done, err := p.Poll(); done || err != nil {
		t.Fatalf("first poll: done=%v err=%v", done, err)
	}
	if _, done, err := p.Poll(); !done || err != errcode.Framing {
		t.Fatalf("second poll: done=%v err=%v", done, err)
	}
	if _, done, err := p.Poll(); !done || err != errcode.Framing || *calls != 2 {
		t.Fatalf("latched poll: done=%v err=%v calls=%d", done, err, *calls)
	}
}

func TestWaitYieldCountsSuspensions(t *testing.T) {
	const n = 7
	attempt, calls := pendAttempt(n, 0x55, nil)
	yields := 0
	v, err := WaitYield(attempt, func() { yields++ })
	if err != nil || v != 0x55 {
		t.Fatalf("WaitYield: v=%#x err=%v", v, err)
	}
	if yields != n {
		t.Fatalf("WaitYield: %d yields, want %d", yields, n)
	}
	if *calls != n+1 {
		t.Fatalf("WaitYield: %d attempts, want %d", *calls, n+1)
	}
}

func TestWaitCompletes(t *testing.T) {
	attempt, _ := pendAttempt(3, 0x11, nil)
	v, err := Wait(context.Background(), attempt)
	if err != nil || v != 0x11 {
		t.Fatalf("Wait: v=%#x err=%v", v, err)
	}
}

func TestWaitHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pending := func() (byte, error) { return 0, ErrPending }
	if _, err := Wait(ctx, pending); err != context.Canceled {
		t.Fatalf("Wait cancel: err=%v", err)
	}
}

func TestIsPending(t *testing.T) {
	if !IsPending(ErrPending) {
		t.Fatal("IsPending(ErrPending)=false")
	}
	if IsPending(nil) || IsPending(errcode.Noise) {
		t.Fatal("IsPending misclassified")
	}
}
