package critical

import "testing"

func TestDoRunsBody(t *testing.T) {
	ran := false
	Do(func() { ran = true })
	if !ran {
		t.Fatal("body did not run")
	}
}

func TestDoReleasesOnPanic(t *testing.T) {
	func() {
		defer func() { _ = recover() }()
		Do(func() { panic("boom") })
	}()

	// If the panic leaked the section this second Do would deadlock.
	done := make(chan struct{})
	go func() {
		Do(func() {})
		close(done)
	}()
	<-done
}

func TestDoExcludesConcurrentSections(t *testing.T) {
	const workers = 8
	const rounds = 200
	var counter int // unsynchronized on purpose; Do must serialize access
	done := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		go func() {
			for j := 0; j < rounds; j++ {
				Do(func() { counter++ })
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}
	if counter != workers*rounds {
		t.Fatalf("counter=%d want %d", counter, workers*rounds)
	}
}
