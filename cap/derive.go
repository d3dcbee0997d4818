package cap

import "tinyhal/nb"

// The helpers below derive blocking capabilities from the non-blocking
// primitives via the busy-wait adapter. A peripheral that implements
// Reader/Writer/Transferer gets all of them for free; a driver opts in by
// calling them.

// Write sends all of p, busy-waiting on each word. It returns the number of
// words accepted before the first fatal error.
func Write[W Word](w Writer[W], p []W) (int, error) {
	for i, word := range p {
		word := word
		_, err := nb.Block(func() (struct{}, error) {
			return struct{}{}, w.WriteWord(word)
		})
		if err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString sends s over a byte writer.
func WriteString(w Writer[byte], s string) (int, error) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		_, err := nb.Block(func() (struct{}, error) {
			return struct{}{}, w.WriteWord(b)
		})
		if err != nil {
			return i, err
		}
	}
	return len(s), nil
}

// Read fills p, busy-waiting on each word. It returns the number of words
// stored before the first fatal error.
func Read[W Word](r Reader[W], p []W) (int, error) {
	for i := range p {
		v, err := nb.Block(r.ReadWord)
		if err != nil {
			return i, err
		}
		p[i] = v
	}
	return len(p), nil
}

// Drain busy-waits until the peripheral reports all accepted words sent.
func Drain(f Flusher) error {
	_, err := nb.Block(func() (struct{}, error) {
		return struct{}{}, f.Flush()
	})
	return err
}

// Exchange clocks tx out while storing the simultaneous input in rx.
// rx may be nil to discard input; otherwise len(rx) must equal len(tx).
func Exchange[W Word](t Transferer[W], tx, rx []W) error {
	if rx != nil && len(rx) != len(tx) {
		panic("cap: exchange length mismatch")
	}
	for i, word := range tx {
		word := word
		v, err := nb.Block(func() (W, error) {
			return t.TransferWord(word)
		})
		if err != nil {
			return err
		}
		if rx != nil {
			rx[i] = v
		}
	}
	return nil
}
