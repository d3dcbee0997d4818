package hal

import (
	"sync"
	"testing"
)

func TestTakeYieldsExactlyOneSet(t *testing.T) {
	const contenders = 32

	var wg sync.WaitGroup
	results := make([]*Peripherals, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Take()
		}(i)
	}
	wg.Wait()

	var set *Peripherals
	for _, p := range results {
		if p == nil {
			continue
		}
		if set != nil {
			t.Fatal("Take returned two distinct sets")
		}
		set = p
	}
	if set == nil {
		t.Fatal("no contender received the peripheral set")
	}

	if set.RCC == nil || set.FLASH == nil || set.GPIOA == nil || set.GPIOB == nil ||
		set.USART1 == nil || set.USART2 == nil || set.SPI1 == nil {
		t.Fatal("incomplete peripheral set")
	}

	if Take() != nil {
		t.Fatal("Take after the winner still returned a set")
	}
}
