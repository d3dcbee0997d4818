package flash

import (
	"testing"

	"tinyhal/device/f0"
)

func TestConstrainConsumesHandle(t *testing.T) {
	h := NewHandle(&f0.FLASH_Type{})
	_ = h.Constrain()
	defer func() {
		if recover() == nil {
			t.Fatal("second Constrain did not panic")
		}
	}()
	_ = h.Constrain()
}

func TestSetLatencyTouchesOnlyTheLatencyField(t *testing.T) {
	regs := &f0.FLASH_Type{}
	regs.ACR.Set(0xFFFF_FFF8) // everything but the latency field
	acr := &NewHandle(regs).Constrain().ACR

	acr.SetLatency(2)
	if acr.Latency() != 2 {
		t.Fatalf("Latency()=%d", acr.Latency())
	}
	if regs.ACR.Get() != 0xFFFF_FFF8|2 {
		t.Fatalf("ACR=%#x", regs.ACR.Get())
	}

	acr.SetLatency(0)
	if acr.Latency() != 0 || regs.ACR.Get() != 0xFFFF_FFF8 {
		t.Fatalf("ACR after lowering=%#x", regs.ACR.Get())
	}
}
