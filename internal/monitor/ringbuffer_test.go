package monitor

import (
	"testing"
	"time"
)

func TestRingPush(t *testing.T) {
	r := newRing[ProbeResult](5)
	for i := 0; i < 3; i++ {
		r.push(ProbeResult{Outcome: Reachable, RTT: time.Duration(i)})
	}
	if n := len(r.all()); n != 3 {
		t.Errorf("expected len 3, got %d", n)
	}
}

func TestRingWrap(t *testing.T) {
	r := newRing[ProbeResult](3)
	for i := 0; i < 5; i++ {
		r.push(ProbeResult{RTT: time.Duration(i)})
	}
	if n := len(r.all()); n != 3 {
		t.Errorf("expected len 3, got %d", n)
	}
	items := r.all()
	if items[0].RTT != 2 {
		t.Errorf("expected oldest RTT=2, got %d", items[0].RTT)
	}
	if items[2].RTT != 4 {
		t.Errorf("expected newest RTT=4, got %d", items[2].RTT)
	}
}

func TestRingReset(t *testing.T) {
	r := newRing[ProbeResult](2)
	r.push(ProbeResult{Outcome: Reachable})
	r.push(ProbeResult{Outcome: Unreachable})
	r.push(ProbeResult{Outcome: Failed})

	r.reset()
	if len(r.all()) != 0 {
		t.Error("ring should be empty after reset")
	}
	r.push(ProbeResult{Outcome: Failed})
	if items := r.all(); len(items) != 1 || items[0].Outcome != Failed {
		t.Errorf("unexpected items after reset and push: %v", items)
	}
}
