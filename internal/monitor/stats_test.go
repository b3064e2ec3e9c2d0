package monitor

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	now := time.Now()
	results := []ProbeResult{
		{Outcome: Reachable, RTT: 10 * time.Millisecond, Timestamp: now.Add(-3 * time.Second)},
		{Outcome: Unreachable, Timestamp: now.Add(-2 * time.Second)},
		{Outcome: Reachable, RTT: 30 * time.Millisecond, Timestamp: now.Add(-time.Second)},
		{Outcome: Failed, Message: "boom", Timestamp: now},
	}
	s := Summarize(results)
	if s.Probes != 4 || s.Reachable != 2 || s.Failed != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.Availability != 50 {
		t.Errorf("expected 50%% availability, got %f", s.Availability)
	}
	if s.MeanRTT != 20*time.Millisecond {
		t.Errorf("expected mean RTT 20ms, got %v", s.MeanRTT)
	}
	if !s.LastProbe.Equal(now) {
		t.Errorf("expected last probe %v, got %v", now, s.LastProbe)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Probes != 0 || s.Availability != 0 || s.MeanRTT != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestLatencySeries(t *testing.T) {
	series := LatencySeries([]ProbeResult{
		{Outcome: Reachable, RTT: 1500 * time.Microsecond},
		{Outcome: Unreachable},
	})
	if len(series) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series))
	}
	if series[0] != 1.5 || series[1] != 0 {
		t.Errorf("unexpected series %v", series)
	}
}

func TestHeartbeat(t *testing.T) {
	n := 0
	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		n = nextHeartbeat(n)
		if n != w {
			t.Errorf("step %d: expected %d, got %d", i, w, n)
		}
	}

	bars := map[int]string{0: "[   ]", 1: "[.  ]", 2: "[.. ]", 3: "[...]"}
	for in, out := range bars {
		if got := HeartbeatBar(in); got != out {
			t.Errorf("HeartbeatBar(%d) = %q, want %q", in, got, out)
		}
	}
}
