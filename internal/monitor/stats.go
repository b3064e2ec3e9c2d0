package monitor

import (
	"math"
	"time"
)

// Summary aggregates a window of probe results.
type Summary struct {
	Probes       int
	Reachable    int
	Failed       int
	Availability float64 // percent of probes that were reachable
	MeanRTT      time.Duration
	LastProbe    time.Time
}

// Summarize computes availability and mean round-trip time over results.
// RTT is averaged over reachable probes only.
func Summarize(results []ProbeResult) Summary {
	var s Summary
	var rttTotal time.Duration
	for _, r := range results {
		s.Probes++
		switch r.Outcome {
		case Reachable:
			s.Reachable++
			rttTotal += r.RTT
		case Failed:
			s.Failed++
		}
		if r.Timestamp.After(s.LastProbe) {
			s.LastProbe = r.Timestamp
		}
	}
	if s.Probes > 0 {
		s.Availability = math.Round(float64(s.Reachable)/float64(s.Probes)*10000) / 100
	}
	if s.Reachable > 0 {
		s.MeanRTT = rttTotal / time.Duration(s.Reachable)
	}
	return s
}

// LatencySeries returns RTTs in milliseconds, oldest first. Probes that were
// not reachable contribute zero so gaps stay visible in a sparkline.
func LatencySeries(results []ProbeResult) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		if r.Outcome == Reachable {
			out[i] = float64(r.RTT) / float64(time.Millisecond)
		}
	}
	return out
}
