package components

import (
	"fmt"
	"strings"
)

var blocks = []rune{'\u2581', '\u2582', '\u2583', '\u2584', '\u2585', '\u2586', '\u2587', '\u2588'}

// Sparkline renders data as a row of block characters, newest on the right.
// Zero values (lost probes) render as a gap.
func Sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return strings.Repeat(" ", width)
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	lo, hi := 0.0, 0.0
	seen := false
	for _, v := range data {
		if v == 0 {
			continue
		}
		if !seen || v < lo {
			lo = v
		}
		if !seen || v > hi {
			hi = v
		}
		seen = true
	}
	var sb strings.Builder
	padding := width - len(data)
	for i := 0; i < padding; i++ {
		sb.WriteRune(' ')
	}
	spread := hi - lo
	for _, v := range data {
		if v == 0 {
			sb.WriteRune(' ')
			continue
		}
		if spread == 0 {
			sb.WriteRune(blocks[3])
		} else {
			normalized := (v - lo) / spread
			idx := int(normalized * float64(len(blocks)-1))
			if idx >= len(blocks) {
				idx = len(blocks) - 1
			}
			sb.WriteRune(blocks[idx])
		}
	}
	return sb.String()
}

// FormatRTT formats a round-trip time in milliseconds for narrow columns.
func FormatRTT(ms float64) string {
	switch {
	case ms <= 0:
		return "-"
	case ms < 1:
		return fmt.Sprintf("%.0fus", ms*1000)
	case ms < 10:
		return fmt.Sprintf("%.2fms", ms)
	case ms < 1000:
		return fmt.Sprintf("%.0fms", ms)
	default:
		return fmt.Sprintf("%.1fs", ms/1000)
	}
}
