package monitor

import "strings"

// HeartbeatMax is the number of dots in a full heartbeat bar. The counter
// cycles over 0..HeartbeatMax.
const HeartbeatMax = 3

func nextHeartbeat(n int) int {
	return (n + 1) % (HeartbeatMax + 1)
}

// HeartbeatBar renders the counter as a fixed-width bar, e.g. "[.. ]".
// Zero renders the idle bar "[   ]".
func HeartbeatBar(n int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < HeartbeatMax; i++ {
		if i < n {
			b.WriteByte('.')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return b.String()
}
