package monitor

import (
	"context"
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

// ICMPTransport sends a single ICMP echo request per check.
// Privileged selects raw sockets; otherwise unprivileged UDP ping is used,
// which on Linux requires net.ipv4.ping_group_range to include the user.
type ICMPTransport struct {
	Privileged bool
	Size       int
}

func (t ICMPTransport) Send(ctx context.Context, address string, timeout time.Duration) (Reply, error) {
	pinger, err := probing.NewPinger(address)
	if err != nil {
		return Reply{}, fmt.Errorf("create pinger for %s: %w", address, err)
	}

	pinger.Count = 1
	pinger.Timeout = timeout
	if t.Size > 0 {
		pinger.Size = t.Size
	}
	pinger.SetPrivileged(t.Privileged)

	if err := pinger.RunWithContext(ctx); err != nil {
		return Reply{}, fmt.Errorf("ping %s: %w", address, err)
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return Reply{}, nil
	}
	return Reply{Reachable: true, RTT: stats.AvgRtt}, nil
}
