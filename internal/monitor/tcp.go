package monitor

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// TCPTransport checks reachability with a TCP connect. A refused connection
// still proves the host answered and counts as reachable.
type TCPTransport struct {
	Port int
}

func (t TCPTransport) Send(ctx context.Context, address string, timeout time.Duration) (Reply, error) {
	target := address
	if _, _, err := net.SplitHostPort(address); err != nil {
		port := t.Port
		if port <= 0 {
			port = 80
		}
		target = net.JoinHostPort(strings.Trim(address, "[]"), strconv.Itoa(port))
	}

	dialer := net.Dialer{Timeout: timeout}
	started := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", target)
	rtt := time.Since(started)
	if err == nil {
		_ = conn.Close()
		return Reply{Reachable: true, RTT: rtt}, nil
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return Reply{Reachable: true, RTT: rtt}, nil
	case errors.Is(err, syscall.EHOSTUNREACH), errors.Is(err, syscall.ENETUNREACH):
		return Reply{}, nil
	case isTimeout(err):
		return Reply{}, nil
	}
	return Reply{}, err
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
