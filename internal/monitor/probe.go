package monitor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Reply is what a Transport reports for a single echo attempt.
type Reply struct {
	Reachable bool
	RTT       time.Duration
}

// Transport sends one reachability check to an address. Implementations
// should honor ctx and return within timeout. A non-nil error means the
// check itself could not be performed (bad address, socket failure); an
// unanswered check is a Reply with Reachable false.
//
// A Send that ignores ctx keeps running after Probe has given up on it. The
// Monitor issues no further Send until that call returns.
type Transport interface {
	Send(ctx context.Context, address string, timeout time.Duration) (Reply, error)
}

// TransportFunc adapts a plain function to the Transport interface.
type TransportFunc func(ctx context.Context, address string, timeout time.Duration) (Reply, error)

func (f TransportFunc) Send(ctx context.Context, address string, timeout time.Duration) (Reply, error) {
	return f(ctx, address, timeout)
}

// Probe issues exactly one check through t and never blocks longer than
// timeout, even if t ignores its context. Transport errors and panics are
// returned as a Failed result.
func Probe(ctx context.Context, t Transport, address string, timeout time.Duration) ProbeResult {
	r, _ := probe(ctx, t, address, timeout)
	return r
}

// probe is Probe that also returns a channel closed once t.Send has
// actually returned, which may be after the result was produced.
func probe(ctx context.Context, t Transport, address string, timeout time.Duration) (ProbeResult, <-chan struct{}) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type sendResult struct {
		reply Reply
		err   error
	}
	done := make(chan sendResult, 1)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		defer func() {
			if r := recover(); r != nil {
				done <- sendResult{err: fmt.Errorf("transport panic: %v", r)}
			}
		}()
		reply, err := t.Send(ctx, address, timeout)
		done <- sendResult{reply: reply, err: err}
	}()

	select {
	case res := <-done:
		now := time.Now()
		switch {
		case res.err != nil && errors.Is(res.err, context.DeadlineExceeded):
			return ProbeResult{Outcome: Unreachable, Timestamp: now}, finished
		case res.err != nil:
			return ProbeResult{Outcome: Failed, Message: oneLine(res.err.Error()), Timestamp: now}, finished
		case res.reply.Reachable:
			return ProbeResult{Outcome: Reachable, RTT: res.reply.RTT, Timestamp: now}, finished
		default:
			return ProbeResult{Outcome: Unreachable, Timestamp: now}, finished
		}
	case <-ctx.Done():
		now := time.Now()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ProbeResult{Outcome: Unreachable, Timestamp: now}, finished
		}
		return ProbeResult{Outcome: Failed, Message: "probe cancelled", Timestamp: now}, finished
	}
}

// NewTransport returns the transport for a configured probe method.
func NewTransport(method string, tcpPort int, privileged bool) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "", "icmp", "ping":
		return ICMPTransport{Privileged: privileged}, nil
	case "tcp":
		return TCPTransport{Port: tcpPort}, nil
	default:
		return nil, fmt.Errorf("unknown probe method %q", method)
	}
}

// oneLine collapses line breaks so every log event stays a single line.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}
