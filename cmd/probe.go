package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tonhe/netcheck/internal/monitor"
)

func probeCmd(args []string) {
	cfg := loadOrDefaultConfig()

	fs := flag.NewFlagSet("probe", flag.ExitOnError)
	timeout := fs.Int("timeout", cfg.TimeoutSeconds, "Probe timeout in seconds")
	method := fs.String("method", cfg.Method, "Probe method: icmp or tcp")
	port := fs.Int("port", cfg.TCPPort, "TCP port for --method tcp")
	privileged := fs.Bool("privileged", cfg.Privileged, "Use raw ICMP sockets")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: netcheck probe [--timeout N] [--method icmp|tcp] [--port N] ADDRESS")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	address := cfg.Target
	if fs.NArg() > 0 {
		address = fs.Arg(0)
	}
	if address == "" {
		fmt.Fprintln(os.Stderr, "Error: ADDRESS argument is required")
		fs.Usage()
		os.Exit(1)
	}
	if *timeout < 1 {
		fmt.Fprintln(os.Stderr, "Error: --timeout must be at least 1")
		os.Exit(1)
	}

	transport, err := monitor.NewTransport(*method, *port, *privileged)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := monitor.Probe(context.Background(), transport, address, time.Duration(*timeout)*time.Second)
	switch result.Outcome {
	case monitor.Reachable:
		fmt.Printf("%s: %s (%s)\n", address, result.Status(), result.RTT.Round(10*time.Microsecond))
	default:
		fmt.Printf("%s: %s\n", address, result.Status())
		os.Exit(1)
	}
}
