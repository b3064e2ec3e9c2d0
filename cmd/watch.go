package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tonhe/netcheck/internal/export"
	"github.com/tonhe/netcheck/internal/monitor"
)

func watchCmd(args []string) {
	cfg := loadOrDefaultConfig()

	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	interval := fs.Int("interval", cfg.IntervalSeconds, "Seconds between probes")
	timeout := fs.Int("timeout", cfg.TimeoutSeconds, "Probe timeout in seconds")
	method := fs.String("method", cfg.Method, "Probe method: icmp or tcp")
	port := fs.Int("port", cfg.TCPPort, "TCP port for --method tcp")
	privileged := fs.Bool("privileged", cfg.Privileged, "Use raw ICMP sockets")
	exportPath := fs.String("export", "", "Write the status log to FILE on exit")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: netcheck watch [--interval N] [--timeout N] [--method icmp|tcp] [--export FILE] ADDRESS")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	address := cfg.Target
	if fs.NArg() > 0 {
		address = fs.Arg(0)
	}

	transport, err := monitor.NewTransport(*method, *port, *privileged)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer := OpenLogger(cfg)
	mon := monitor.New(transport, monitor.WithLogger(logger), monitor.WithHistory(cfg.MaxHistory))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = runWatch(ctx, mon, monitor.Config{
		Address:         address,
		IntervalSeconds: *interval,
		TimeoutSeconds:  *timeout,
	}, *exportPath, os.Stdout, os.Stderr)
	stop()
	closer.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runWatch monitors until ctx is done, printing each log line to stdout as
// it is appended, then optionally saves the log to exportPath.
func runWatch(ctx context.Context, mon *monitor.Monitor, mc monitor.Config, exportPath string, stdout, stderr io.Writer) error {
	events := mon.Subscribe()

	session, err := mon.Start(mc)
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "Watching %s every %ds (timeout %ds). Press Ctrl+C to stop.\n",
		session.Config.Address, mc.IntervalSeconds, mc.TimeoutSeconds)

	// Subscriber delivery is lossy, so print from the log itself.
	printed := 0
	flush := func() {
		log := mon.Events()
		for ; printed < len(log); printed++ {
			fmt.Fprintln(stdout, log[printed].String())
		}
	}

	for running := true; running; {
		select {
		case <-ctx.Done():
			running = false
		case <-events:
			flush()
		}
	}

	mon.Stop(session)
	flush()

	sum := mon.Summary()
	fmt.Fprintf(stderr, "%d probes, %.2f%% reachable, mean rtt %s\n", sum.Probes, sum.Availability, sum.MeanRTT)

	if exportPath != "" {
		if err := export.WriteFile(exportPath, mon); err != nil {
			return fmt.Errorf("saving log: %w", err)
		}
		fmt.Fprintf(stderr, "Log saved to %s\n", exportPath)
	}
	return nil
}
