package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tonhe/netcheck/internal/config"
	"github.com/tonhe/netcheck/internal/logging"
)

// Version is the release version shown by `netcheck version` and the TUI header.
var Version = "0.1.0"

// knownSubcommands is the set of CLI subcommands that bypass the TUI.
var knownSubcommands = map[string]bool{
	"watch":   true,
	"probe":   true,
	"config":  true,
	"themes":  true,
	"version": true,
	"help":    true,
}

// IsSubcommand returns true if the argument is a known CLI subcommand.
func IsSubcommand(arg string) bool {
	return knownSubcommands[arg]
}

// Execute dispatches to the appropriate CLI subcommand handler.
func Execute(args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "watch":
		watchCmd(args[1:])
	case "probe":
		probeCmd(args[1:])
	case "config":
		configCmd(args[1:])
	case "themes":
		themesCmd()
	case "version":
		fmt.Printf("netcheck v%s\n", Version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

// OpenLogger opens the diagnostic log file, falling back to a discarding
// logger so a read-only data dir never prevents monitoring.
func OpenLogger(cfg *config.Config) (*logrus.Logger, io.Closer) {
	path, err := config.GetLogPath()
	if err != nil {
		return logging.Discard(), nopCloser{}
	}
	logger, closer, err := logging.Open(path, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v\n", path, err)
		return logging.Discard(), nopCloser{}
	}
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func printUsage() {
	fmt.Println(`netcheck - network status monitor

Usage:
  netcheck                      Launch TUI monitor
  netcheck --target ADDRESS     Launch TUI with a target override
  netcheck --theme NAME         Launch with theme override
  netcheck watch [opts] ADDRESS Monitor headless, printing status changes
  netcheck probe [opts] ADDRESS Probe once and report the result
  netcheck config <cmd>         Manage configuration
  netcheck themes               List available themes
  netcheck version              Show version
  netcheck help                 Show this help

Watch / Probe Options:
  --interval N     Seconds between probes (watch only)
  --timeout N      Probe timeout in seconds
  --method M       icmp or tcp
  --port N         TCP port for --method tcp
  --privileged     Use raw ICMP sockets
  --export FILE    Save the status log on exit (watch only)

Config Commands:
  netcheck config path             Show config directory path
  netcheck config target ADDRESS   Set default target
  netcheck config interval N       Set poll interval in seconds
  netcheck config timeout N        Set probe timeout in seconds
  netcheck config method M         Set probe method (icmp or tcp)
  netcheck config theme NAME       Set default theme`)
}
