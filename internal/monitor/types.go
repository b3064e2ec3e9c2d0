package monitor

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidConfig is returned by Start when the config fails validation.
	ErrInvalidConfig = errors.New("invalid monitor config")
	// ErrAlreadyRunning is returned by Start while a session is active.
	ErrAlreadyRunning = errors.New("monitor already running")
	// ErrExport wraps any failure writing or persisting the log.
	ErrExport = errors.New("export log")
)

// Config is the immutable configuration for one monitoring session.
type Config struct {
	Address         string
	IntervalSeconds int
	TimeoutSeconds  int
}

// Validate checks the config and returns an error wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidConfig)
	}
	if c.IntervalSeconds < 1 {
		return fmt.Errorf("%w: interval must be at least 1s, got %d", ErrInvalidConfig, c.IntervalSeconds)
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("%w: timeout must be at least 1s, got %d", ErrInvalidConfig, c.TimeoutSeconds)
	}
	return nil
}

// Outcome classifies a single probe.
type Outcome int

const (
	Reachable Outcome = iota + 1
	Unreachable
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Reachable:
		return "Reachable"
	case Unreachable:
		return "Unreachable"
	case Failed:
		return "Error"
	default:
		return "Unknown"
	}
}

// ProbeResult is the outcome of one reachability check.
type ProbeResult struct {
	Outcome   Outcome
	Message   string // set when Outcome is Failed
	RTT       time.Duration
	Timestamp time.Time
}

// Status renders the result for log lines, including the error text of a
// failed probe.
func (r ProbeResult) Status() string {
	if r.Outcome == Failed && r.Message != "" {
		return fmt.Sprintf("%s (%s)", r.Outcome, r.Message)
	}
	return r.Outcome.String()
}

// sameOutcome reports whether r and o describe the same status. Failed
// results are equal only when their error messages match.
func (r ProbeResult) sameOutcome(o ProbeResult) bool {
	if r.Outcome != o.Outcome {
		return false
	}
	return r.Outcome != Failed || r.Message == o.Message
}

// RunState is the lifecycle state of a Monitor.
type RunState int

const (
	Stopped RunState = iota
	Running
)

func (s RunState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// State is a point-in-time copy of the monitor's mutable state.
type State struct {
	Run       RunState
	Config    Config
	SessionID string
	Last      *ProbeResult
	Heartbeat int
	Probes    int
}

// LogEvent is one line of the user-facing status log.
type LogEvent struct {
	Time    time.Time
	Message string
}

// TimeLayout is used for timestamps in log messages and exported text.
const TimeLayout = "2006-01-02 15:04:05"

func (e LogEvent) String() string {
	return e.Time.Format(TimeLayout) + " " + e.Message
}

// EventKind tags an Event delivered to subscribers.
type EventKind int

const (
	EventLog EventKind = iota
	EventHeartbeat
	EventState
)

// Event is emitted to subscribers. Log is set for EventLog.
type Event struct {
	Kind  EventKind
	Log   *LogEvent
	State State
}
