package monitor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultHistory is the number of probe results kept for statistics.
const DefaultHistory = 120

const subscriberBuffer = 64

// Session identifies one Start..Stop run of a Monitor.
type Session struct {
	ID      string
	Config  Config
	Started time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// Done is closed once the session's loop has exited and state is reset.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Monitor probes a single address at a fixed cadence and records status
// transitions in an append-only log. The loop goroutine is the only writer
// of the monitor state; everything else reads through Snapshot, Events,
// History or a Subscribe channel.
type Monitor struct {
	transport Transport
	logger    logrus.FieldLogger
	unit      time.Duration // duration of one configured second

	mu          sync.RWMutex
	state       State
	session     *Session
	events      []LogEvent
	history     *ring[ProbeResult]
	subscribers []chan Event

	// stray is closed when the last abandoned Send returns. Loop only.
	stray <-chan struct{}
}

// Option customizes a Monitor.
type Option func(*Monitor)

// WithLogger sets the diagnostic logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Monitor) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithHistory sets how many probe results are kept for Summary and History.
func WithHistory(n int) Option {
	return func(m *Monitor) {
		if n > 0 {
			m.history = newRing[ProbeResult](n)
		}
	}
}

// New creates an idle Monitor that probes through transport.
func New(transport Transport, opts ...Option) *Monitor {
	m := &Monitor{
		transport: transport,
		logger:    logrus.StandardLogger(),
		unit:      time.Second,
		history:   newRing[ProbeResult](DefaultHistory),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start validates cfg and launches the polling loop in its own goroutine.
func (m *Monitor) Start(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		m.logger.WithError(err).Warn("Rejected monitor config.")
		return nil, err
	}
	cfg.Address = strings.TrimSpace(cfg.Address)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		return nil, ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		ID:      uuid.NewString(),
		Config:  cfg,
		Started: time.Now(),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	m.session = s
	m.state = State{Run: Running, Config: cfg, SessionID: s.ID}
	m.history.reset()
	m.notifyLocked(EventState, nil)

	go m.run(ctx, s)
	return s, nil
}

// Stop cancels the session and waits for its loop to exit. A nil session
// stops whichever session is current. Stopping an idle monitor or a stale
// session is a no-op.
func (m *Monitor) Stop(s *Session) {
	m.mu.RLock()
	current := m.session
	m.mu.RUnlock()

	if current == nil || (s != nil && s != current) {
		return
	}
	current.cancel()
	<-current.done
}

// Running reports whether a session is active.
func (m *Monitor) Running() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Run == Running
}

// Snapshot returns a copy of the current state.
func (m *Monitor) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *Monitor) snapshotLocked() State {
	st := m.state
	if st.Last != nil {
		last := *st.Last
		st.Last = &last
	}
	return st
}

// Events returns a copy of the log in emission order.
func (m *Monitor) Events() []LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]LogEvent, len(m.events))
	copy(out, m.events)
	return out
}

// History returns the retained probe results, oldest first.
func (m *Monitor) History() []ProbeResult {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.history.all()
}

// Summary aggregates the retained probe results.
func (m *Monitor) Summary() Summary {
	return Summarize(m.History())
}

// Clear empties the log. It is only ever triggered by the user; the loop
// never truncates history.
func (m *Monitor) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
	m.notifyLocked(EventState, nil)
}

// Text renders the log as one "timestamp message" line per event.
func (m *Monitor) Text() string {
	var b strings.Builder
	for _, ev := range m.Events() {
		b.WriteString(ev.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Export writes Text to w. Failures wrap ErrExport and leave the monitor
// untouched.
func (m *Monitor) Export(w io.Writer) error {
	if _, err := io.WriteString(w, m.Text()); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

// Subscribe returns a channel receiving log, heartbeat and state events.
// Delivery is best-effort: events are dropped for a subscriber whose buffer
// is full, so consumers needing the full log should read Events.
func (m *Monitor) Subscribe() <-chan Event {
	ch := make(chan Event, subscriberBuffer)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, ch)
	return ch
}

// Unsubscribe removes and closes a channel returned by Subscribe.
func (m *Monitor) Unsubscribe(ch <-chan Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// notifyLocked fans an event out without blocking. Caller holds m.mu.
func (m *Monitor) notifyLocked(kind EventKind, ev *LogEvent) {
	event := Event{Kind: kind, Log: ev, State: m.snapshotLocked()}
	for _, ch := range m.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (m *Monitor) run(ctx context.Context, s *Session) {
	defer close(s.done)
	defer m.reset(s)

	interval := time.Duration(s.Config.IntervalSeconds) * m.unit
	timeout := time.Duration(s.Config.TimeoutSeconds) * m.unit
	logger := m.logger.WithFields(logrus.Fields{
		"session":  s.ID,
		"address":  s.Config.Address,
		"interval": interval,
		"timeout":  timeout,
	})
	logger.Info("Monitoring started.")

	first := true
	for {
		started := time.Now()
		result := m.probe(ctx, s.Config.Address, timeout)
		if ctx.Err() != nil {
			break
		}
		if result.Outcome == Failed {
			logger.WithField("error", result.Message).Warn("Probe failed.")
		}
		m.record(result, first)
		first = false

		if !wait(ctx, started.Add(interval)) {
			break
		}
	}

	logger.Info("Monitoring stopped.")
}

// probe runs one check unless a Send from an earlier check is still
// running, in which case that check is reported as Failed instead.
func (m *Monitor) probe(ctx context.Context, address string, timeout time.Duration) ProbeResult {
	if m.stray != nil {
		select {
		case <-m.stray:
			m.stray = nil
		default:
			return ProbeResult{Outcome: Failed, Message: "previous check still running", Timestamp: time.Now()}
		}
	}
	result, finished := probe(ctx, m.transport, address, timeout)
	select {
	case <-finished:
	default:
		m.stray = finished
	}
	return result
}

// record applies one probe result and emits the matching log events.
func (m *Monitor) record(r ProbeResult, first bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.state.Last
	if first {
		m.appendLocked(LogEvent{Time: r.Timestamp, Message: "Initial status: " + r.Status()})
	}
	if prev != nil && !prev.sameOutcome(r) {
		m.appendLocked(LogEvent{
			Time:    r.Timestamp,
			Message: fmt.Sprintf("Status changed to %s at %s", r.Status(), r.Timestamp.Format(TimeLayout)),
		})
	}

	m.state.Last = &r
	m.state.Probes++
	m.state.Heartbeat = nextHeartbeat(m.state.Heartbeat)
	m.history.push(r)
	m.notifyLocked(EventHeartbeat, nil)
}

func (m *Monitor) appendLocked(ev LogEvent) {
	ev.Message = oneLine(ev.Message)
	m.events = append(m.events, ev)
	m.notifyLocked(EventLog, &ev)
}

// reset returns the state to idle. The log is kept.
func (m *Monitor) reset(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == s {
		m.session = nil
	}
	m.state = State{Run: Stopped}
	m.notifyLocked(EventState, nil)
}

// wait blocks until deadline or cancellation and reports whether the
// deadline was reached.
func wait(ctx context.Context, deadline time.Time) bool {
	d := time.Until(deadline)
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
