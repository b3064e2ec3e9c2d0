package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// ParseLog reads text produced by Export back into log events. Timestamps
// are interpreted in the local zone, matching how they were written.
func ParseLog(r io.Reader) ([]LogEvent, error) {
	var events []LogEvent
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) < len(TimeLayout) {
			return nil, fmt.Errorf("line %d: too short for a timestamp", line)
		}
		ts, err := time.ParseInLocation(TimeLayout, text[:len(TimeLayout)], time.Local)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, LogEvent{
			Time:    ts,
			Message: strings.TrimPrefix(text[len(TimeLayout):], " "),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// ExportFileName returns the default name for a saved log.
func ExportFileName(t time.Time) string {
	return "netcheck-" + t.Format("20060102-150405") + ".txt"
}
