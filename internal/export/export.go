package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/tonhe/netcheck/internal/monitor"
)

// Exporter renders a log as text.
type Exporter interface {
	Export(w io.Writer) error
}

// WriteFile persists the log at path, replacing any existing file. The text
// is written to a temp file first so a failed save never leaves a partial log.
// Every failure matches monitor.ErrExport.
func WriteFile(path string, src Exporter) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return exportError("ensure export directory", err)
	}

	tmpPath := fmt.Sprintf("%s.%d.tmp", path, time.Now().UnixNano())
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return exportError("create temp log", err)
	}
	if err := src.Export(f); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		if errors.Is(err, monitor.ErrExport) {
			return err
		}
		return exportError("render log", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return exportError("close temp log", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return exportError("replace log file", err)
	}
	return nil
}

func exportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", monitor.ErrExport, op, err)
}
