package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/tonhe/netcheck/internal/monitor"
)

type textExporter string

func (t textExporter) Export(w io.Writer) error {
	_, err := io.WriteString(w, string(t))
	return err
}

type brokenExporter struct{}

func (brokenExporter) Export(io.Writer) error { return errors.New("export log: broken") }

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "status.txt")
	want := "2024-01-01 10:00:00 Initial status: Reachable\n"

	if err := WriteFile(path, textExporter(want)); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWriteFileFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "status.txt")

	err := WriteFile(path, brokenExporter{})
	if !errors.Is(err, monitor.ErrExport) {
		t.Fatalf("expected ErrExport from broken exporter, got %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no files after failed export, found %d", len(entries))
	}
}

func TestWriteFileDiskErrorsWrapErrExport(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := WriteFile(filepath.Join(blocker, "status.txt"), textExporter("line\n"))
	if err == nil {
		t.Fatal("expected error when the parent path is a file")
	}
	if !errors.Is(err, monitor.ErrExport) {
		t.Errorf("expected error to wrap ErrExport, got %v", err)
	}
}
