package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/tonhe/netcheck/internal/config"
)

func TestIsSubcommand(t *testing.T) {
	for _, name := range []string{"watch", "probe", "config", "themes", "version", "help"} {
		if !IsSubcommand(name) {
			t.Errorf("expected %q to be a subcommand", name)
		}
	}
	for _, name := range []string{"", "--target", "dashboards", "identity"} {
		if IsSubcommand(name) {
			t.Errorf("did not expect %q to be a subcommand", name)
		}
	}
}

func TestLoadOrDefaultConfig(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG paths are not used on Windows")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := loadOrDefaultConfig()
	if cfg.IntervalSeconds != 1 || cfg.TimeoutSeconds != 10 {
		t.Errorf("expected defaults without a config file, got %+v", cfg)
	}

	path := filepath.Join(dir, "netcheck", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	want := config.DefaultConfig()
	want.Target = "192.0.2.7"
	want.IntervalSeconds = 4
	if err := config.SaveConfig(want, path); err != nil {
		t.Fatal(err)
	}

	cfg = loadOrDefaultConfig()
	if cfg.Target != "192.0.2.7" || cfg.IntervalSeconds != 4 {
		t.Errorf("config not loaded from %s: %+v", path, cfg)
	}
}

func TestOpenLoggerWritesToDataDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG paths are not used on Windows")
	}
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	logger, closer := OpenLogger(config.DefaultConfig())
	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "netcheck", "netcheck.log"))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
