package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tonhe/netcheck/internal/monitor"
)

type Config struct {
	Theme           string `toml:"theme"`
	Target          string `toml:"target"`
	IntervalSeconds int    `toml:"interval_seconds"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	Method          string `toml:"method"`
	TCPPort         int    `toml:"tcp_port"`
	Privileged      bool   `toml:"privileged"`
	MaxHistory      int    `toml:"max_history"`
	ExportDir       string `toml:"export_dir"`
	LogLevel        string `toml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:           "solarized-dark",
		Target:          "",
		IntervalSeconds: 1,
		TimeoutSeconds:  10,
		Method:          "icmp",
		TCPPort:         80,
		MaxHistory:      monitor.DefaultHistory,
		LogLevel:        "info",
	}
}

// LoadConfig reads a TOML config, returning defaults if the file is missing.
// Unset numeric fields fall back to their defaults; explicit invalid values
// are kept so Start can reject them.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if !md.IsDefined("max_history") || cfg.MaxHistory < 1 {
		cfg.MaxHistory = monitor.DefaultHistory
	}
	if cfg.Method == "" {
		cfg.Method = "icmp"
	}
	if cfg.TCPPort <= 0 {
		cfg.TCPPort = 80
	}
	return cfg, nil
}

func SaveConfig(cfg *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// MonitorConfig returns the session config for the configured target.
func (c *Config) MonitorConfig() monitor.Config {
	return monitor.Config{
		Address:         strings.TrimSpace(c.Target),
		IntervalSeconds: c.IntervalSeconds,
		TimeoutSeconds:  c.TimeoutSeconds,
	}
}

// Transport builds the probe transport selected by Method.
func (c *Config) Transport() (monitor.Transport, error) {
	return monitor.NewTransport(c.Method, c.TCPPort, c.Privileged)
}

// ResolveExportDir returns ExportDir, defaulting to the data directory.
func (c *Config) ResolveExportDir() (string, error) {
	if c.ExportDir != "" {
		return c.ExportDir, nil
	}
	return GetDataDir()
}
