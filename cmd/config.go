package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tonhe/netcheck/internal/config"
	"github.com/tonhe/netcheck/internal/monitor"
	"github.com/tonhe/netcheck/tui/styles"
)

const configUsage = "Usage: netcheck config <path|target|interval|timeout|method|theme>"

func configCmd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, configUsage)
		os.Exit(1)
	}

	if args[0] == "path" {
		configPath()
		return
	}

	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: netcheck config %s VALUE\n", args[0])
		os.Exit(1)
	}

	switch args[0] {
	case "target":
		configSetTarget(args[1])
	case "interval":
		configSetSeconds("interval", args[1], func(c *config.Config, n int) { c.IntervalSeconds = n })
	case "timeout":
		configSetSeconds("timeout", args[1], func(c *config.Config, n int) { c.TimeoutSeconds = n })
	case "method":
		configSetMethod(args[1])
	case "theme":
		configSetTheme(args[1])
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		fmt.Fprintln(os.Stderr, configUsage)
		os.Exit(1)
	}
}

func configPath() {
	dir, err := config.GetConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(dir)
}

func configSetTarget(address string) {
	address = strings.TrimSpace(address)
	if address == "" {
		fmt.Fprintln(os.Stderr, "Error: target must not be empty")
		os.Exit(1)
	}

	cfg := loadOrDefaultConfig()
	cfg.Target = address
	saveConfig(cfg)

	fmt.Printf("Default target set to %q.\n", address)
}

func configSetSeconds(name, raw string, apply func(*config.Config, int)) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		fmt.Fprintf(os.Stderr, "Error: %s must be a whole number of seconds >= 1\n", name)
		os.Exit(1)
	}

	cfg := loadOrDefaultConfig()
	apply(cfg, n)
	saveConfig(cfg)

	fmt.Printf("Default %s set to %ds.\n", name, n)
}

func configSetMethod(method string) {
	if _, err := monitor.NewTransport(method, 0, false); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := loadOrDefaultConfig()
	cfg.Method = strings.ToLower(method)
	saveConfig(cfg)

	fmt.Printf("Default probe method set to %q.\n", cfg.Method)
}

func configSetTheme(name string) {
	// Validate the theme name exists
	if styles.GetThemeByName(name) == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'netcheck themes' to see available themes.")
		os.Exit(1)
	}

	cfg := loadOrDefaultConfig()
	cfg.Theme = name
	saveConfig(cfg)

	fmt.Printf("Default theme set to %q.\n", name)
}

func themesCmd() {
	for _, name := range styles.ListThemes() {
		fmt.Println(name)
	}
}

// loadOrDefaultConfig loads the config from disk, falling back to defaults.
func loadOrDefaultConfig() *config.Config {
	path, err := config.GetConfigPath()
	if err != nil {
		return config.DefaultConfig()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// saveConfig writes the config to disk, creating directories as needed.
func saveConfig(cfg *config.Config) {
	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directories: %v\n", err)
		os.Exit(1)
	}

	path, err := config.GetConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.SaveConfig(cfg, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}
}
