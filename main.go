package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tonhe/netcheck/cmd"
	"github.com/tonhe/netcheck/internal/config"
	"github.com/tonhe/netcheck/tui"
)

func main() {
	if len(os.Args) > 1 && cmd.IsSubcommand(os.Args[1]) {
		cmd.Execute(os.Args[1:])
		return
	}

	target := flag.String("target", "", "Address to monitor (overrides config)")
	theme := flag.String("theme", "", "Theme name (overrides config)")
	start := flag.Bool("start", false, "Start monitoring immediately")
	flag.Parse()

	cfg := config.DefaultConfig()
	if path, err := config.GetConfigPath(); err == nil {
		loaded, loadErr := config.LoadConfig(path)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", loadErr)
		} else {
			cfg = loaded
		}
	}
	if *target != "" {
		cfg.Target = *target
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	logger, closer := cmd.OpenLogger(cfg)
	defer closer.Close()

	model, err := tui.NewAppModel(cfg, logger, cmd.Version, *start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.WithError(err).Error("TUI exited with an error.")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
