package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"starfolio/internal/adapters/browser"
	"starfolio/internal/adapters/clipboard"
	"starfolio/internal/adapters/static"
	"starfolio/internal/adapters/tui"
	"starfolio/internal/application"
	"starfolio/internal/config"
	"starfolio/internal/logging"
)

func main() {
	cfg, cfgErr := config.Load()

	viewFlag := flag.String("view", cfg.DefaultView, "panel to open on start (home, projects, technical, writings)")
	verbose := flag.Bool("verbose", false, "debug logging to the configured log file")
	flag.Parse()

	logger, err := logging.ForTUI(cfg.LogFile, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	if cfgErr != nil {
		logger.Warn("using default config", zap.Error(cfgErr))
	}

	view, err := application.ValidateView("view", *viewFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	content, err := static.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create and run TUI app
	app, err := tui.NewApp(content, browser.NewOpener(), clipboard.System{}, tui.Options{
		DefaultView:   view,
		OrbitInterval: cfg.OrbitInterval,
		OrbitStep:     cfg.OrbitStep,
		Mouse:         cfg.MouseEnabled(),
		Logger:        logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseEnabled() {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(app, opts...)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
