package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tech0-step3/portal-web/config"
	"github.com/tech0-step3/portal-web/internal/backend"
	"github.com/tech0-step3/portal-web/internal/tui"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <user-id>\n", os.Args[0])
		os.Exit(2)
	}
	id := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	closeLogs, err := tui.RedirectLogs(cfg.App.LogFile, cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLogs()

	client := backend.New(cfg.Backend.BaseURL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithRateLimit(cfg.Backend.RateLimit, cfg.Backend.RateBurst),
	)

	u, err := client.GetUser(context.Background(), id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "user %q not found\n", id)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	p := tea.NewProgram(tui.New(u, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
