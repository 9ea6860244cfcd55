package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tech0-step3/portal-web/internal/logging"
)

// RedirectLogs keeps log output off the terminal while the program runs.
// With a path, logs are appended to that file; otherwise they are dropped.
// The returned func closes the log file.
func RedirectLogs(path, env, level string) (func() error, error) {
	if path == "" {
		logging.SetupWriter(io.Discard, env, level)
		return func() error { return nil }, nil
	}

	f, err := tea.LogToFile(path, "usertui")
	if err != nil {
		return nil, err
	}
	logging.SetupWriter(f, env, level)
	return f.Close, nil
}
