package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Run starts the presentation and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	// Keep log output off the terminal while the presentation owns it.
	restore, err := redirectLogs(logFile(opts))
	if err != nil {
		return err
	}
	defer restore()

	logrus.WithFields(logrus.Fields{
		"slides":   model.reg.Count(),
		"fragment": model.Fragment(),
	}).Info("presentation started")

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func logFile(opts Options) string {
	if opts.Config == nil {
		return ""
	}
	return opts.Config.Log.File
}

// redirectLogs points logrus at path, or discards output when path is
// empty. The returned func restores the previous output.
func redirectLogs(path string) (func(), error) {
	prevOut := logrus.StandardLogger().Out
	if path == "" {
		logrus.SetOutput(io.Discard)
		return func() { logrus.SetOutput(prevOut) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	logrus.SetOutput(f)
	return func() {
		logrus.SetOutput(prevOut)
		_ = f.Close()
	}, nil
}
