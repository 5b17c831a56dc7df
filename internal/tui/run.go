package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/snonux/linguist/internal/session"
)

// Run starts the terminal UI and blocks until the user quits or ctx ends
func Run(ctx context.Context, exec *session.Executor, state session.State) error {
	program := tea.NewProgram(New(ctx, exec, state), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
