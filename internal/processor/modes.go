package processor

import (
	"context"
	"fmt"

	"codeberg.org/snonux/linguist/internal"
	"codeberg.org/snonux/linguist/internal/gui"
	"codeberg.org/snonux/linguist/internal/logging"
	"codeberg.org/snonux/linguist/internal/session"
	"codeberg.org/snonux/linguist/internal/tui"
)

// RunGUIMode launches the desktop GUI
func (p *Processor) RunGUIMode() error {
	store, db, err := p.openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	adapter := p.newSpeech()
	exec := session.NewExecutor(p.translator, store, adapter, p.logger)

	state, err := p.initialState(exec.SpeechSupported())
	if err != nil {
		return err
	}

	app := gui.New(&gui.Config{
		Executor: exec,
		State:    state,
		Logger:   p.logger,
	})
	app.Run()

	return nil
}

// RunTUIMode launches the terminal UI. Logging goes to a file under the
// state directory while the UI owns the terminal.
func (p *Processor) RunTUIMode(ctx context.Context) error {
	logFile, err := logging.OpenFile(internal.StateDir())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	p.logger.SetOutput(logFile)

	store, db, err := p.openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	adapter := p.newSpeech()
	exec := session.NewExecutor(p.translator, store, adapter, p.logger)

	state, err := p.initialState(exec.SpeechSupported())
	if err != nil {
		return err
	}

	return tui.Run(ctx, exec, state)
}
