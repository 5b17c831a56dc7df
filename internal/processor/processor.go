package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"codeberg.org/snonux/linguist/internal/anki"
	"codeberg.org/snonux/linguist/internal/archive"
	"codeberg.org/snonux/linguist/internal/cli"
	"codeberg.org/snonux/linguist/internal/history"
	"codeberg.org/snonux/linguist/internal/language"
	"codeberg.org/snonux/linguist/internal/logging"
	"codeberg.org/snonux/linguist/internal/models"
	"codeberg.org/snonux/linguist/internal/session"
	"codeberg.org/snonux/linguist/internal/speech"
	"codeberg.org/snonux/linguist/internal/storage"
	"codeberg.org/snonux/linguist/internal/translation"
)

// Processor runs one linguist mode
type Processor struct {
	flags      *cli.Flags
	logger     *log.Logger
	out        io.Writer
	translator translation.Translator
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags, logger *log.Logger) *Processor {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Processor{
		flags:      flags,
		logger:     logger,
		out:        os.Stdout,
		translator: translation.NewClient(cli.GetAPIKey()),
	}
}

// languages resolves the configured source and target languages
func (p *Processor) languages() (language.Code, language.Code, error) {
	from := viper.GetString("translate.from")
	if from == "" {
		from = p.flags.From
	}
	to := viper.GetString("translate.to")
	if to == "" {
		to = p.flags.To
	}

	source, err := language.ParseSource(from)
	if err != nil {
		return "", "", err
	}
	target, err := language.ParseTarget(to)
	if err != nil {
		return "", "", err
	}
	return source, target, nil
}

// dbPath returns the history database location
func (p *Processor) dbPath() string {
	if path := viper.GetString("storage.db"); path != "" {
		return path
	}
	if p.flags.DBPath != "" {
		return p.flags.DBPath
	}
	return cli.DefaultDBPath()
}

// openHistory opens the history database; the caller closes the returned store
func (p *Processor) openHistory() (*history.Store, *storage.SQLiteStore, error) {
	db, err := storage.OpenSQLite(p.dbPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history database: %w", err)
	}
	return history.NewStore(db, p.logger), db, nil
}

// newSpeech builds the voice input adapter. Missing pieces leave it unsupported.
func (p *Processor) newSpeech() *speech.Adapter {
	seconds := viper.GetInt("speech.record_seconds")
	if seconds <= 0 {
		seconds = p.flags.RecordSeconds
	}

	var recorder speech.Recorder
	if rec, err := speech.FindRecorder(seconds); err != nil {
		p.logger.Info("Voice input disabled", "reason", err)
	} else {
		recorder = rec
	}

	config := speech.DefaultConfig()
	if provider := viper.GetString("speech.provider"); provider != "" {
		config.Provider = provider
	} else if p.flags.SpeechProvider != "" {
		config.Provider = p.flags.SpeechProvider
	}
	config.OpenAIKey = cli.GetOpenAIKey()
	config.GeminiKey = cli.GetGeminiKey()
	if model := viper.GetString("speech.openai_model"); model != "" {
		config.OpenAIModel = model
	}
	if model := viper.GetString("speech.gemini_model"); model != "" {
		config.GeminiModel = model
	}

	transcriber, err := speech.NewTranscriber(config, p.logger)
	if err != nil {
		p.logger.Info("Voice input disabled", "reason", err)
	} else {
		p.logger.Debug("Voice input configured", "transcriber", transcriber.Name())
	}

	return speech.NewAdapter(recorder, transcriber, p.logger)
}

// initialState returns the session state a front-end starts from
func (p *Processor) initialState(speechSupported bool) (session.State, error) {
	source, target, err := p.languages()
	if err != nil {
		return session.State{}, err
	}

	state := session.NewState(speechSupported)
	state.SourceLanguage = source
	state.TargetLanguage = target
	state.DarkMode = viper.GetBool("ui.dark") || p.flags.Dark
	return state, nil
}

// ProcessText translates text on the command line and records it in the history
func (p *Processor) ProcessText(ctx context.Context, text string) error {
	state, err := p.initialState(false)
	if err != nil {
		return err
	}

	store, db, err := p.openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	exec := session.NewExecutor(p.translator, store, nil, p.logger)
	state = session.RunSync(ctx, exec, state, session.Init{}, session.EditInput{Text: text}, session.Translate{})

	if state.Err.Kind != session.ErrNone {
		return errors.New(state.Err.Message())
	}

	fmt.Fprintln(p.out, state.TranslatedText)
	return nil
}

// ListHistory prints the translation history, most recent first
func (p *Processor) ListHistory() error {
	store, db, err := p.openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	state := session.NewState(false)
	state.History = store.Load()
	state.HistoryLoaded = true
	view := session.Render(state)

	if len(view.History) == 0 {
		fmt.Fprintln(p.out, "No translations yet.")
		return nil
	}

	for _, row := range view.History {
		fmt.Fprintf(p.out, "%3d  %s  %s\n", row.Index+1, row.Languages, oneLine(row.Input))
		fmt.Fprintf(p.out, "            %s\n", oneLine(row.Translated))
	}
	return nil
}

// ExportHistory writes the history to path. The extension picks the format:
// .apkg and .csv produce Anki flashcards, .yaml/.yml YAML, anything else JSON.
func (p *Processor) ExportHistory(path string) error {
	store, db, err := p.openHistory()
	if err != nil {
		return err
	}
	defer db.Close()

	entries := store.Load()

	if strings.EqualFold(filepath.Ext(path), ".apkg") {
		gen := anki.NewAPKGGenerator("Linguist")
		for _, card := range anki.CardsFromHistory(entries) {
			gen.AddCard(card)
		}
		if err := gen.GenerateAPKG(path); err != nil {
			return fmt.Errorf("failed to export Anki package: %w", err)
		}
		fmt.Fprintf(p.out, "Exported %d translations to %s\n", len(entries), path)
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		gen := anki.NewGenerator()
		for _, card := range anki.CardsFromHistory(entries) {
			gen.AddCard(card)
		}
		err = gen.WriteCSV(f)
	} else {
		err = history.Export(f, entries, history.FormatFromPath(path))
	}
	if err != nil {
		return errors.Join(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Fprintf(p.out, "Exported %d translations to %s\n", len(entries), path)
	return nil
}

// ArchiveHistory moves the history database aside
func (p *Processor) ArchiveHistory() error {
	archivePath, err := archive.ArchiveDatabase(p.dbPath())
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Archived history to %s\n", archivePath)
	return nil
}

// ListLanguages prints the supported languages
func (p *Processor) ListLanguages() {
	fmt.Fprintln(p.out, "Supported languages:")
	for _, l := range language.All() {
		note := ""
		if l.Code == language.Auto {
			note = " (source only)"
		}
		fmt.Fprintf(p.out, "  %-5s %s%s\n", l.Code, l.Name, note)
	}
}

// ListModels prints the OpenAI transcription models available to the API key
func (p *Processor) ListModels(ctx context.Context) error {
	return models.NewLister(cli.GetOpenAIKey()).ListTranscriptionModels(ctx, p.out)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
