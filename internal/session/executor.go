package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"codeberg.org/snonux/linguist/internal/history"
	"codeberg.org/snonux/linguist/internal/language"
	"codeberg.org/snonux/linguist/internal/logging"
	"codeberg.org/snonux/linguist/internal/translation"
)

// HistoryStore loads and saves the full history sequence
type HistoryStore interface {
	Load() []history.Entry
	Save(entries []history.Entry) error
}

// SpeechCapturer is the voice input capability
type SpeechCapturer interface {
	IsSupported() bool
	StartCapture(lang language.Code, onResult func(transcript string), onError func(reason string))
}

// Executor runs commands against the translation client, history store and speech adapter
type Executor struct {
	translator translation.Translator
	store      HistoryStore
	speech     SpeechCapturer
	logger     *log.Logger

	saveMu   sync.Mutex
	savedSeq uint64 // Seq of the last snapshot written
}

// NewExecutor creates an executor. speech may be nil when voice input is
// unavailable; a nil store keeps history in memory only.
func NewExecutor(translator translation.Translator, store HistoryStore, speech SpeechCapturer, logger *log.Logger) *Executor {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Executor{
		translator: translator,
		store:      store,
		speech:     speech,
		logger:     logger,
	}
}

// SpeechSupported reports whether voice input can be offered
func (e *Executor) SpeechSupported() bool {
	return e.speech != nil && e.speech.IsSupported()
}

// Execute runs cmd and returns its completion message. A successful
// history save has no completion and returns nil.
func (e *Executor) Execute(ctx context.Context, cmd Command) Msg {
	switch c := cmd.(type) {
	case TranslateCommand:
		e.logger.Debug("Translating", "from", c.Source, "to", c.Target, "chars", len(c.Text))
		if e.translator == nil {
			return TranslationFailed{Err: translation.ErrTranslationFailed}
		}
		result, err := e.translator.Translate(ctx, c.Text, c.Source, c.Target)
		if err != nil {
			e.logger.Error("Translation failed", "err", err)
			return TranslationFailed{Err: err}
		}
		return TranslationSucceeded{Request: c, Result: result}

	case SaveHistoryCommand:
		return e.save(c)

	case LoadHistoryCommand:
		if e.store == nil {
			return HistoryLoaded{Entries: nil}
		}
		return HistoryLoaded{Entries: e.store.Load()}

	case StartCaptureCommand:
		return e.capture(ctx, c.Language)

	default:
		panic(fmt.Sprintf("session: unknown command %T", cmd))
	}
}

// save writes one history snapshot. Saves run one at a time, and a snapshot
// superseded by a newer one that already landed is dropped.
func (e *Executor) save(c SaveHistoryCommand) Msg {
	if e.store == nil {
		return nil
	}

	e.saveMu.Lock()
	defer e.saveMu.Unlock()

	if c.Seq != 0 && c.Seq <= e.savedSeq {
		e.logger.Debug("Skipping superseded history save", "seq", c.Seq, "saved", e.savedSeq)
		return nil
	}
	if err := e.store.Save(c.Entries); err != nil {
		e.logger.Warn("Failed to persist history", "err", err)
		return HistorySaveFailed{Err: err}
	}
	if c.Seq > e.savedSeq {
		e.savedSeq = c.Seq
	}
	return nil
}

// capture bridges the callback based speech adapter to a single message
func (e *Executor) capture(ctx context.Context, lang language.Code) Msg {
	if !e.SpeechSupported() {
		return CaptureFailed{Reason: "service-not-allowed"}
	}

	done := make(chan Msg, 1)
	e.speech.StartCapture(lang,
		func(transcript string) { done <- TranscriptReceived{Text: transcript} },
		func(reason string) { done <- CaptureFailed{Reason: reason} },
	)

	select {
	case msg := <-done:
		return msg
	case <-ctx.Done():
		return CaptureFailed{Reason: "aborted"}
	}
}
