package speech

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/linguist/internal/language"
	"codeberg.org/snonux/linguist/internal/logging"
)

// Diagnostic reasons passed to the error callback of StartCapture
const (
	ReasonNoSpeech       = "no-speech"
	ReasonAudioCapture   = "audio-capture"
	ReasonNetwork        = "network"
	ReasonNotAllowed     = "service-not-allowed"
	ReasonAlreadyRunning = "aborted"
)

// transcribeTimeout bounds a single transcription upload
const transcribeTimeout = 60 * time.Second

// Adapter records and transcribes one utterance per StartCapture call
type Adapter struct {
	recorder    Recorder
	transcriber Transcriber
	logger      *log.Logger

	mu      sync.Mutex
	running bool
}

// NewAdapter creates an adapter. Either argument may be nil, in which case
// IsSupported reports false.
func NewAdapter(recorder Recorder, transcriber Transcriber, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Adapter{recorder: recorder, transcriber: transcriber, logger: logger}
}

// IsSupported reports whether a recorder is installed and a transcriber is configured
func (a *Adapter) IsSupported() bool {
	if a == nil || a.recorder == nil || a.transcriber == nil {
		return false
	}
	return a.transcriber.IsAvailable() == nil
}

// StartCapture records and transcribes one utterance in the background and
// calls exactly one of onResult or onError exactly once.
func (a *Adapter) StartCapture(lang language.Code, onResult func(transcript string), onError func(reason string)) {
	if !a.IsSupported() {
		onError(ReasonNotAllowed)
		return
	}

	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		onError(ReasonAlreadyRunning)
		return
	}
	a.running = true
	a.mu.Unlock()

	go func() {
		defer func() {
			a.mu.Lock()
			a.running = false
			a.mu.Unlock()
		}()

		transcript, reason := a.capture(lang)
		if reason != "" {
			onError(reason)
			return
		}
		onResult(transcript)
	}()
}

// capture returns the transcript, or a non-empty reason on failure
func (a *Adapter) capture(lang language.Code) (string, string) {
	a.logger.Debug("Recording utterance", "recorder", a.recorder.Name(), "lang", lang)

	wavPath, err := a.recorder.Record(context.Background())
	if err != nil {
		a.logger.Error("Recording failed", "err", err)
		return "", ReasonAudioCapture
	}
	defer os.Remove(wavPath)

	ctx, cancel := context.WithTimeout(context.Background(), transcribeTimeout)
	defer cancel()

	transcript, err := a.transcriber.Transcribe(ctx, wavPath, lang)
	if err != nil {
		a.logger.Error("Transcription failed", "transcriber", a.transcriber.Name(), "err", err)
		if errors.Is(err, gobreaker.ErrOpenState) {
			return "", ReasonNotAllowed
		}
		return "", ReasonNetwork
	}
	if transcript == "" {
		return "", ReasonNoSpeech
	}

	a.logger.Debug("Transcribed utterance", "chars", len(transcript))
	return transcript, ""
}
