package speech

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"codeberg.org/snonux/linguist/internal/language"
)

// ErrUnsupported reports that voice input cannot work on this host
var ErrUnsupported = errors.New("speech recognition not supported")

// Transcriber turns a recorded WAV file into text
type Transcriber interface {
	// Transcribe returns the text spoken in wavPath; lang is a recognition hint
	Transcribe(ctx context.Context, wavPath string, lang language.Code) (string, error)

	// Name returns the transcriber name
	Name() string

	// IsAvailable checks if the transcriber is configured
	IsAvailable() error
}

// Config holds the transcription settings
type Config struct {
	Provider string // "openai", "gemini" or "auto"

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string // empty uses the public API

	GeminiKey   string
	GeminiModel string
}

// DefaultConfig returns the default transcription configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    "auto",
		OpenAIModel: "whisper-1",
		GeminiModel: "gemini-2.0-flash",
	}
}

// NewTranscriber creates the transcriber selected by config. Every returned
// transcriber is wrapped in a circuit breaker.
func NewTranscriber(config *Config, logger *log.Logger) (Transcriber, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case "openai":
		t, err := NewOpenAITranscriber(config)
		if err != nil {
			return nil, err
		}
		return NewBreaker(t, logger), nil

	case "gemini":
		t, err := NewGeminiTranscriber(config)
		if err != nil {
			return nil, err
		}
		return NewBreaker(t, logger), nil

	case "auto", "":
		var candidates []Transcriber
		if config.OpenAIKey != "" {
			t, err := NewOpenAITranscriber(config)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, NewBreaker(t, logger))
		}
		if config.GeminiKey != "" {
			t, err := NewGeminiTranscriber(config)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, NewBreaker(t, logger))
		}

		switch len(candidates) {
		case 0:
			return nil, fmt.Errorf("%w: no OpenAI or Gemini API key configured", ErrUnsupported)
		case 1:
			return candidates[0], nil
		default:
			return NewTranscriberWithFallback(candidates[0], candidates[1], logger), nil
		}

	default:
		return nil, fmt.Errorf("unknown speech provider: %s", config.Provider)
	}
}

// TranscriberWithFallback wraps a primary transcriber with a fallback option
type TranscriberWithFallback struct {
	primary  Transcriber
	fallback Transcriber
	logger   *log.Logger
}

// NewTranscriberWithFallback creates a transcriber that falls back to secondary if primary fails
func NewTranscriberWithFallback(primary, fallback Transcriber, logger *log.Logger) Transcriber {
	if logger == nil {
		logger = log.Default()
	}
	return &TranscriberWithFallback{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Transcribe tries the primary transcriber first, falls back to secondary on error
func (t *TranscriberWithFallback) Transcribe(ctx context.Context, wavPath string, lang language.Code) (string, error) {
	text, err := t.primary.Transcribe(ctx, wavPath, lang)
	if err != nil {
		t.logger.Warn("Primary transcriber failed, falling back",
			"primary", t.primary.Name(), "fallback", t.fallback.Name(), "err", err)
		return t.fallback.Transcribe(ctx, wavPath, lang)
	}
	return text, nil
}

// Name returns the transcriber name
func (t *TranscriberWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", t.primary.Name(), t.fallback.Name())
}

// IsAvailable checks if at least one transcriber is available
func (t *TranscriberWithFallback) IsAvailable() error {
	primaryErr := t.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := t.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both transcribers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
