package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// NewListerWithBaseURL creates a model lister talking to baseURL
func NewListerWithBaseURL(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// IsTranscriptionModel reports whether id names a speech-to-text model
func IsTranscriptionModel(id string) bool {
	return strings.Contains(id, "whisper") || strings.Contains(id, "transcribe")
}

// ListTranscriptionModels writes the available speech-to-text models to w
func (l *Lister) ListTranscriptionModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .linguist.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	var transcription []string
	for _, model := range models.Models {
		if IsTranscriptionModel(model.ID) {
			transcription = append(transcription, model.ID)
		}
	}
	sort.Strings(transcription)

	fmt.Fprintln(w, "Available OpenAI transcription models:")
	if len(transcription) == 0 {
		fmt.Fprintln(w, "  No transcription models found")
		return nil
	}
	for _, model := range transcription {
		marker := ""
		if model == openai.Whisper1 {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  %s%s\n", model, marker)
	}

	return nil
}
