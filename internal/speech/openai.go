package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/linguist/internal/language"
)

// OpenAITranscriber implements Transcriber with the OpenAI audio transcription API
type OpenAITranscriber struct {
	client *openai.Client
	model  string
	apiKey string
}

// NewOpenAITranscriber creates a new OpenAI transcriber
func NewOpenAITranscriber(config *Config) (*OpenAITranscriber, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	model := config.OpenAIModel
	if model == "" {
		model = openai.Whisper1
	}

	return &OpenAITranscriber{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		apiKey: config.OpenAIKey,
	}, nil
}

// Transcribe uploads wavPath for transcription
func (t *OpenAITranscriber) Transcribe(ctx context.Context, wavPath string, lang language.Code) (string, error) {
	req := openai.AudioRequest{
		Model:    t.model,
		FilePath: wavPath,
	}
	if lang != language.Auto {
		req.Language = string(lang)
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI transcription API error: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}

// Name returns the transcriber name
func (t *OpenAITranscriber) Name() string {
	return "openai"
}

// IsAvailable checks if an API key is configured
func (t *OpenAITranscriber) IsAvailable() error {
	if t.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
