package speech

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"codeberg.org/snonux/linguist/internal/language"
)

// GeminiTranscriber implements Transcriber by sending the recording to a Gemini model
type GeminiTranscriber struct {
	apiKey string
	model  string
}

// NewGeminiTranscriber creates a new Gemini transcriber
func NewGeminiTranscriber(config *Config) (*GeminiTranscriber, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	model := config.GeminiModel
	if model == "" {
		model = DefaultConfig().GeminiModel
	}

	return &GeminiTranscriber{apiKey: config.GeminiKey, model: model}, nil
}

// prompt builds the transcription instruction for lang
func (t *GeminiTranscriber) prompt(lang language.Code) string {
	var sb strings.Builder
	sb.WriteString("Transcribe the speech in this audio recording. ")
	if lang != language.Auto {
		fmt.Fprintf(&sb, "The speaker is talking %s. ", lang.Name())
	}
	sb.WriteString("Respond with only the transcript, nothing else. If there is no speech, respond with an empty message.")
	return sb.String()
}

// Transcribe sends wavPath inline to the Gemini API
func (t *GeminiTranscriber) Transcribe(ctx context.Context, wavPath string, lang language.Code) (string, error) {
	data, err := os.ReadFile(wavPath)
	if err != nil {
		return "", fmt.Errorf("failed to read recording: %w", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  t.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(t.prompt(lang)),
		genai.NewPartFromBytes(data, "audio/wav"),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

// Name returns the transcriber name
func (t *GeminiTranscriber) Name() string {
	return "gemini"
}

// IsAvailable checks if an API key is configured
func (t *GeminiTranscriber) IsAvailable() error {
	if t.apiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
