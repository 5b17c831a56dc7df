package models

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestIsTranscriptionModel(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"whisper-1", true},
		{"gpt-4o-transcribe", true},
		{"gpt-4o-mini-transcribe", true},
		{"gpt-4o-mini-tts", false},
		{"dall-e-3", false},
	}

	for _, tt := range tests {
		if got := IsTranscriptionModel(tt.id); got != tt.want {
			t.Errorf("IsTranscriptionModel(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestListTranscriptionModels_NoAPIKey(t *testing.T) {
	err := NewLister("").ListTranscriptionModels(context.Background(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	expectedError := "OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .linguist.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestListTranscriptionModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[
			{"id":"gpt-4o-transcribe","object":"model"},
			{"id":"tts-1","object":"model"},
			{"id":"whisper-1","object":"model"}
		]}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	if err := NewListerWithBaseURL("test", server.URL+"/v1").ListTranscriptionModels(context.Background(), &buf); err != nil {
		t.Fatalf("ListTranscriptionModels failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "whisper-1 (default)") || !strings.Contains(out, "gpt-4o-transcribe") {
		t.Errorf("output missing models:\n%s", out)
	}
	if strings.Contains(out, "tts-1") {
		t.Errorf("output lists a non-transcription model:\n%s", out)
	}
}

func TestListTranscriptionModels_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	if err := NewLister(apiKey).ListTranscriptionModels(context.Background(), os.Stdout); err != nil {
		t.Errorf("ListTranscriptionModels failed: %v", err)
	}
}
