package translation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"codeberg.org/snonux/linguist/internal/language"
)

func TestTranslate_Request(t *testing.T) {
	tests := []struct {
		name       string
		source     language.Code
		wantSource string
		hasSource  bool
	}{
		{"explicit source", language.English, "en", true},
		{"auto detect omits source", language.Auto, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("method = %s, want POST", r.Method)
				}
				if got := r.URL.Query().Get("key"); got != "secret" {
					t.Errorf("key = %q, want secret", got)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("Content-Type = %q", ct)
				}

				raw, _ := io.ReadAll(r.Body)
				var body map[string]any
				if err := json.Unmarshal(raw, &body); err != nil {
					t.Fatalf("request body is not JSON: %v", err)
				}
				if body["q"] != "Hello" || body["target"] != "es" || body["format"] != "text" {
					t.Errorf("unexpected body: %s", raw)
				}
				src, ok := body["source"]
				if ok != tt.hasSource {
					t.Errorf("source present = %v, want %v (%s)", ok, tt.hasSource, raw)
				}
				if ok && src != tt.wantSource {
					t.Errorf("source = %v, want %s", src, tt.wantSource)
				}

				w.Write([]byte(`{"data":{"translations":[{"translatedText":"Hola"}]}}`))
			}))
			defer server.Close()

			client := NewClient("secret", WithEndpoint(server.URL), WithHTTPClient(server.Client()))
			got, err := client.Translate(context.Background(), "Hello", tt.source, language.Spanish)
			if err != nil {
				t.Fatalf("Translate failed: %v", err)
			}
			if got != "Hola" {
				t.Errorf("Translate = %q, want Hola", got)
			}
		})
	}
}

func TestTranslate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"bad request", http.StatusBadRequest, `{"error":{"message":"API key not valid"}}`},
		{"server error", http.StatusInternalServerError, `oops`},
		{"malformed envelope", http.StatusOK, `{"data":`},
		{"missing data", http.StatusOK, `{}`},
		{"zero translations", http.StatusOK, `{"data":{"translations":[]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient("secret", WithEndpoint(server.URL))
			_, err := client.Translate(context.Background(), "Hello", language.English, language.Spanish)
			if !errors.Is(err, ErrTranslationFailed) {
				t.Errorf("error = %v, want ErrTranslationFailed", err)
			}
		})
	}
}

func TestTranslate_NoAPIKey(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	_, err := NewClient("", WithEndpoint(server.URL)).Translate(context.Background(), "Hello", language.English, language.Spanish)
	if !errors.Is(err, ErrTranslationFailed) {
		t.Errorf("error = %v, want ErrTranslationFailed", err)
	}
	if calls.Load() != 0 {
		t.Errorf("request issued without API key")
	}
}

func TestTranslate_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	_, err := NewClient("secret", WithEndpoint(endpoint)).Translate(context.Background(), "Hello", language.English, language.Spanish)
	if !errors.Is(err, ErrTranslationFailed) {
		t.Errorf("error = %v, want ErrTranslationFailed", err)
	}
}

func TestTranslate_Integration(t *testing.T) {
	apiKey := os.Getenv("GOOGLE_TRANSLATE_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: GOOGLE_TRANSLATE_API_KEY not set")
	}

	got, err := NewClient(apiKey).Translate(context.Background(), "Thank you", language.English, language.German)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got == "" {
		t.Error("Got empty translation")
	}
	t.Logf("Translation of 'Thank you': %s", got)
}
