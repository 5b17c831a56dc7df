package speech

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/linguist/internal/language"
)

type mockRecorder struct {
	dir string
	err error
}

func (m *mockRecorder) Record(ctx context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	path := filepath.Join(m.dir, "utterance.wav")
	return path, os.WriteFile(path, []byte("RIFF"), 0644)
}

func (m *mockRecorder) Name() string { return "mock" }

type outcome struct {
	transcript string
	reason     string
}

// capture runs StartCapture and waits for its single callback
func capture(t *testing.T, a *Adapter, lang language.Code) outcome {
	t.Helper()
	done := make(chan outcome, 2)

	a.StartCapture(lang,
		func(text string) { done <- outcome{transcript: text} },
		func(reason string) { done <- outcome{reason: reason} },
	)

	select {
	case o := <-done:
		select {
		case extra := <-done:
			t.Fatalf("second callback invoked: %+v", extra)
		case <-time.After(50 * time.Millisecond):
		}
		return o
	case <-time.After(5 * time.Second):
		t.Fatal("no callback invoked")
		return outcome{}
	}
}

func TestAdapter_IsSupported(t *testing.T) {
	rec := &mockRecorder{dir: t.TempDir()}

	tests := []struct {
		name    string
		adapter *Adapter
		want    bool
	}{
		{"nil adapter", nil, false},
		{"no recorder", NewAdapter(nil, &mockTranscriber{}, nil), false},
		{"no transcriber", NewAdapter(rec, nil, nil), false},
		{"transcriber unavailable", NewAdapter(rec, &mockTranscriber{availableErr: errors.New("no key")}, nil), false},
		{"supported", NewAdapter(rec, &mockTranscriber{}, nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.adapter.IsSupported(); got != tt.want {
				t.Errorf("IsSupported() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdapter_StartCapture(t *testing.T) {
	tests := []struct {
		name        string
		recordErr   error
		transcriber *mockTranscriber
		want        outcome
	}{
		{"transcript", nil, &mockTranscriber{text: "hola"}, outcome{transcript: "hola"}},
		{"empty transcript", nil, &mockTranscriber{}, outcome{reason: ReasonNoSpeech}},
		{"recorder fails", errors.New("device busy"), &mockTranscriber{text: "x"}, outcome{reason: ReasonAudioCapture}},
		{"transcriber fails", nil, &mockTranscriber{err: errors.New("503")}, outcome{reason: ReasonNetwork}},
		{"breaker open", nil, &mockTranscriber{err: gobreaker.ErrOpenState}, outcome{reason: ReasonNotAllowed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			a := NewAdapter(&mockRecorder{dir: dir, err: tt.recordErr}, tt.transcriber, nil)

			if got := capture(t, a, language.Spanish); got != tt.want {
				t.Errorf("outcome = %+v, want %+v", got, tt.want)
			}
			if tt.recordErr == nil && tt.transcriber.lastLang != language.Spanish {
				t.Errorf("recognition language = %s, want es", tt.transcriber.lastLang)
			}
			if _, err := os.Stat(filepath.Join(dir, "utterance.wav")); !os.IsNotExist(err) {
				t.Error("recording was not removed")
			}
		})
	}
}

func TestAdapter_StartCaptureUnsupported(t *testing.T) {
	a := NewAdapter(nil, nil, nil)
	if got := capture(t, a, language.English); got.reason != ReasonNotAllowed {
		t.Errorf("outcome = %+v, want reason %s", got, ReasonNotAllowed)
	}
}
