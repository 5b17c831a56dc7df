package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/linguist/internal/history"
	"codeberg.org/snonux/linguist/internal/language"
)

// MockTranslator mocks the translation client
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error

	// Release, when set, holds every call until a value is received from it
	Release chan struct{}

	mu    sync.Mutex
	calls []string
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text string, source, target language.Code) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, fmt.Sprintf("Translate: %s (%s->%s)", text, source, target))
	m.mu.Unlock()

	if m.Release != nil {
		select {
		case <-m.Release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Calls returns the recorded calls
func (m *MockTranslator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockHistoryStore mocks the persistent history store
type MockHistoryStore struct {
	Entries []history.Entry
	SaveErr error

	mu    sync.Mutex
	saves [][]history.Entry
}

// Load returns the configured entries
func (m *MockHistoryStore) Load() []history.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]history.Entry{}, m.Entries...)
}

// Save records the saved entries and replaces Entries unless SaveErr is set
func (m *MockHistoryStore) Save(entries []history.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves = append(m.saves, append([]history.Entry(nil), entries...))
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Entries = append([]history.Entry(nil), entries...)
	return nil
}

// Saves returns every sequence passed to Save
func (m *MockHistoryStore) Saves() [][]history.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]history.Entry(nil), m.saves...)
}

// MockSpeech mocks the speech capture adapter
type MockSpeech struct {
	Supported  bool
	Transcript string
	Reason     string // reported through onError when non-empty

	mu        sync.Mutex
	languages []language.Code
}

// IsSupported returns Supported
func (m *MockSpeech) IsSupported() bool {
	return m.Supported
}

// StartCapture calls back asynchronously with Transcript or Reason
func (m *MockSpeech) StartCapture(lang language.Code, onResult func(string), onError func(string)) {
	m.mu.Lock()
	m.languages = append(m.languages, lang)
	m.mu.Unlock()

	go func() {
		if m.Reason != "" {
			onError(m.Reason)
			return
		}
		onResult(m.Transcript)
	}()
}

// Languages returns the recognition languages of all captures
func (m *MockSpeech) Languages() []language.Code {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]language.Code(nil), m.languages...)
}
