package history

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"codeberg.org/snonux/linguist/internal/language"
	"codeberg.org/snonux/linguist/internal/logging"
	"codeberg.org/snonux/linguist/internal/storage"
)

// SlotKey is the storage slot holding the serialized history
const SlotKey = "translationHistory"

// Entry is one completed translation
type Entry struct {
	InputText      string        `json:"inputText" yaml:"inputText"`
	Translated     string        `json:"translated" yaml:"translated"`
	SourceLanguage language.Code `json:"sourceLanguage" yaml:"sourceLanguage"`
	TargetLanguage language.Code `json:"targetLanguage" yaml:"targetLanguage"`
}

// Store reads and writes the full history sequence, most recent first
type Store struct {
	slot   storage.Slot
	logger *log.Logger
}

// NewStore creates a history store on top of slot. A nil logger discards output.
func NewStore(slot storage.Slot, logger *log.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{slot: slot, logger: logger}
}

// Load returns the persisted history. A missing, empty or unreadable slot
// yields an empty history; errors are logged, never returned. Entries whose
// languages are not selectable are dropped.
func (s *Store) Load() []Entry {
	raw, ok, err := s.slot.Get(SlotKey)
	if err != nil {
		s.logger.Warn("Failed to read history", "err", err)
		return []Entry{}
	}
	if !ok || raw == "" {
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("Discarding unparsable history", "err", err)
		return []Entry{}
	}

	valid := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.SourceLanguage.ValidSource() || !e.TargetLanguage.ValidTarget() {
			s.logger.Warn("Dropping history entry with invalid languages",
				"source", e.SourceLanguage, "target", e.TargetLanguage)
			continue
		}
		valid = append(valid, e)
	}

	s.logger.Debug("Loaded history", "entries", len(valid))
	return valid
}

// Save overwrites the persisted history with entries
func (s *Store) Save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := s.slot.Set(SlotKey, string(data)); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
