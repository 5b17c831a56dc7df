package session

import (
	"codeberg.org/snonux/linguist/internal/history"
	"codeberg.org/snonux/linguist/internal/language"
)

// TranslatingSentinel is shown as the translated text while a request is in flight
const TranslatingSentinel = "Translating..."

// ErrorKind classifies the error currently shown to the user
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrEmptyInput
	ErrTranslationFailure
	ErrUnsupportedSpeech
	ErrSpeechCapture
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrEmptyInput:
		return "empty-input"
	case ErrTranslationFailure:
		return "translation-failure"
	case ErrUnsupportedSpeech:
		return "unsupported-speech"
	case ErrSpeechCapture:
		return "speech-capture"
	default:
		return "unknown"
	}
}

// Error is the user-facing error of the session. Detail is only set for
// speech capture errors and carries the diagnostic verbatim.
type Error struct {
	Kind   ErrorKind
	Detail string
}

// Message returns the text displayed for the error, empty for ErrNone
func (e Error) Message() string {
	switch e.Kind {
	case ErrEmptyInput:
		return "Please enter text to translate."
	case ErrTranslationFailure:
		return "Failed to translate. Please check your API key."
	case ErrUnsupportedSpeech:
		return "Speech recognition is not supported on this system."
	case ErrSpeechCapture:
		return "Speech recognition error: " + e.Detail
	default:
		return ""
	}
}

// State is the complete translator session
type State struct {
	InputText      string
	TranslatedText string
	SourceLanguage language.Code
	TargetLanguage language.Code

	// History is ordered most recent first
	History       []history.Entry
	HistoryLoaded bool
	SavesIssued   uint64

	DarkMode bool

	SpeechSupported bool
	Listening       bool

	Err Error
}

// NewState returns the initial session state
func NewState(speechSupported bool) State {
	return State{
		SourceLanguage:  language.DefaultSource,
		TargetLanguage:  language.DefaultTarget,
		History:         []history.Entry{},
		SpeechSupported: speechSupported,
	}
}

// InProgress reports whether a translation request is in flight
func (s State) InProgress() bool {
	return s.TranslatedText == TranslatingSentinel
}

// Clone returns a copy that shares no memory with s
func (s State) Clone() State {
	c := s
	c.History = append([]history.Entry(nil), s.History...)
	if c.History == nil {
		c.History = []history.Entry{}
	}
	return c
}
