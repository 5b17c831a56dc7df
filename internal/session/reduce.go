package session

import (
	"strings"

	"codeberg.org/snonux/linguist/internal/history"
	"codeberg.org/snonux/linguist/internal/language"
)

// Reduce applies msg to s and returns the new state with the commands to run.
// It never mutates s.
func Reduce(s State, msg Msg) (State, []Command) {
	s = s.Clone()

	switch m := msg.(type) {
	case EditInput:
		s.InputText = m.Text

	case SelectSource:
		if m.Code.ValidSource() {
			s.SourceLanguage = m.Code
		}

	case SelectTarget:
		if m.Code.ValidTarget() {
			s.TargetLanguage = m.Code
		}

	case Translate:
		if strings.TrimSpace(s.InputText) == "" {
			s.Err = Error{Kind: ErrEmptyInput}
			return s, nil
		}
		s.Err = Error{}
		s.TranslatedText = TranslatingSentinel
		return s, []Command{TranslateCommand{
			Text:   s.InputText,
			Source: s.SourceLanguage,
			Target: s.TargetLanguage,
		}}

	case TranslationSucceeded:
		s.TranslatedText = m.Result
		entry := history.Entry{
			InputText:      m.Request.Text,
			Translated:     m.Result,
			SourceLanguage: m.Request.Source,
			TargetLanguage: m.Request.Target,
		}
		s.History = append([]history.Entry{entry}, s.History...)
		// Until the persisted history is loaded a save would overwrite it
		if !s.HistoryLoaded {
			return s, nil
		}
		return saveHistory(s)

	case TranslationFailed:
		s.Err = Error{Kind: ErrTranslationFailure}
		s.TranslatedText = ""

	case Swap:
		return swap(s), nil

	case ToggleTheme:
		s.DarkMode = !s.DarkMode

	case VoiceInput:
		if !s.SpeechSupported {
			s.Err = Error{Kind: ErrUnsupportedSpeech}
			return s, nil
		}
		if s.Listening {
			return s, nil
		}
		s.Listening = true
		return s, []Command{StartCaptureCommand{Language: s.SourceLanguage}}

	case TranscriptReceived:
		s.Listening = false
		s.InputText = m.Text

	case CaptureFailed:
		s.Listening = false
		s.Err = Error{Kind: ErrSpeechCapture, Detail: m.Reason}

	case Init:
		return s, []Command{LoadHistoryCommand{}}

	case HistoryLoaded:
		if s.HistoryLoaded {
			s.History = append([]history.Entry{}, m.Entries...)
			return s, nil
		}
		pending := len(s.History)
		s.History = append(s.History, m.Entries...)
		s.HistoryLoaded = true
		if pending > 0 {
			return saveHistory(s)
		}

	case SelectHistory:
		if m.Index < 0 || m.Index >= len(s.History) {
			return s, nil
		}
		e := s.History[m.Index]
		if !e.SourceLanguage.ValidSource() || !e.TargetLanguage.ValidTarget() {
			return s, nil
		}
		s.InputText = e.InputText
		s.TranslatedText = e.Translated
		s.SourceLanguage = e.SourceLanguage
		s.TargetLanguage = e.TargetLanguage
		s.Err = Error{}

	case HistorySaveFailed:
		// Persistence failures leave the in-memory history untouched
	}

	return s, nil
}

// swap exchanges the languages and, once a translation has completed, the texts
func swap(s State) State {
	if s.SourceLanguage == language.Auto {
		return s
	}

	s.SourceLanguage, s.TargetLanguage = s.TargetLanguage, s.SourceLanguage
	if s.TranslatedText != "" && s.TranslatedText != TranslatingSentinel {
		s.InputText, s.TranslatedText = s.TranslatedText, s.InputText
	}
	return s
}

// saveHistory issues a snapshot of the history numbered after every earlier save
func saveHistory(s State) (State, []Command) {
	s.SavesIssued++
	return s, []Command{SaveHistoryCommand{
		Entries: append([]history.Entry(nil), s.History...),
		Seq:     s.SavesIssued,
	}}
}
