package session

import (
	"codeberg.org/snonux/linguist/internal/history"
	"codeberg.org/snonux/linguist/internal/language"
)

// Msg is an input to Reduce: a user action or the completion of a Command
type Msg interface {
	isMsg()
}

// EditInput replaces the input text
type EditInput struct{ Text string }

// SelectSource changes the source language
type SelectSource struct{ Code language.Code }

// SelectTarget changes the target language
type SelectTarget struct{ Code language.Code }

// Translate requests a translation of the current input
type Translate struct{}

// TranslationSucceeded completes a TranslateCommand. Request is the command
// as issued, so the history entry records the text and languages in effect
// when the translation was triggered.
type TranslationSucceeded struct {
	Request TranslateCommand
	Result  string
}

// TranslationFailed completes a TranslateCommand that failed
type TranslationFailed struct{ Err error }

// Swap exchanges source and target
type Swap struct{}

// ToggleTheme flips dark mode
type ToggleTheme struct{}

// VoiceInput starts capturing speech
type VoiceInput struct{}

// TranscriptReceived completes a StartCaptureCommand
type TranscriptReceived struct{ Text string }

// CaptureFailed completes a StartCaptureCommand that failed
type CaptureFailed struct{ Reason string }

// Init starts the session
type Init struct{}

// HistoryLoaded completes a LoadHistoryCommand
type HistoryLoaded struct{ Entries []history.Entry }

// SelectHistory restores the history entry at Index into the session
type SelectHistory struct{ Index int }

// HistorySaveFailed completes a SaveHistoryCommand that failed
type HistorySaveFailed struct{ Err error }

func (EditInput) isMsg()            {}
func (SelectSource) isMsg()         {}
func (SelectTarget) isMsg()         {}
func (Translate) isMsg()            {}
func (TranslationSucceeded) isMsg() {}
func (TranslationFailed) isMsg()    {}
func (Swap) isMsg()                 {}
func (ToggleTheme) isMsg()          {}
func (VoiceInput) isMsg()           {}
func (TranscriptReceived) isMsg()   {}
func (CaptureFailed) isMsg()        {}
func (Init) isMsg()                 {}
func (HistoryLoaded) isMsg()        {}
func (SelectHistory) isMsg()        {}
func (HistorySaveFailed) isMsg()    {}

// Command is a side effect requested by Reduce
type Command interface {
	isCommand()
}

// TranslateCommand issues one translation request
type TranslateCommand struct {
	Text   string
	Source language.Code
	Target language.Code
}

// SaveHistoryCommand overwrites the persisted history. Seq numbers saves in
// the order Reduce issued them; a snapshot older than the last one written
// is discarded.
type SaveHistoryCommand struct {
	Entries []history.Entry
	Seq     uint64
}

// LoadHistoryCommand reads the persisted history
type LoadHistoryCommand struct{}

// StartCaptureCommand records and transcribes one utterance
type StartCaptureCommand struct{ Language language.Code }

func (TranslateCommand) isCommand()    {}
func (SaveHistoryCommand) isCommand()  {}
func (LoadHistoryCommand) isCommand()  {}
func (StartCaptureCommand) isCommand() {}
