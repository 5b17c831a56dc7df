package cli

import (
	"codeberg.org/snonux/linguist/internal/language"
	"codeberg.org/snonux/linguist/internal/speech"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string
	From    string
	To      string
	DBPath  string
	TUIMode bool
	Dark    bool
	Debug   bool

	// History flags
	ShowHistory bool
	ExportFile  string
	Archive     bool

	// Informational flags
	ListLanguages bool
	ListModels    bool

	// Speech flags
	SpeechProvider string
	RecordSeconds  int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		From:           string(language.DefaultSource),
		To:             string(language.DefaultTarget),
		SpeechProvider: "auto",
		RecordSeconds:  speech.DefaultRecordSeconds,
	}
}
