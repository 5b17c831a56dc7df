package session

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/linguist/internal/language"
)

// Title is the application title
const Title = "Language Translator"

// Theme is the colour scheme to draw with
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Option is one entry of a language selector
type Option struct {
	Code     language.Code
	Label    string
	Selected bool
}

// Selector is a language drop-down
type Selector struct {
	Label   string
	Value   language.Code
	Options []Option
}

// Button is a clickable control
type Button struct {
	Label   string
	Icon    string
	Tooltip string
	Enabled bool
}

// TextArea is a labelled multi-line text field
type TextArea struct {
	Label    string
	Text     string
	ReadOnly bool
}

// HistoryRow is one rendered history entry
type HistoryRow struct {
	Index      int
	Languages  string
	Input      string
	Translated string
}

// View is the declarative description of the translator window
type View struct {
	Title string
	Theme Theme

	Source Selector
	Target Selector

	Input  TextArea
	Output TextArea

	Translate   Button
	Mic         Button
	Swap        Button
	ThemeToggle Button

	Error string

	HistoryLoading bool
	History        []HistoryRow
}

// Render derives the view of s
func Render(s State) View {
	v := View{
		Title:  Title,
		Theme:  ThemeLight,
		Source: selector("Source Language", s.SourceLanguage, language.Sources()),
		Target: selector("Target Language", s.TargetLanguage, language.Targets()),
		Input:  TextArea{Label: "Enter Text", Text: s.InputText},
		Output: TextArea{Label: "Translated Text", Text: s.TranslatedText, ReadOnly: true},
		Translate: Button{
			Label:   "Translate",
			Tooltip: "Translate the input text",
			Enabled: true,
		},
		Mic: Button{
			Icon:    "mic",
			Tooltip: "Speak the input text",
			Enabled: s.SpeechSupported && !s.Listening,
		},
		Swap: Button{
			Icon:    "swap",
			Tooltip: "Swap languages",
			Enabled: s.SourceLanguage != language.Auto,
		},
		ThemeToggle: Button{
			Icon:    "moon",
			Tooltip: "Dark mode",
			Enabled: true,
		},
		Error:          s.Err.Message(),
		HistoryLoading: !s.HistoryLoaded,
		History:        make([]HistoryRow, 0, len(s.History)),
	}

	if s.DarkMode {
		v.Theme = ThemeDark
		v.ThemeToggle.Icon = "sun"
		v.ThemeToggle.Tooltip = "Light mode"
	}

	if s.InProgress() {
		v.Translate.Label = TranslatingSentinel
		v.Translate.Enabled = false
	}

	switch {
	case s.Listening:
		v.Mic.Tooltip = "Listening..."
	case !s.SpeechSupported:
		v.Mic.Tooltip = "Speech recognition is not available"
	}

	for i, e := range s.History {
		v.History = append(v.History, HistoryRow{
			Index:      i,
			Languages:  fmt.Sprintf("%s → %s", strings.ToUpper(string(e.SourceLanguage)), strings.ToUpper(string(e.TargetLanguage))),
			Input:      e.InputText,
			Translated: e.Translated,
		})
	}

	return v
}

func selector(label string, value language.Code, langs []language.Language) Selector {
	sel := Selector{Label: label, Value: value, Options: make([]Option, 0, len(langs))}
	for _, l := range langs {
		sel.Options = append(sel.Options, Option{
			Code:     l.Code,
			Label:    l.Name,
			Selected: l.Code == value,
		})
	}
	return sel
}

// Index returns the position of the selected option, or -1
func (s Selector) Index() int {
	for i, o := range s.Options {
		if o.Selected {
			return i
		}
	}
	return -1
}

// Labels returns the option labels in order
func (s Selector) Labels() []string {
	labels := make([]string, len(s.Options))
	for i, o := range s.Options {
		labels[i] = o.Label
	}
	return labels
}
