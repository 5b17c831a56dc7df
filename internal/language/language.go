package language

import (
	"fmt"
	"strings"
)

// Code is a language code as understood by the translation service
type Code string

// Auto asks the translation service to detect the source language
const Auto Code = "auto"

const (
	English    Code = "en"
	Spanish    Code = "es"
	French     Code = "fr"
	German     Code = "de"
	Italian    Code = "it"
	Chinese    Code = "zh"
	Japanese   Code = "ja"
	Russian    Code = "ru"
	Arabic     Code = "ar"
	Hindi      Code = "hi"
	Portuguese Code = "pt"
	Korean     Code = "ko"
	Turkish    Code = "tr"
	Dutch      Code = "nl"
)

// DefaultSource and DefaultTarget are the languages a new session starts with
const (
	DefaultSource = English
	DefaultTarget = Spanish
)

// Language pairs a code with its display name
type Language struct {
	Code Code
	Name string
}

// catalogue is ordered the way selectors present it
var catalogue = []Language{
	{Auto, "Auto Detect"},
	{English, "English"},
	{Spanish, "Spanish"},
	{French, "French"},
	{German, "German"},
	{Italian, "Italian"},
	{Chinese, "Chinese"},
	{Japanese, "Japanese"},
	{Russian, "Russian"},
	{Arabic, "Arabic"},
	{Hindi, "Hindi"},
	{Portuguese, "Portuguese"},
	{Korean, "Korean"},
	{Turkish, "Turkish"},
	{Dutch, "Dutch"},
}

// All returns every language, including Auto, in display order
func All() []Language {
	result := make([]Language, len(catalogue))
	copy(result, catalogue)
	return result
}

// Sources returns the languages valid as a translation source
func Sources() []Language {
	return All()
}

// Targets returns the languages valid as a translation target (everything but Auto)
func Targets() []Language {
	result := make([]Language, 0, len(catalogue)-1)
	for _, l := range catalogue {
		if l.Code != Auto {
			result = append(result, l)
		}
	}
	return result
}

// Known reports whether c is part of the catalogue
func (c Code) Known() bool {
	for _, l := range catalogue {
		if l.Code == c {
			return true
		}
	}
	return false
}

// ValidSource reports whether c may be used as the source language
func (c Code) ValidSource() bool {
	return c.Known()
}

// ValidTarget reports whether c may be used as the target language
func (c Code) ValidTarget() bool {
	return c != Auto && c.Known()
}

// Name returns the display name, or the raw code if unknown
func (c Code) Name() string {
	for _, l := range catalogue {
		if l.Code == c {
			return l.Name
		}
	}
	return string(c)
}

func (c Code) String() string {
	return string(c)
}

// Parse accepts either a code ("de") or a display name ("German", case-insensitive)
func Parse(s string) (Code, error) {
	for _, l := range catalogue {
		if string(l.Code) == s || strings.EqualFold(l.Name, s) {
			return l.Code, nil
		}
	}
	return "", fmt.Errorf("unknown language: %q", s)
}

// ParseSource parses s and checks that it is a valid source language
func ParseSource(s string) (Code, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	if !c.ValidSource() {
		return "", fmt.Errorf("%s cannot be used as source language", c.Name())
	}
	return c, nil
}

// ParseTarget parses s and checks that it is a valid target language
func ParseTarget(s string) (Code, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	if !c.ValidTarget() {
		return "", fmt.Errorf("%s cannot be used as target language", c.Name())
	}
	return c, nil
}

// ByName looks up a code by display name, used by selectors that only know labels
func ByName(name string) (Code, bool) {
	for _, l := range catalogue {
		if l.Name == name {
			return l.Code, true
		}
	}
	return "", false
}
