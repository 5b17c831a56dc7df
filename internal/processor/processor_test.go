package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"codeberg.org/snonux/linguist/internal/cli"
	"codeberg.org/snonux/linguist/internal/history"
	"codeberg.org/snonux/linguist/internal/language"
	"codeberg.org/snonux/linguist/internal/testutil"
)

// newTestProcessor returns a processor writing into a buffer, with its
// history database in a temp dir and a mock translator
func newTestProcessor(t *testing.T) (*Processor, *bytes.Buffer, *testutil.MockTranslator) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	flags := cli.NewFlags()
	flags.DBPath = filepath.Join(t.TempDir(), "linguist.db")

	translator := &testutil.MockTranslator{
		Translations: map[string]string{"Good morning": "Buenos días"},
		Errors:       map[string]error{"fail": errors.New("403 forbidden")},
	}

	var out bytes.Buffer
	p := NewProcessor(flags, nil)
	p.out = &out
	p.translator = translator
	return p, &out, translator
}

func TestNewProcessor(t *testing.T) {
	t.Setenv("LINGUIST_API_KEY", "test-key")

	flags := cli.NewFlags()
	p := NewProcessor(flags, nil)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}
	if p.translator == nil {
		t.Error("Translator not initialized")
	}
	if p.logger == nil {
		t.Error("Logger not initialized")
	}
}

func TestLanguages(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantSrc language.Code
		wantTgt language.Code
		wantErr bool
	}{
		{"defaults", "en", "es", language.English, language.Spanish, false},
		{"auto source", "auto", "de", language.Auto, language.German, false},
		{"names", "French", "japanese", language.French, language.Japanese, false},
		{"auto target", "en", "auto", "", "", true},
		{"unknown", "xx", "es", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := newTestProcessor(t)
			p.flags.From, p.flags.To = tt.from, tt.to

			src, tgt, err := p.languages()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if src != tt.wantSrc || tgt != tt.wantTgt {
				t.Errorf("languages = %s -> %s, want %s -> %s", src, tgt, tt.wantSrc, tt.wantTgt)
			}
		})
	}
}

func TestLanguages_ViperOverridesFlags(t *testing.T) {
	p, _, _ := newTestProcessor(t)
	viper.Set("translate.to", "it")

	_, tgt, err := p.languages()
	if err != nil || tgt != language.Italian {
		t.Errorf("target = %s, err = %v; want it", tgt, err)
	}
}

func TestProcessText(t *testing.T) {
	p, out, translator := newTestProcessor(t)

	if err := p.ProcessText(context.Background(), "Good morning"); err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "Buenos días" {
		t.Errorf("output = %q", got)
	}
	if calls := translator.Calls(); len(calls) != 1 || calls[0] != "Translate: Good morning (en->es)" {
		t.Errorf("calls = %v", calls)
	}

	// The translation is persisted and listed
	out.Reset()
	if err := p.ListHistory(); err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if !strings.Contains(out.String(), "EN → ES  Good morning") || !strings.Contains(out.String(), "Buenos días") {
		t.Errorf("history output:\n%s", out.String())
	}
}

func TestProcessText_Errors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		calls int
	}{
		{"empty input", "   ", "Please enter text to translate.", 0},
		{"translation failure", "fail", "Failed to translate. Please check your API key.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out, translator := newTestProcessor(t)

			err := p.ProcessText(context.Background(), tt.text)
			if err == nil || err.Error() != tt.want {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
			if got := len(translator.Calls()); got != tt.calls {
				t.Errorf("translator calls = %d, want %d", got, tt.calls)
			}
		})
	}
}

func TestListHistory_Empty(t *testing.T) {
	p, out, _ := newTestProcessor(t)

	if err := p.ListHistory(); err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if !strings.Contains(out.String(), "No translations yet.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestExportHistory(t *testing.T) {
	p, out, _ := newTestProcessor(t)

	for _, text := range []string{"Good morning", "Thank you"} {
		if err := p.ProcessText(context.Background(), text); err != nil {
			t.Fatalf("ProcessText(%q) failed: %v", text, err)
		}
	}
	out.Reset()

	path := filepath.Join(t.TempDir(), "history.json")
	if err := p.ExportHistory(path); err != nil {
		t.Fatalf("ExportHistory failed: %v", err)
	}
	if !strings.Contains(out.String(), "Exported 2 translations") {
		t.Errorf("output = %q", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	var entries []history.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("export is not JSON: %v", err)
	}
	if len(entries) != 2 || entries[0].InputText != "Thank you" {
		t.Errorf("exported = %+v, want most recent first", entries)
	}

	yamlPath := filepath.Join(t.TempDir(), "history.yaml")
	if err := p.ExportHistory(yamlPath); err != nil {
		t.Fatalf("ExportHistory (yaml) failed: %v", err)
	}
	testutil.AssertFileContains(t, yamlPath, "inputText: Thank you")

	// Anki exports put the oldest translation first
	csvPath := filepath.Join(t.TempDir(), "history.csv")
	if err := p.ExportHistory(csvPath); err != nil {
		t.Fatalf("ExportHistory (csv) failed: %v", err)
	}
	testutil.AssertFileContains(t, csvPath, "#separator:semicolon")
	testutil.AssertFileContains(t, csvPath, "\nGood morning;")

	apkgPath := filepath.Join(t.TempDir(), "history.apkg")
	if err := p.ExportHistory(apkgPath); err != nil {
		t.Fatalf("ExportHistory (apkg) failed: %v", err)
	}
	testutil.AssertFileExists(t, apkgPath)
}

func TestArchiveHistory(t *testing.T) {
	p, out, _ := newTestProcessor(t)

	if err := p.ProcessText(context.Background(), "Good morning"); err != nil {
		t.Fatalf("ProcessText failed: %v", err)
	}
	out.Reset()

	if err := p.ArchiveHistory(); err != nil {
		t.Fatalf("ArchiveHistory failed: %v", err)
	}
	testutil.AssertFileNotExists(t, p.dbPath())
	if !strings.Contains(out.String(), "Archived history to") {
		t.Errorf("output = %q", out.String())
	}

	// A fresh database starts empty
	out.Reset()
	if err := p.ListHistory(); err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if !strings.Contains(out.String(), "No translations yet.") {
		t.Errorf("history after archive:\n%s", out.String())
	}
}

func TestListLanguages(t *testing.T) {
	p, out, _ := newTestProcessor(t)
	p.ListLanguages()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 16 {
		t.Errorf("got %d lines, want header plus 15 languages", len(lines))
	}
	if !strings.Contains(out.String(), "auto  Auto Detect (source only)") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestInitialState(t *testing.T) {
	p, _, _ := newTestProcessor(t)
	p.flags.Dark = true
	p.flags.From = "auto"

	state, err := p.initialState(true)
	if err != nil {
		t.Fatalf("initialState failed: %v", err)
	}
	if !state.DarkMode || !state.SpeechSupported || state.SourceLanguage != language.Auto {
		t.Errorf("state = %+v", state)
	}
}

func TestNewSpeech_Unconfigured(t *testing.T) {
	p, _, _ := newTestProcessor(t)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if p.newSpeech().IsSupported() {
		t.Error("voice input supported without any transcription key")
	}
}
