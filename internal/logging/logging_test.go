package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"info level", false, false},
		{"debug level", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.debug)

			logger.Debug("debug line", "key", "value")
			logger.Info("info line", "chars", 5)

			out := buf.String()
			if !strings.Contains(out, "info line") {
				t.Errorf("info line missing from output: %q", out)
			}
			if !strings.Contains(out, "chars=5") {
				t.Errorf("structured field missing from output: %q", out)
			}
			if got := strings.Contains(out, "debug line"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic
	Discard().Error("dropped", "err", "boom")
}

func TestOpenFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	f, err := OpenFile(dir)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	logger := New(f, false)
	logger.Info("to file")
	f.Close()

	data, err := os.ReadFile(filepath.Join(dir, "linguist.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file content = %q", data)
	}
}
