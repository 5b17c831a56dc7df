package history

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"history.json", FormatJSON},
		{"history.yaml", FormatYAML},
		{"history.YML", FormatYAML},
		{"history", FormatJSON},
	}

	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, sampleEntries(), FormatJSON); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var got []Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if !reflect.DeepEqual(got, sampleEntries()) {
		t.Errorf("exported = %v", got)
	}
}

func TestExport_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, sampleEntries(), FormatYAML); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if !strings.Contains(buf.String(), "inputText: Thank you") {
		t.Errorf("YAML output missing keys:\n%s", buf.String())
	}

	var got []Entry
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("exported YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(got, sampleEntries()) {
		t.Errorf("exported = %v", got)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	if err := Export(&bytes.Buffer{}, nil, Format("csv")); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
