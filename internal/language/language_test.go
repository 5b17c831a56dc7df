package language

import "testing"

func TestCatalogueSize(t *testing.T) {
	if got := len(All()); got != 15 {
		t.Fatalf("len(All()) = %d, want 15", got)
	}
	if got := len(Targets()); got != 14 {
		t.Errorf("len(Targets()) = %d, want 14", got)
	}
	if All()[0].Code != Auto {
		t.Errorf("first entry = %s, want auto", All()[0].Code)
	}
}

func TestValidity(t *testing.T) {
	tests := []struct {
		code         Code
		validSource  bool
		validTarget  bool
		expectedName string
	}{
		{Auto, true, false, "Auto Detect"},
		{English, true, true, "English"},
		{Dutch, true, true, "Dutch"},
		{Code("xx"), false, false, "xx"},
		{Code(""), false, false, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.ValidSource(); got != tt.validSource {
				t.Errorf("ValidSource() = %v, want %v", got, tt.validSource)
			}
			if got := tt.code.ValidTarget(); got != tt.validTarget {
				t.Errorf("ValidTarget() = %v, want %v", got, tt.validTarget)
			}
			if got := tt.code.Name(); got != tt.expectedName {
				t.Errorf("Name() = %q, want %q", got, tt.expectedName)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Code
		wantErr bool
	}{
		{"de", German, false},
		{"German", German, false},
		{"german", German, false},
		{"Auto Detect", Auto, false},
		{"klingon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTargetRejectsAuto(t *testing.T) {
	if _, err := ParseTarget("auto"); err == nil {
		t.Error("expected error for auto as target")
	}
	if _, err := ParseSource("auto"); err != nil {
		t.Errorf("ParseSource(auto) failed: %v", err)
	}
}

func TestByName(t *testing.T) {
	code, ok := ByName("Japanese")
	if !ok || code != Japanese {
		t.Errorf("ByName(Japanese) = %s, %v", code, ok)
	}
	if _, ok := ByName("ja"); ok {
		t.Error("ByName should not accept codes")
	}
}
