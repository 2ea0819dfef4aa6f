package detector

import (
	"testing"
)

func TestDetector_DetectISO639_3(t *testing.T) {
	d := New()

	tests := []struct {
		name     string
		text     string
		wantCode string
		wantOK   bool
	}{
		{
			name:     "empty text",
			text:     "",
			wantCode: "",
			wantOK:   false,
		},
		{
			name:     "english text",
			text:     "Hello, this is a test in English.",
			wantCode: "eng",
			wantOK:   true,
		},
		{
			name:     "german text",
			text:     "Hallo, das ist ein Test auf Deutsch.",
			wantCode: "deu",
			wantOK:   true,
		},
		{
			name:     "ukrainian text",
			text:     "Привіт, це тест українською мовою.",
			wantCode: "ukr",
			wantOK:   true,
		},
		{
			name:     "french text",
			text:     "Bonjour, ceci est un test en français.",
			wantCode: "fra",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := d.DetectISO639_3(tt.text)
			if ok != tt.wantOK {
				t.Errorf("DetectISO639_3(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
				return
			}
			if code != tt.wantCode {
				t.Errorf("DetectISO639_3(%q) = %q, want %q", tt.text, code, tt.wantCode)
			}
		})
	}
}

func TestDetector_Detect_Empty(t *testing.T) {
	d := New()

	if _, ok := d.Detect(""); ok {
		t.Error("expected no detection for empty text")
	}
}
