package nlp

import (
	"errors"
	"testing"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind Kind
		wantErr  bool
	}{
		{
			name:     "text response",
			body:     `{"text":"Hallo"}`,
			wantKind: KindText,
		},
		{
			name:     "empty text response",
			body:     `{"text":""}`,
			wantKind: KindText,
		},
		{
			name:     "detail response",
			body:     `{"detail":"something went wrong"}`,
			wantKind: KindDetail,
		},
		{
			name:     "results response",
			body:     `{"results":[{"term":"war","score":0.8}]}`,
			wantKind: KindResults,
		},
		{
			name:     "empty results response",
			body:     `{"results":[]}`,
			wantKind: KindResults,
		},
		{
			name:     "text wins over detail and results",
			body:     `{"text":"ok","detail":"err","results":[]}`,
			wantKind: KindText,
		},
		{
			name:     "detail wins over results",
			body:     `{"detail":"err","results":[]}`,
			wantKind: KindDetail,
		},
		{
			name:    "unrecognized shape",
			body:    `{"status":"ok"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `<html>502</html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ParseResponse([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", resp.Kind(), tt.wantKind)
			}
		})
	}
}

func TestParseResponse_UnrecognizedSentinel(t *testing.T) {
	_, err := ParseResponse([]byte(`{"foo":1}`))
	if !errors.Is(err, ErrUnrecognizedResponse) {
		t.Errorf("expected ErrUnrecognizedResponse, got %v", err)
	}
}
