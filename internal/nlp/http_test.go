package nlp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSemtagClient_Classify_PostsTextPayload(t *testing.T) {
	var gotPath string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"term":"greeting","score":0.9}]}`))
	}))
	defer server.Close()

	svc := NewSemtagClient(server.URL, 5*time.Second)

	resp, err := svc.Classify(context.Background(), "Hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/classify" {
		t.Errorf("expected path /classify, got %q", gotPath)
	}

	var payload map[string]string
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if payload["text"] != "Hello world" {
		t.Errorf("expected text 'Hello world', got %q", payload["text"])
	}
	if len(payload) != 1 {
		t.Errorf("expected exactly one request field, got %v", payload)
	}

	if resp.Kind() != KindResults {
		t.Errorf("expected results response, got kind %v", resp.Kind())
	}
	if len(resp.Results) != 1 {
		t.Errorf("expected 1 result record, got %d", len(resp.Results))
	}
}

func TestNERClient_ExtractEntities_Path(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	svc := NewNERClient(server.URL, 5*time.Second)

	resp, err := svc.ExtractEntities(context.Background(), "Jan visited Copenhagen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/ner" {
		t.Errorf("expected path /ner, got %q", gotPath)
	}
	if resp.Kind() != KindResults {
		t.Errorf("expected results response, got kind %v", resp.Kind())
	}
	if len(resp.Results) != 0 {
		t.Errorf("expected no records, got %d", len(resp.Results))
	}
}

func TestSemtagClient_Classify_DetailWithErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"text field required"}`))
	}))
	defer server.Close()

	svc := NewSemtagClient(server.URL, 5*time.Second)

	resp, err := svc.Classify(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Kind() != KindDetail {
		t.Fatalf("expected detail response, got kind %v", resp.Kind())
	}
	if *resp.Detail != "text field required" {
		t.Errorf("expected detail message, got %q", *resp.Detail)
	}
}

func TestSemtagClient_Classify_NonJSONErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("Bad Gateway"))
	}))
	defer server.Close()

	svc := NewSemtagClient(server.URL, 5*time.Second)

	_, err := svc.Classify(context.Background(), "Hello")
	if err == nil {
		t.Fatal("expected error for non-JSON error response")
	}
}

func TestTranslateClient_SupportedLanguages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/supported_languages" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.Write([]byte(`{"supported_languages":["ces_Latn","deu_Latn","eng_Latn"]}`))
	}))
	defer server.Close()

	svc := NewTranslateClient(server.URL, 5*time.Second)

	langs, err := svc.SupportedLanguages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(langs) != 3 {
		t.Fatalf("expected 3 languages, got %d", len(langs))
	}
	if langs[0] != "ces_Latn" {
		t.Errorf("expected ces_Latn first, got %q", langs[0])
	}
}

func TestTranslateClient_SupportedLanguages_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewTranslateClient(server.URL, 5*time.Second)

	_, err := svc.SupportedLanguages(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestTranslateClient_Translate(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"text":"Hallo Welt"}`))
	}))
	defer server.Close()

	svc := NewTranslateClient(server.URL, 5*time.Second)

	resp, err := svc.Translate(context.Background(), "Hello world", "eng_Latn", "deu_Latn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]string
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if payload["text"] != "Hello world" || payload["src_lang"] != "eng_Latn" || payload["tgt_lang"] != "deu_Latn" {
		t.Errorf("unexpected request payload: %v", payload)
	}

	if resp.Kind() != KindText {
		t.Fatalf("expected text response, got kind %v", resp.Kind())
	}
	if *resp.Text != "Hallo Welt" {
		t.Errorf("expected 'Hallo Welt', got %q", *resp.Text)
	}
}
