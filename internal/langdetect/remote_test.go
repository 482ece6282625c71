package langdetect

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"horse.fit/polyglot/internal/translation"
)

func TestDetectSingle(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer key-1" {
			t.Errorf("unexpected authorization header: %q", auth)
		}
		w.Write([]byte(`{"data":{"detections":[[{"language":"de","isReliable":true,"confidence":12.04}]]}}`))
	}))
	defer vendor.Close()

	client, err := NewClient(Options{APIKey: "key-1", BaseURL: vendor.URL})
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}

	code, err := client.Detect(context.Background(), "Hallo Welt")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if code != "de" {
		t.Fatalf("unexpected code: %q", code)
	}
}

func TestDetectBatchOrderPreserving(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if texts := r.PostForm["q[]"]; len(texts) != 2 {
			t.Errorf("batch must travel in one request, got %v", texts)
		}
		w.Write([]byte(`{"data":{"detections":[[{"language":"en"}],[{"language":"fr"}]]}}`))
	}))
	defer vendor.Close()

	client, err := NewClient(Options{APIKey: "key-1", BaseURL: vendor.URL})
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}

	codes, err := client.DetectBatch(context.Background(), []string{"hello world", "bonjour le monde"})
	if err != nil {
		t.Fatalf("detect batch: %v", err)
	}
	if len(codes) != 2 || codes[0] != "en" || codes[1] != "fr" {
		t.Fatalf("unexpected codes: %v", codes)
	}
}

func TestDetectCountMismatchIsParseError(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"detections":[[{"language":"en"}]]}}`))
	}))
	defer vendor.Close()

	client, err := NewClient(Options{APIKey: "key-1", BaseURL: vendor.URL})
	if err != nil {
		t.Fatalf("construct client: %v", err)
	}

	_, err = client.DetectBatch(context.Background(), []string{"one", "two"})
	var parseErr *translation.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError on count mismatch, got %v", err)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")

	_, err := NewClient(Options{})
	var cfgErr *translation.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError without a key, got %v", err)
	}
}
