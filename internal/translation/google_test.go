package translation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// newReversingVendor stubs the web endpoint: it echoes back the reversed
// query text in the vendor's nested-array response shape.
func newReversingVendor(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		text := r.URL.Query().Get("q")
		payload := []any{
			[]any{
				[]any{reverseString(text), text},
			},
			nil,
			"en",
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Errorf("encode stub payload: %v", err)
		}
	}))
}

func TestGoogleTranslateReversedEcho(t *testing.T) {
	t.Parallel()

	vendor := newReversingVendor(t)
	defer vendor.Close()

	translator, err := NewGoogleTranslator(Config{
		Source:  "auto",
		Target:  "german",
		BaseURL: vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}

	got, err := translator.Translate(context.Background(), "cat")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "tac" {
		t.Fatalf("unexpected translation: got %q want %q", got, "tac")
	}
}

func TestGoogleTranslateBatchMatchesSingleCalls(t *testing.T) {
	t.Parallel()

	vendor := newReversingVendor(t)
	defer vendor.Close()

	translator, err := NewGoogleTranslator(Config{
		Source:  "english",
		Target:  "german",
		BaseURL: vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}

	inputs := []string{"cat", "dog"}
	batch, err := translator.TranslateBatch(context.Background(), inputs)
	if err != nil {
		t.Fatalf("translate batch: %v", err)
	}
	if len(batch) != len(inputs) {
		t.Fatalf("batch length mismatch: got %d want %d", len(batch), len(inputs))
	}
	for i, input := range inputs {
		single, err := translator.Translate(context.Background(), input)
		if err != nil {
			t.Fatalf("translate %q: %v", input, err)
		}
		if batch[i] != single {
			t.Fatalf("batch[%d] = %q, single call = %q", i, batch[i], single)
		}
	}
	if batch[0] != "tac" || batch[1] != "god" {
		t.Fatalf("unexpected batch result: %v", batch)
	}
}

func TestGoogleConstructionFailsBeforeNetwork(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("transport must not be invoked for an invalid configuration")
	}))
	defer vendor.Close()

	_, err := NewGoogleTranslator(Config{
		Source:  "english",
		Target:  "english",
		BaseURL: vendor.URL,
	})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError for source == target, got %v", err)
	}

	_, err = NewGoogleTranslator(Config{
		Source:  "klingon",
		Target:  "german",
		BaseURL: vendor.URL,
	})
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError for unsupported source, got %v", err)
	}
	if !strings.Contains(err.Error(), "klingon") {
		t.Fatalf("error must name the offending value: %v", err)
	}
}

func TestGoogleParseErrorOnShapeDrift(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer vendor.Close()

	translator, err := NewGoogleTranslator(Config{
		Source:  "auto",
		Target:  "german",
		BaseURL: vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}

	_, err = translator.Translate(context.Background(), "cat")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestGoogleNetworkErrorOnStatus(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer vendor.Close()

	translator, err := NewGoogleTranslator(Config{
		Source:  "auto",
		Target:  "german",
		BaseURL: vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}

	_, err = translator.Translate(context.Background(), "cat")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Status != http.StatusTooManyRequests {
		t.Fatalf("unexpected status: %d", netErr.Status)
	}
	if !strings.Contains(netErr.Body, "rate limited") {
		t.Fatalf("error must carry the vendor payload: %q", netErr.Body)
	}
}

func TestSetTargetLastWriteWins(t *testing.T) {
	t.Parallel()

	translator, err := NewGoogleTranslator(Config{Source: "auto", Target: "german"})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}

	if err := translator.SetTarget("french"); err != nil {
		t.Fatalf("set target: %v", err)
	}
	if got := translator.Target(); got != "fr" {
		t.Fatalf("unexpected target after reassignment: %q", got)
	}

	if err := translator.SetTarget("auto"); err == nil {
		t.Fatal("expected rejection of auto as a target")
	}
	if got := translator.Target(); got != "fr" {
		t.Fatalf("failed mutation must not change the target: %q", got)
	}
}
