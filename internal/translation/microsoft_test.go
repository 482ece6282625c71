package translation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMicrosoftMultiTargetSingleRequest(t *testing.T) {
	t.Parallel()

	requests := 0
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if key := r.Header.Get("Ocp-Apim-Subscription-Key"); key != "key-1" {
			t.Errorf("unexpected subscription key: %q", key)
		}
		body, _ := io.ReadAll(r.Body)
		var payload []map[string]string
		if err := json.Unmarshal(body, &payload); err != nil || len(payload) != 1 {
			t.Errorf("unexpected request body: %s", body)
		}
		targets := r.URL.Query()["to"]
		if len(targets) != 2 || targets[0] != "de" || targets[1] != "fr" {
			t.Errorf("unexpected targets: %v", targets)
		}
		w.Write([]byte(`[{"translations":[{"text":"Katze","to":"de"},{"text":"chat","to":"fr"}]}]`))
	}))
	defer vendor.Close()

	translator, err := NewMicrosoftTranslator(Config{
		Source:  "english",
		Targets: []string{"german", "french"},
		APIKey:  "key-1",
		BaseURL: vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}

	byTarget, err := translator.TranslateAll(context.Background(), "cat")
	if err != nil {
		t.Fatalf("translate all: %v", err)
	}
	if requests != 1 {
		t.Fatalf("multi-target must use one request, got %d", requests)
	}
	if byTarget["de"] != "Katze" || byTarget["fr"] != "chat" {
		t.Fatalf("unexpected translations: %v", byTarget)
	}

	single, err := translator.Translate(context.Background(), "cat")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if single != "Katze" {
		t.Fatalf("single-value translate must return the first target: %q", single)
	}
}

func TestMicrosoftSetTargetUpdatesRequests(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		targets := r.URL.Query()["to"]
		if len(targets) != 1 || targets[0] != "fr" {
			t.Errorf("request still targets the old language: to=%v, want [fr]", targets)
		}
		w.Write([]byte(`[{"translations":[{"text":"chat","to":"fr"}]}]`))
	}))
	defer vendor.Close()

	translator, err := NewMicrosoftTranslator(Config{
		Source:  "english",
		Target:  "german",
		APIKey:  "key-1",
		BaseURL: vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}

	if err := translator.SetTarget("french"); err != nil {
		t.Fatalf("set target: %v", err)
	}
	if translator.Target() != "fr" {
		t.Fatalf("unexpected target after SetTarget: %q", translator.Target())
	}
	if targets := translator.Targets(); len(targets) != 1 || targets[0] != "fr" {
		t.Fatalf("request targets not updated: %v", targets)
	}

	got, err := translator.Translate(context.Background(), "cat")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "chat" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestMicrosoftSingleTarget(t *testing.T) {
	t.Parallel()

	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if from := r.URL.Query().Get("from"); from != "" {
			t.Errorf("auto source must omit the from parameter, got %q", from)
		}
		w.Write([]byte(`[{"translations":[{"text":"Katze","to":"de"}]}]`))
	}))
	defer vendor.Close()

	translator, err := NewMicrosoftTranslator(Config{
		Source:  "auto",
		Target:  "german",
		APIKey:  "key-1",
		BaseURL: vendor.URL,
	})
	if err != nil {
		t.Fatalf("construct translator: %v", err)
	}

	got, err := translator.Translate(context.Background(), "cat")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Katze" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if targets := translator.Targets(); len(targets) != 1 || targets[0] != "de" {
		t.Fatalf("unexpected targets: %v", targets)
	}
}
