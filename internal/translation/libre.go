package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"horse.fit/polyglot/internal/language"
)

const (
	// LibreAPIKeyEnvVar supplies the key for hosted instances that need one.
	LibreAPIKeyEnvVar = "LIBRE_API_KEY"
	// LibreBaseURLEnvVar points at a self-hosted instance.
	LibreBaseURLEnvVar = "LIBRE_BASE_URL"

	libreBaseURL = "https://libretranslate.com"
)

// LibreTranslator calls a LibreTranslate instance. The public instance
// requires an API key; self-hosted instances usually do not.
type LibreTranslator struct {
	languagePair
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewLibreTranslator(cfg Config) (*LibreTranslator, error) {
	pair, err := newLanguagePair("libre", language.LibreTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "libre", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(strings.TrimSpace(os.Getenv(LibreBaseURLEnvVar)), "/")
	}
	if baseURL == "" {
		baseURL = libreBaseURL
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv(LibreAPIKeyEnvVar))
	}

	return &LibreTranslator{
		languagePair: pair,
		apiKey:       apiKey,
		baseURL:      baseURL,
		client:       client,
	}, nil
}

func (t *LibreTranslator) Translate(ctx context.Context, text string) (string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return "", err
	}

	payload := map[string]string{
		"q":      trimmed,
		"source": t.source,
		"target": t.target,
		"format": "text",
	}
	if t.apiKey != "" {
		payload["api_key"] = t.apiKey
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", &ConfigError{Vendor: t.Name(), Detail: "encode request body", Err: err}
	}

	endpoint := t.baseURL + "/translate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", &NetworkError{Vendor: t.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := send(t.Name(), t.client, req)
	if err != nil {
		return "", err
	}

	translated := strings.TrimSpace(gjson.GetBytes(body, "translatedText").String())
	if translated == "" {
		return "", &ParseError{Vendor: t.Name(), Detail: "missing translatedText"}
	}
	return translated, nil
}

func (t *LibreTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
