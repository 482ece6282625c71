package translation

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"horse.fit/polyglot/internal/language"
)

const (
	// YandexAPIKeyEnvVar supplies the key when not passed explicitly.
	YandexAPIKeyEnvVar = "YANDEX_API_KEY"

	yandexBaseURL = "https://translate.yandex.net/api/v1.5/tr.json"
)

// YandexTranslator calls the Yandex v1.5 JSON API. The language pair is
// carried as a single "src-tgt" parameter.
type YandexTranslator struct {
	languagePair
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewYandexTranslator(cfg Config) (*YandexTranslator, error) {
	pair, err := newLanguagePair("yandex", language.YandexTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	apiKey, err := credentialFromEnv("yandex", cfg.APIKey, YandexAPIKeyEnvVar, "api key")
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "yandex", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = yandexBaseURL
	}

	return &YandexTranslator{
		languagePair: pair,
		apiKey:       apiKey,
		baseURL:      baseURL,
		client:       client,
	}, nil
}

func (t *YandexTranslator) Translate(ctx context.Context, text string) (string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("key", t.apiKey)
	form.Set("lang", t.source+"-"+t.target)
	form.Set("text", trimmed)

	endpoint := t.baseURL + "/translate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &NetworkError{Vendor: t.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := send(t.Name(), t.client, req)
	if err != nil {
		return "", err
	}

	translated := strings.TrimSpace(gjson.GetBytes(body, "text.0").String())
	if translated == "" {
		return "", &ParseError{Vendor: t.Name(), Detail: "missing text[0]"}
	}
	return translated, nil
}

func (t *YandexTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
