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
	// DeeplAPIKeyEnvVar supplies the key when not passed explicitly.
	DeeplAPIKeyEnvVar = "DEEPL_API_KEY"

	deeplProBaseURL  = "https://api.deepl.com"
	deeplFreeBaseURL = "https://api-free.deepl.com"
)

// DeeplTranslator calls the DeepL v2 API. Keys issued for the free tier end
// in ":fx" and are routed to the free host automatically.
type DeeplTranslator struct {
	languagePair
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewDeeplTranslator(cfg Config) (*DeeplTranslator, error) {
	pair, err := newLanguagePair("deepl", language.DeeplTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	apiKey, err := credentialFromEnv("deepl", cfg.APIKey, DeeplAPIKeyEnvVar, "api key")
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "deepl", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = deeplProBaseURL
		if strings.HasSuffix(apiKey, ":fx") {
			baseURL = deeplFreeBaseURL
		}
	}

	return &DeeplTranslator{
		languagePair: pair,
		apiKey:       apiKey,
		baseURL:      baseURL,
		client:       client,
	}, nil
}

func (t *DeeplTranslator) Translate(ctx context.Context, text string) (string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("text", trimmed)
	form.Set("target_lang", t.target)
	if t.source != language.Auto {
		form.Set("source_lang", t.source)
	}

	endpoint := t.baseURL + "/v2/translate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &NetworkError{Vendor: t.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+t.apiKey)

	body, err := send(t.Name(), t.client, req)
	if err != nil {
		return "", err
	}

	translated := strings.TrimSpace(gjson.GetBytes(body, "translations.0.text").String())
	if translated == "" {
		return "", &ParseError{Vendor: t.Name(), Detail: "missing translations[0].text"}
	}
	return translated, nil
}

func (t *DeeplTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
