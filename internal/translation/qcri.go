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
	// QCRIAPIKeyEnvVar supplies the key when not passed explicitly.
	QCRIAPIKeyEnvVar = "QCRI_API_KEY"

	qcriBaseURL = "https://mt.qcri.org/api/v1"
)

// QCRITranslator calls the QCRI Shaheen MT API, a small fixed pair set.
type QCRITranslator struct {
	languagePair
	apiKey  string
	domain  string
	baseURL string
	client  *http.Client
}

func NewQCRITranslator(cfg Config) (*QCRITranslator, error) {
	pair, err := newLanguagePair("qcri", language.QCRITable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	apiKey, err := credentialFromEnv("qcri", cfg.APIKey, QCRIAPIKeyEnvVar, "api key")
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "qcri", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = qcriBaseURL
	}

	domain := strings.TrimSpace(cfg.Model)
	if domain == "" {
		domain = "general"
	}

	return &QCRITranslator{
		languagePair: pair,
		apiKey:       apiKey,
		domain:       domain,
		baseURL:      baseURL,
		client:       client,
	}, nil
}

func (t *QCRITranslator) Translate(ctx context.Context, text string) (string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("key", t.apiKey)
	query.Set("langpair", t.source+"-"+t.target)
	query.Set("domain", t.domain)
	query.Set("text", trimmed)

	endpoint := t.baseURL + "/translate?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &NetworkError{Vendor: t.Name(), Err: err}
	}

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

func (t *QCRITranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
