package translation

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"horse.fit/polyglot/internal/language"
)

const defaultGoogleBaseURL = "https://translate.googleapis.com"

// GoogleTranslator calls the unofficial web translation endpoint. No
// credential is required; the endpoint returns a nested JSON array whose
// first element holds the translated segments.
type GoogleTranslator struct {
	languagePair
	baseURL string
	client  *http.Client
}

func NewGoogleTranslator(cfg Config) (*GoogleTranslator, error) {
	pair, err := newLanguagePair("google", language.GoogleTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "google", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultGoogleBaseURL
	}

	return &GoogleTranslator{
		languagePair: pair,
		baseURL:      baseURL,
		client:       client,
	}, nil
}

func (t *GoogleTranslator) Translate(ctx context.Context, text string) (string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", t.source)
	query.Set("tl", t.target)
	query.Set("dt", "t")
	query.Set("q", trimmed)

	endpoint := t.baseURL + "/translate_a/single?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &NetworkError{Vendor: t.Name(), Err: err}
	}

	body, err := send(t.Name(), t.client, req)
	if err != nil {
		return "", err
	}

	if !gjson.ValidBytes(body) {
		return "", &ParseError{Vendor: t.Name(), Detail: "body is not valid JSON"}
	}

	segments := gjson.ParseBytes(body).Get("0").Array()
	if len(segments) == 0 {
		return "", &ParseError{Vendor: t.Name(), Detail: "missing translation segments"}
	}

	var out strings.Builder
	for _, segment := range segments {
		out.WriteString(segment.Get("0").String())
	}

	translated := strings.TrimSpace(out.String())
	if translated == "" {
		return "", &ParseError{Vendor: t.Name(), Detail: "empty translation"}
	}
	return translated, nil
}

func (t *GoogleTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
