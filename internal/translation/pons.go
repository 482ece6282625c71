package translation

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"horse.fit/polyglot/internal/language"
)

const ponsBaseURL = "https://en.pons.com/translate"

// PonsTranslator scrapes the PONS dictionary, another word-lookup backend.
type PonsTranslator struct {
	languagePair
	returnAll bool
	baseURL   string
	client    *http.Client
}

func NewPonsTranslator(cfg Config) (*PonsTranslator, error) {
	pair, err := newLanguagePair("pons", language.PonsTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "pons", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = ponsBaseURL
	}

	return &PonsTranslator{
		languagePair: pair,
		returnAll:    cfg.ReturnAll,
		baseURL:      baseURL,
		client:       client,
	}, nil
}

func (t *PonsTranslator) Translate(ctx context.Context, text string) (string, error) {
	candidates, err := t.lookup(ctx, text)
	if err != nil {
		return "", err
	}
	return candidates[0], nil
}

// TranslateAll returns every candidate in page order.
func (t *PonsTranslator) TranslateAll(ctx context.Context, text string) ([]string, error) {
	return t.lookup(ctx, text)
}

func (t *PonsTranslator) lookup(ctx context.Context, text string) ([]string, error) {
	word, err := requireText(t.Name(), text)
	if err != nil {
		return nil, err
	}
	if strings.ContainsAny(word, "\n\r") {
		return nil, &NotSupportedError{Vendor: t.Name(), Operation: "multi-line translation"}
	}

	endpoint := t.baseURL + "/" + t.source + "-" + t.target + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Vendor: t.Name(), Err: err}
	}

	body, err := send(t.Name(), t.client, req)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Vendor: t.Name(), Detail: "body is not parseable HTML"}
	}

	var candidates []string
	doc.Find("div.target").Each(func(_ int, selection *goquery.Selection) {
		candidate := strings.TrimSpace(selection.Text())
		if candidate != "" {
			candidates = append(candidates, candidate)
		}
	})
	if len(candidates) == 0 {
		return nil, &ParseError{Vendor: t.Name(), Detail: "no dictionary entries found for " + word}
	}
	if !t.returnAll {
		candidates = candidates[:1]
	}
	return candidates, nil
}

func (t *PonsTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
