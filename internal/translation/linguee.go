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

const lingueeBaseURL = "https://www.linguee.com"

// LingueeTranslator scrapes the Linguee dictionary. It is a word-lookup
// backend: the wire format uses display names ("english-german") and the
// page lists candidate translations in relevance order.
type LingueeTranslator struct {
	languagePair
	returnAll bool
	baseURL   string
	client    *http.Client
}

func NewLingueeTranslator(cfg Config) (*LingueeTranslator, error) {
	pair, err := newLanguagePair("linguee", language.LingueeTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "linguee", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = lingueeBaseURL
	}

	return &LingueeTranslator{
		languagePair: pair,
		returnAll:    cfg.ReturnAll,
		baseURL:      baseURL,
		client:       client,
	}, nil
}

func (t *LingueeTranslator) Translate(ctx context.Context, text string) (string, error) {
	candidates, err := t.lookup(ctx, text, false)
	if err != nil {
		return "", err
	}
	return candidates[0], nil
}

// TranslateAll returns every candidate the page exposes, in page order.
func (t *LingueeTranslator) TranslateAll(ctx context.Context, text string) ([]string, error) {
	return t.lookup(ctx, text, true)
}

func (t *LingueeTranslator) lookup(ctx context.Context, text string, all bool) ([]string, error) {
	word, err := requireText(t.Name(), text)
	if err != nil {
		return nil, err
	}
	if strings.ContainsAny(word, "\n\r") {
		return nil, &NotSupportedError{Vendor: t.Name(), Operation: "multi-line translation"}
	}

	endpoint := t.baseURL + "/" + t.source + "-" + t.target + "/translation/" +
		url.PathEscape(word) + ".html"
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

	selector := "a.dictLink.featured"
	if all || t.returnAll {
		selector = "a.dictLink"
	}

	var candidates []string
	doc.Find(selector).Each(func(_ int, selection *goquery.Selection) {
		candidate := strings.TrimSpace(selection.Text())
		if candidate != "" {
			candidates = append(candidates, candidate)
		}
	})
	if len(candidates) == 0 {
		return nil, &ParseError{Vendor: t.Name(), Detail: "no dictionary entries found for " + word}
	}
	return candidates, nil
}

func (t *LingueeTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
