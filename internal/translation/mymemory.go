package translation

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"horse.fit/polyglot/internal/language"
)

const mymemoryBaseURL = "https://api.mymemory.translated.net"

// MyMemoryTranslator calls the free MyMemory API. An email address raises
// the daily quota; with ReturnAll every match is returned in API order.
type MyMemoryTranslator struct {
	languagePair
	email     string
	returnAll bool
	baseURL   string
	client    *http.Client
}

func NewMyMemoryTranslator(cfg Config) (*MyMemoryTranslator, error) {
	pair, err := newLanguagePair("mymemory", language.MyMemoryTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "mymemory", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = mymemoryBaseURL
	}

	return &MyMemoryTranslator{
		languagePair: pair,
		email:        strings.TrimSpace(cfg.APIKey),
		returnAll:    cfg.ReturnAll,
		baseURL:      baseURL,
		client:       client,
	}, nil
}

func (t *MyMemoryTranslator) Translate(ctx context.Context, text string) (string, error) {
	matches, err := t.fetch(ctx, text)
	if err != nil {
		return "", err
	}
	return matches[0], nil
}

// TranslateAll returns every match the API exposes, best first.
func (t *MyMemoryTranslator) TranslateAll(ctx context.Context, text string) ([]string, error) {
	return t.fetch(ctx, text)
}

func (t *MyMemoryTranslator) fetch(ctx context.Context, text string) ([]string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", trimmed)
	query.Set("langpair", t.source+"|"+t.target)
	if t.email != "" {
		query.Set("de", t.email)
	}

	endpoint := t.baseURL + "/get?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &NetworkError{Vendor: t.Name(), Err: err}
	}

	body, err := send(t.Name(), t.client, req)
	if err != nil {
		return nil, err
	}

	best := strings.TrimSpace(gjson.GetBytes(body, "responseData.translatedText").String())
	if best == "" {
		return nil, &ParseError{Vendor: t.Name(), Detail: "missing responseData.translatedText"}
	}

	matches := []string{best}
	if t.returnAll {
		for _, match := range gjson.GetBytes(body, "matches.#.translation").Array() {
			candidate := strings.TrimSpace(match.String())
			if candidate != "" && candidate != best {
				matches = append(matches, candidate)
			}
		}
	}
	return matches, nil
}

func (t *MyMemoryTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
