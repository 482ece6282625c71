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
	// PapagoClientIDEnvVar and PapagoClientSecretEnvVar supply the Naver
	// application credentials.
	PapagoClientIDEnvVar     = "PAPAGO_CLIENT_ID"
	PapagoClientSecretEnvVar = "PAPAGO_CLIENT_SECRET"

	papagoBaseURL = "https://openapi.naver.com/v1/papago"
)

// PapagoTranslator calls the Naver Papago NMT API. Credentials travel in
// the X-Naver-Client-Id/Secret headers.
type PapagoTranslator struct {
	languagePair
	clientID     string
	clientSecret string
	baseURL      string
	client       *http.Client
}

func NewPapagoTranslator(cfg Config) (*PapagoTranslator, error) {
	pair, err := newLanguagePair("papago", language.PapagoTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	clientID, err := credentialFromEnv("papago", cfg.ClientID, PapagoClientIDEnvVar, "client id")
	if err != nil {
		return nil, err
	}
	clientSecret, err := credentialFromEnv("papago", cfg.ClientSecret, PapagoClientSecretEnvVar, "client secret")
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "papago", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = papagoBaseURL
	}

	return &PapagoTranslator{
		languagePair: pair,
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		client:       client,
	}, nil
}

func (t *PapagoTranslator) Translate(ctx context.Context, text string) (string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("source", t.source)
	form.Set("target", t.target)
	form.Set("text", trimmed)

	endpoint := t.baseURL + "/n2mt"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &NetworkError{Vendor: t.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Naver-Client-Id", t.clientID)
	req.Header.Set("X-Naver-Client-Secret", t.clientSecret)

	body, err := send(t.Name(), t.client, req)
	if err != nil {
		return "", err
	}

	translated := strings.TrimSpace(gjson.GetBytes(body, "message.result.translatedText").String())
	if translated == "" {
		return "", &ParseError{Vendor: t.Name(), Detail: "missing message.result.translatedText"}
	}
	return translated, nil
}

func (t *PapagoTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
