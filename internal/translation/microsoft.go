package translation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"horse.fit/polyglot/internal/language"
)

const (
	// MicrosoftAPIKeyEnvVar supplies the subscription key.
	MicrosoftAPIKeyEnvVar = "MICROSOFT_API_KEY"
	// MicrosoftRegionEnvVar supplies the resource region when required.
	MicrosoftRegionEnvVar = "MICROSOFT_REGION"

	microsoftBaseURL = "https://api.cognitive.microsofttranslator.com"
)

// MicrosoftTranslator calls the Cognitive Services Translator v3 API. It is
// the one multi-target backend: when Config.Targets lists several codes,
// Translate returns the first target's text and TranslateAll returns a
// target→text map from the same single request.
type MicrosoftTranslator struct {
	languagePair
	targets []string
	apiKey  string
	region  string
	baseURL string
	client  *http.Client
}

func NewMicrosoftTranslator(cfg Config) (*MicrosoftTranslator, error) {
	requestedTargets := cfg.Targets
	if len(requestedTargets) == 0 {
		requestedTargets = []string{cfg.Target}
	}

	pair, err := newLanguagePair("microsoft", language.MicrosoftTable, cfg.Source, requestedTargets[0])
	if err != nil {
		return nil, err
	}

	targets := make([]string, 0, len(requestedTargets))
	for _, target := range requestedTargets {
		resolved, err := language.MicrosoftTable.Resolve(target)
		if err != nil {
			return nil, &ConfigError{Vendor: "microsoft", Detail: "invalid target language", Err: err}
		}
		targets = append(targets, resolved)
	}

	apiKey, err := credentialFromEnv("microsoft", cfg.APIKey, MicrosoftAPIKeyEnvVar, "api key")
	if err != nil {
		return nil, err
	}

	client, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "microsoft", Detail: "invalid proxy configuration", Err: err}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = microsoftBaseURL
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = strings.TrimSpace(os.Getenv(MicrosoftRegionEnvVar))
	}

	return &MicrosoftTranslator{
		languagePair: pair,
		targets:      targets,
		apiKey:       apiKey,
		region:       region,
		baseURL:      baseURL,
		client:       client,
	}, nil
}

func (t *MicrosoftTranslator) Translate(ctx context.Context, text string) (string, error) {
	byTarget, err := t.TranslateAll(ctx, text)
	if err != nil {
		return "", err
	}
	translated, ok := byTarget[t.targets[0]]
	if !ok || translated == "" {
		return "", &ParseError{Vendor: t.Name(), Detail: "missing translation for target " + t.targets[0]}
	}
	return translated, nil
}

// TranslateAll sends one request covering every configured target.
func (t *MicrosoftTranslator) TranslateAll(ctx context.Context, text string) (map[string]string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("api-version", "3.0")
	if t.source != language.Auto {
		query.Set("from", t.source)
	}
	for _, target := range t.targets {
		query.Add("to", target)
	}

	payload, err := json.Marshal([]map[string]string{{"Text": trimmed}})
	if err != nil {
		return nil, &ConfigError{Vendor: t.Name(), Detail: "encode request body", Err: err}
	}

	endpoint := t.baseURL + "/translate?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &NetworkError{Vendor: t.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", t.apiKey)
	if t.region != "" {
		req.Header.Set("Ocp-Apim-Subscription-Region", t.region)
	}

	body, err := send(t.Name(), t.client, req)
	if err != nil {
		return nil, err
	}

	translations := gjson.GetBytes(body, "0.translations").Array()
	if len(translations) == 0 {
		return nil, &ParseError{Vendor: t.Name(), Detail: "missing translations array"}
	}

	byTarget := make(map[string]string, len(translations))
	for _, entry := range translations {
		target := entry.Get("to").String()
		translated := strings.TrimSpace(entry.Get("text").String())
		if target == "" || translated == "" {
			return nil, &ParseError{Vendor: t.Name(), Detail: "translation entry missing text or target"}
		}
		byTarget[target] = translated
	}
	return byTarget, nil
}

func (t *MicrosoftTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}

// SetTarget revalidates and replaces the primary target so subsequent
// requests carry the new code. Extra targets from a multi-target
// configuration are kept as-is.
func (t *MicrosoftTranslator) SetTarget(lang string) error {
	if err := t.languagePair.SetTarget(lang); err != nil {
		return err
	}
	t.targets[0] = t.languagePair.Target()
	return nil
}

// Targets returns the configured target codes in request order.
func (t *MicrosoftTranslator) Targets() []string {
	out := make([]string, len(t.targets))
	copy(out, t.targets)
	return out
}
