package langdetect

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"horse.fit/polyglot/internal/translation"
)

const (
	// APIKeyEnvVar supplies the detection API key.
	APIKeyEnvVar = "DETECTLANGUAGE_API_KEY"

	defaultBaseURL = "https://ws.detectlanguage.com/0.2"
	defaultTimeout = 15 * time.Second
)

// Client calls the detectlanguage.com API: one HTTP round trip per Detect
// call, one round trip total for a batch.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Options configures the detection client.
type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func NewClient(opts Options) (*Client, error) {
	apiKey, err := resolveAPIKey(opts.APIKey)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Detect returns the ISO 639-1 code of the most likely language.
func (c *Client) Detect(ctx context.Context, text string) (string, error) {
	codes, err := c.DetectBatch(ctx, []string{text})
	if err != nil {
		return "", err
	}
	return codes[0], nil
}

// DetectBatch detects all texts in one request. The result is
// order-preserving: one code per input.
func (c *Client) DetectBatch(ctx context.Context, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, &translation.ConfigError{Vendor: "detectlanguage", Detail: "at least one text is required"}
	}

	form := url.Values{}
	for _, text := range texts {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil, &translation.ConfigError{Vendor: "detectlanguage", Detail: "text is required"}
		}
		form.Add("q[]", trimmed)
	}

	endpoint := c.baseURL + "/detect"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &translation.NetworkError{Vendor: "detectlanguage", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &translation.NetworkError{Vendor: "detectlanguage", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &translation.NetworkError{Vendor: "detectlanguage", Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &translation.NetworkError{
			Vendor: "detectlanguage",
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	detections := gjson.GetBytes(body, "data.detections").Array()
	if len(detections) != len(texts) {
		return nil, &translation.ParseError{
			Vendor: "detectlanguage",
			Detail: "detection count does not match input count",
		}
	}

	codes := make([]string, 0, len(texts))
	for _, entry := range detections {
		best := entry
		if entry.IsArray() {
			candidates := entry.Array()
			if len(candidates) == 0 {
				return nil, &translation.ParseError{Vendor: "detectlanguage", Detail: "empty detection entry"}
			}
			best = candidates[0]
		}
		code := strings.TrimSpace(best.Get("language").String())
		if code == "" {
			return nil, &translation.ParseError{Vendor: "detectlanguage", Detail: "detection entry missing language"}
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func resolveAPIKey(explicit string) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(os.Getenv(APIKeyEnvVar)); key != "" {
		return key, nil
	}
	return "", &translation.ConfigError{
		Vendor: "detectlanguage",
		Detail: "api key is required (set it explicitly or via " + APIKeyEnvVar + ")",
	}
}
