package translation

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"horse.fit/polyglot/internal/language"
)

const (
	// OpenAIAPIKeyEnvVar, OpenAIBaseURLEnvVar and OpenAIModelEnvVar
	// configure the ChatGPT-compatible endpoint.
	OpenAIAPIKeyEnvVar  = "OPENAI_API_KEY"
	OpenAIBaseURLEnvVar = "OPENAI_BASE_URL"
	OpenAIModelEnvVar   = "OPENAI_MODEL"

	defaultOpenAIModel = "gpt-4o-mini"
)

// ChatGPTTranslator prompts a ChatGPT-compatible chat completions endpoint.
// A custom base URL points it at any OpenAI-compatible server.
type ChatGPTTranslator struct {
	languagePair
	model  string
	client *openai.Client
}

func NewChatGPTTranslator(cfg Config) (*ChatGPTTranslator, error) {
	pair, err := newLanguagePair("chatgpt", language.ChatGPTTable, cfg.Source, cfg.Target)
	if err != nil {
		return nil, err
	}

	apiKey, err := credentialFromEnv("chatgpt", cfg.APIKey, OpenAIAPIKeyEnvVar, "api key")
	if err != nil {
		return nil, err
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = strings.TrimSpace(os.Getenv(OpenAIModelEnvVar))
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = strings.TrimRight(strings.TrimSpace(os.Getenv(OpenAIBaseURLEnvVar)), "/")
	}

	httpClient, err := newHTTPClient(cfg.Timeout, cfg.Proxies)
	if err != nil {
		return nil, &ConfigError{Vendor: "chatgpt", Detail: "invalid proxy configuration", Err: err}
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.HTTPClient = httpClient
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &ChatGPTTranslator{
		languagePair: pair,
		model:        model,
		client:       openai.NewClientWithConfig(clientConfig),
	}, nil
}

// Model returns the configured model identifier.
func (t *ChatGPTTranslator) Model() string {
	return t.model
}

func (t *ChatGPTTranslator) Translate(ctx context.Context, text string) (string, error) {
	trimmed, err := requireText(t.Name(), text)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"Translate the text below into %s. Output only the translation, without additional explanation.\nText: %q",
		t.target,
		trimmed,
	)

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", &NetworkError{Vendor: t.Name(), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ParseError{Vendor: t.Name(), Detail: "response missing choices"}
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", &ParseError{Vendor: t.Name(), Detail: "empty completion"}
	}
	return translated, nil
}

func (t *ChatGPTTranslator) TranslateBatch(ctx context.Context, texts []string) ([]string, error) {
	return translateSequential(ctx, texts, t.Translate)
}
