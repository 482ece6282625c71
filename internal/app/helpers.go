package app

import (
	"flag"
	"strings"
	"time"

	"horse.fit/polyglot/internal/cli"
	"horse.fit/polyglot/internal/translation"
)

// providerFlags are the construction flags shared by the translating
// subcommands. Credentials left empty resolve through the vendor's
// environment variable.
type providerFlags struct {
	envLoader *cli.EnvLoader

	provider *string
	source   *string
	target   *string
	apiKey   *string
	model    *string
	baseURL  *string
	region   *string
	timeout  *time.Duration
}

func addProviderFlags(fs *flag.FlagSet) *providerFlags {
	return &providerFlags{
		envLoader: cli.AddEnvFlag(fs, ".env", "Path to the .env file"),
		provider:  fs.String("provider", "", "Translation backend name (default: TRANSLATION_PROVIDER)"),
		source:    fs.String("source", "auto", "Source language name or code"),
		target:    fs.String("target", "", "Target language name or code"),
		apiKey:    fs.String("api-key", "", "Vendor API key (default: vendor environment variable)"),
		model:     fs.String("model", "", "Model or domain for model-based backends"),
		baseURL:   fs.String("base-url", "", "Override the vendor endpoint"),
		region:    fs.String("region", "", "Vendor region where applicable"),
		timeout:   fs.Duration("timeout", 30*time.Second, "Per-request timeout"),
	}
}

// loadEnv best-effort loads the .env file; a missing file is not fatal for
// the CLI because credentials may already be exported.
func (f *providerFlags) loadEnv() {
	if f == nil || f.envLoader == nil {
		return
	}
	_, _ = f.envLoader.Load()
}

func (f *providerFlags) build() (translation.Translator, error) {
	return translation.New(strings.TrimSpace(*f.provider), translation.Config{
		Source:  *f.source,
		Target:  *f.target,
		APIKey:  *f.apiKey,
		Model:   *f.model,
		BaseURL: *f.baseURL,
		Region:  *f.region,
		Timeout: *f.timeout,
	})
}
