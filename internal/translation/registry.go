package translation

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"horse.fit/polyglot/internal/language"
)

const (
	// ProviderEnvVar selects the default translation backend.
	ProviderEnvVar = "TRANSLATION_PROVIDER"
	// DefaultProviderName is used when TRANSLATION_PROVIDER is unset.
	DefaultProviderName = "google"
)

// Config is the neutral construction spec the dispatch table hands to a
// vendor factory. Each factory picks the fields its vendor recognizes and
// validates them; credentials left empty fall back to the vendor's
// documented environment variable.
type Config struct {
	Source string
	Target string
	// Targets configures multi-target vendors; ignored elsewhere.
	Targets []string

	APIKey       string
	AppID        string
	AppKey       string
	SecretID     string
	SecretKey    string
	ClientID     string
	ClientSecret string

	BaseURL string
	Model   string
	Region  string

	// ReturnAll asks dictionary-style vendors for every candidate.
	ReturnAll bool

	Proxies map[string]string
	Timeout time.Duration
}

type factory func(cfg Config) (Translator, error)

var factories = map[string]factory{
	"google":    func(cfg Config) (Translator, error) { return NewGoogleTranslator(cfg) },
	"microsoft": func(cfg Config) (Translator, error) { return NewMicrosoftTranslator(cfg) },
	"deepl":     func(cfg Config) (Translator, error) { return NewDeeplTranslator(cfg) },
	"yandex":    func(cfg Config) (Translator, error) { return NewYandexTranslator(cfg) },
	"mymemory":  func(cfg Config) (Translator, error) { return NewMyMemoryTranslator(cfg) },
	"libre":     func(cfg Config) (Translator, error) { return NewLibreTranslator(cfg) },
	"papago":    func(cfg Config) (Translator, error) { return NewPapagoTranslator(cfg) },
	"baidu":     func(cfg Config) (Translator, error) { return NewBaiduTranslator(cfg) },
	"tencent":   func(cfg Config) (Translator, error) { return NewTencentTranslator(cfg) },
	"qcri":      func(cfg Config) (Translator, error) { return NewQCRITranslator(cfg) },
	"chatgpt":   func(cfg Config) (Translator, error) { return NewChatGPTTranslator(cfg) },
	"linguee":   func(cfg Config) (Translator, error) { return NewLingueeTranslator(cfg) },
	"pons":      func(cfg Config) (Translator, error) { return NewPonsTranslator(cfg) },
}

// New constructs the named backend. Empty names use the default provider.
func New(name string, cfg Config) (Translator, error) {
	resolved := normalizeProviderName(name)
	if resolved == "" {
		resolved = DefaultProvider()
	}

	build, ok := factories[resolved]
	if !ok {
		return nil, fmt.Errorf(
			"translation provider %q is not registered (available: %s)",
			resolved,
			strings.Join(Names(), ", "),
		)
	}
	return build(cfg)
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var languageTables = map[string]language.Table{
	"google":    language.GoogleTable,
	"microsoft": language.MicrosoftTable,
	"deepl":     language.DeeplTable,
	"yandex":    language.YandexTable,
	"mymemory":  language.MyMemoryTable,
	"libre":     language.LibreTable,
	"papago":    language.PapagoTable,
	"baidu":     language.BaiduTable,
	"tencent":   language.TencentTable,
	"qcri":      language.QCRITable,
	"chatgpt":   language.ChatGPTTable,
	"linguee":   language.LingueeTable,
	"pons":      language.PonsTable,
}

// Languages returns the name-to-code mapping of a backend without
// constructing it, so no credentials are needed.
func Languages(name string) (map[string]string, error) {
	resolved := normalizeProviderName(name)
	table, ok := languageTables[resolved]
	if !ok {
		return nil, fmt.Errorf(
			"translation provider %q is not registered (available: %s)",
			resolved,
			strings.Join(Names(), ", "),
		)
	}
	return table.Mapping(), nil
}

// DefaultProvider resolves the default backend from the environment.
func DefaultProvider() string {
	name := normalizeProviderName(os.Getenv(ProviderEnvVar))
	if name == "" {
		return DefaultProviderName
	}
	if _, ok := factories[name]; !ok {
		return DefaultProviderName
	}
	return name
}

func normalizeProviderName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// credentialFromEnv applies the credential resolution order: explicit
// option, else named environment variable, else ConfigError.
func credentialFromEnv(vendor, explicit, envVar, what string) (string, error) {
	if value := strings.TrimSpace(explicit); value != "" {
		return value, nil
	}
	if value := strings.TrimSpace(os.Getenv(envVar)); value != "" {
		return value, nil
	}
	return "", configErrorf(vendor, "%s is required (set it explicitly or via %s)", what, envVar)
}
