package translation

import "context"

// Translator forwards text to one translation backend.
//
// Implementations hold a resolved source/target pair and perform exactly one
// outbound HTTP round trip per Translate call. They are not internally
// synchronized: callers must not mutate the pair while a call is in flight.
type Translator interface {
	// Translate sends one request for the given text. It never returns an
	// empty string without an error.
	Translate(ctx context.Context, text string) (string, error)
	// TranslateBatch translates texts strictly in order, one request at a
	// time. The first failing element fails the whole batch.
	TranslateBatch(ctx context.Context, texts []string) ([]string, error)
	// Name returns the backend identifier (for example "google").
	Name() string
	// Source and Target return the resolved language codes.
	Source() string
	Target() string
	// SetSource and SetTarget reconfigure the pair for subsequent calls.
	// Last write wins under sequential access.
	SetSource(lang string) error
	SetTarget(lang string) error
	// SupportedLanguages returns the vendor codes this backend accepts.
	SupportedLanguages() []string
	// SupportedLanguagesMap returns the display-name to code mapping.
	SupportedLanguagesMap() map[string]string
}
