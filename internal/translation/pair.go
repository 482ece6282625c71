package translation

import (
	"strings"

	"horse.fit/polyglot/internal/language"
)

// languagePair carries the resolved source/target codes every adapter embeds.
// Mutation is validated against the vendor table and is last-write-wins;
// callers must serialize mutation against in-flight calls.
type languagePair struct {
	vendor string
	table  language.Table
	source string
	target string
}

func newLanguagePair(vendor string, table language.Table, source, target string) (languagePair, error) {
	pair := languagePair{vendor: vendor, table: table}
	if err := pair.setSource(source); err != nil {
		return languagePair{}, err
	}
	if err := pair.setTarget(target); err != nil {
		return languagePair{}, err
	}
	return pair, nil
}

func (p *languagePair) setSource(lang string) error {
	resolved, err := p.table.Resolve(lang)
	if err != nil {
		return &ConfigError{Vendor: p.vendor, Detail: "invalid source language", Err: err}
	}
	if p.target != "" && resolved != language.Auto && sameCode(resolved, p.target) {
		return configErrorf(p.vendor, "source language %q equals target language", resolved)
	}
	p.source = resolved
	return nil
}

func (p *languagePair) setTarget(lang string) error {
	resolved, err := p.table.Resolve(lang)
	if err != nil {
		return &ConfigError{Vendor: p.vendor, Detail: "invalid target language", Err: err}
	}
	if strings.EqualFold(resolved, language.Auto) {
		return configErrorf(p.vendor, "target language cannot be %q", language.Auto)
	}
	if p.source != "" && p.source != language.Auto && sameCode(p.source, resolved) {
		return configErrorf(p.vendor, "target language %q equals source language", resolved)
	}
	p.target = resolved
	return nil
}

func (p *languagePair) Source() string {
	return p.source
}

func (p *languagePair) Target() string {
	return p.target
}

func (p *languagePair) SetSource(lang string) error {
	return p.setSource(lang)
}

func (p *languagePair) SetTarget(lang string) error {
	return p.setTarget(lang)
}

func (p *languagePair) Name() string {
	return p.vendor
}

func (p *languagePair) SupportedLanguages() []string {
	return p.table.Codes()
}

func (p *languagePair) SupportedLanguagesMap() map[string]string {
	return p.table.Mapping()
}

func sameCode(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
