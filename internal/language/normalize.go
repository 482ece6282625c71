package language

import "strings"

// NormalizeTag lowercases a BCP-47-ish tag and canonicalizes its separators:
// "EN_us" becomes "en-us", "zh-Hans" becomes "zh-hans". The empty string
// signals a tag that cannot be normalized (blank input, non-letter subtags).
func NormalizeTag(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	if lowered == "" {
		return ""
	}

	var subtags []string
	for _, subtag := range strings.FieldsFunc(lowered, func(r rune) bool {
		return r == '-' || r == '_'
	}) {
		if !alphabetic(subtag) {
			return ""
		}
		subtags = append(subtags, subtag)
	}
	return strings.Join(subtags, "-")
}

// NormalizeCode strips region and script subtags, keeping the primary
// language subtag: "en-US" becomes "en".
func NormalizeCode(raw string) string {
	tag, _, _ := strings.Cut(NormalizeTag(raw), "-")
	return tag
}

func alphabetic(subtag string) bool {
	for _, r := range subtag {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
