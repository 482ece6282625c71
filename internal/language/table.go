package language

import (
	"fmt"
	"sort"
	"strings"
)

// Auto is the reserved source-language sentinel that delegates detection to
// the vendor. It never appears in a Table.
const Auto = "auto"

// Table maps lowercase display names to the codes one vendor understands.
// Tables are immutable after construction and safe to share across adapters.
type Table struct {
	vendor string
	byName map[string]string
	byCode map[string]string
	autoOK bool
}

// NewTable builds a vendor table from a name→code mapping.
func NewTable(vendor string, entries map[string]string, supportsAuto bool) Table {
	byName := make(map[string]string, len(entries))
	byCode := make(map[string]string, len(entries))
	for name, code := range entries {
		byName[strings.ToLower(strings.TrimSpace(name))] = code
		byCode[strings.ToLower(code)] = code
	}
	return Table{
		vendor: vendor,
		byName: byName,
		byCode: byCode,
		autoOK: supportsAuto,
	}
}

func (t Table) Vendor() string {
	return t.vendor
}

// SupportsAuto reports whether the vendor accepts automatic source detection.
func (t Table) SupportsAuto() bool {
	return t.autoOK
}

// Resolve maps a display name or a code to the vendor's canonical code.
// Matching is case-insensitive; "auto" bypasses the table entirely.
func (t Table) Resolve(nameOrCode string) (string, error) {
	raw := strings.TrimSpace(nameOrCode)
	if raw == "" {
		return "", fmt.Errorf("%s: language is required", t.vendor)
	}

	lowered := strings.ToLower(raw)
	if lowered == Auto {
		if !t.autoOK {
			return "", fmt.Errorf("%s: automatic source detection is not supported", t.vendor)
		}
		return Auto, nil
	}

	if code, ok := t.byName[lowered]; ok {
		return code, nil
	}
	if code, ok := t.byCode[lowered]; ok {
		return code, nil
	}

	// Region-qualified tags fall back to the closest code the vendor lists:
	// "en_US" resolves through "en-us" and then the bare "en" subtag.
	if tag := NormalizeTag(raw); tag != "" {
		if code, ok := t.byCode[tag]; ok {
			return code, nil
		}
		if code, ok := t.byCode[NormalizeCode(tag)]; ok {
			return code, nil
		}
	}

	return "", fmt.Errorf(
		"%s: unsupported language %q (supported: %s)",
		t.vendor,
		raw,
		strings.Join(t.Codes(), ", "),
	)
}

// Contains reports whether the table recognizes a display name or code.
func (t Table) Contains(nameOrCode string) bool {
	_, err := t.Resolve(nameOrCode)
	return err == nil
}

// Codes returns the vendor codes in sorted order.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t.byCode))
	for _, code := range t.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Names returns the display names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mapping returns a fresh name→code copy for callers that need both sides.
func (t Table) Mapping() map[string]string {
	out := make(map[string]string, len(t.byName))
	for name, code := range t.byName {
		out[name] = code
	}
	return out
}
