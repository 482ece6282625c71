package language

// Vendor tables are bundled statically because codes differ across vendors
// for the same display name (for example chinese → zh-CN vs zh vs 16).
// Each table is built once at init and shared read-only.

var isoEntries = map[string]string{
	"afrikaans":  "af",
	"arabic":     "ar",
	"bulgarian":  "bg",
	"czech":      "cs",
	"danish":     "da",
	"german":     "de",
	"greek":      "el",
	"english":    "en",
	"spanish":    "es",
	"estonian":   "et",
	"persian":    "fa",
	"finnish":    "fi",
	"french":     "fr",
	"hebrew":     "he",
	"hindi":      "hi",
	"hungarian":  "hu",
	"indonesian": "id",
	"italian":    "it",
	"japanese":   "ja",
	"korean":     "ko",
	"lithuanian": "lt",
	"latvian":    "lv",
	"dutch":      "nl",
	"norwegian":  "no",
	"polish":     "pl",
	"portuguese": "pt",
	"romanian":   "ro",
	"russian":    "ru",
	"slovak":     "sk",
	"slovenian":  "sl",
	"swedish":    "sv",
	"thai":       "th",
	"turkish":    "tr",
	"ukrainian":  "uk",
	"vietnamese": "vi",
	"chinese":    "zh",
}

func withEntries(base map[string]string, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overrides))
	for name, code := range base {
		merged[name] = code
	}
	for name, code := range overrides {
		merged[name] = code
	}
	return merged
}

// GoogleTable covers the unofficial web endpoint, which uses ISO codes with
// region-qualified Chinese variants.
var GoogleTable = NewTable("google", withEntries(isoEntries, map[string]string{
	"chinese (simplified)":  "zh-CN",
	"chinese (traditional)": "zh-TW",
	"chinese":               "zh-CN",
}), true)

// MicrosoftTable mirrors the Cognitive Services v3 code set.
var MicrosoftTable = NewTable("microsoft", withEntries(isoEntries, map[string]string{
	"chinese (simplified)":  "zh-Hans",
	"chinese (traditional)": "zh-Hant",
	"chinese":               "zh-Hans",
}), true)

// DeeplTable lists the DeepL v2 API targets (uppercase codes on the wire).
var DeeplTable = NewTable("deepl", map[string]string{
	"bulgarian":  "BG",
	"czech":      "CS",
	"danish":     "DA",
	"german":     "DE",
	"greek":      "EL",
	"english":    "EN",
	"spanish":    "ES",
	"estonian":   "ET",
	"finnish":    "FI",
	"french":     "FR",
	"hungarian":  "HU",
	"indonesian": "ID",
	"italian":    "IT",
	"japanese":   "JA",
	"korean":     "KO",
	"lithuanian": "LT",
	"latvian":    "LV",
	"dutch":      "NL",
	"norwegian":  "NB",
	"polish":     "PL",
	"portuguese": "PT",
	"romanian":   "RO",
	"russian":    "RU",
	"slovak":     "SK",
	"slovenian":  "SL",
	"swedish":    "SV",
	"turkish":    "TR",
	"ukrainian":  "UK",
	"chinese":    "ZH",
}, true)

// YandexTable uses plain ISO codes.
var YandexTable = NewTable("yandex", isoEntries, false)

// MyMemoryTable uses ISO codes; the service rejects bare "auto".
var MyMemoryTable = NewTable("mymemory", isoEntries, false)

// LibreTable matches the default LibreTranslate model set.
var LibreTable = NewTable("libre", map[string]string{
	"arabic":     "ar",
	"czech":      "cs",
	"danish":     "da",
	"german":     "de",
	"greek":      "el",
	"english":    "en",
	"spanish":    "es",
	"persian":    "fa",
	"finnish":    "fi",
	"french":     "fr",
	"hebrew":     "he",
	"hindi":      "hi",
	"hungarian":  "hu",
	"indonesian": "id",
	"italian":    "it",
	"japanese":   "ja",
	"korean":     "ko",
	"dutch":      "nl",
	"polish":     "pl",
	"portuguese": "pt",
	"russian":    "ru",
	"slovak":     "sk",
	"swedish":    "sv",
	"thai":       "th",
	"turkish":    "tr",
	"ukrainian":  "uk",
	"vietnamese": "vi",
	"chinese":    "zh",
}, true)

// PapagoTable covers the Naver Papago NMT pairs.
var PapagoTable = NewTable("papago", map[string]string{
	"korean":                "ko",
	"english":               "en",
	"japanese":              "ja",
	"chinese":               "zh-CN",
	"chinese (simplified)":  "zh-CN",
	"chinese (traditional)": "zh-TW",
	"spanish":               "es",
	"french":                "fr",
	"german":                "de",
	"russian":               "ru",
	"portuguese":            "pt",
	"italian":               "it",
	"vietnamese":            "vi",
	"thai":                  "th",
	"indonesian":            "id",
}, false)

// BaiduTable uses Baidu's own code set, which diverges from ISO for several
// languages (jp, kor, fra, spa, vie, cht).
var BaiduTable = NewTable("baidu", map[string]string{
	"chinese":               "zh",
	"chinese (classical)":   "wyw",
	"chinese (traditional)": "cht",
	"english":               "en",
	"japanese":              "jp",
	"korean":                "kor",
	"french":                "fra",
	"spanish":               "spa",
	"thai":                  "th",
	"arabic":                "ara",
	"russian":               "ru",
	"portuguese":            "pt",
	"german":                "de",
	"italian":               "it",
	"greek":                 "el",
	"dutch":                 "nl",
	"polish":                "pl",
	"bulgarian":             "bul",
	"estonian":              "est",
	"danish":                "dan",
	"finnish":               "fin",
	"czech":                 "cs",
	"romanian":              "rom",
	"slovenian":             "slo",
	"swedish":               "swe",
	"hungarian":             "hu",
	"vietnamese":            "vie",
}, true)

// TencentTable matches the TMT TextTranslate code set.
var TencentTable = NewTable("tencent", map[string]string{
	"chinese":               "zh",
	"chinese (traditional)": "zh-TW",
	"english":               "en",
	"japanese":              "ja",
	"korean":                "ko",
	"french":                "fr",
	"spanish":               "es",
	"italian":               "it",
	"german":                "de",
	"turkish":               "tr",
	"russian":               "ru",
	"portuguese":            "pt",
	"vietnamese":            "vi",
	"indonesian":            "id",
	"thai":                  "th",
	"malay":                 "ms",
	"arabic":                "ar",
	"hindi":                 "hi",
}, true)

// QCRITable is the small Shaheen MT pair set.
var QCRITable = NewTable("qcri", map[string]string{
	"arabic":  "ar",
	"english": "en",
	"spanish": "es",
}, false)

// LingueeTable and PonsTable use display names on the wire, so the "code"
// is the lowercase name itself.
var LingueeTable = NewTable("linguee", selfNamed(
	"bulgarian", "czech", "danish", "german", "greek", "english", "spanish",
	"estonian", "finnish", "french", "hungarian", "italian", "japanese",
	"latvian", "lithuanian", "dutch", "polish", "portuguese", "romanian",
	"russian", "slovak", "slovenian", "swedish", "chinese",
), false)

var PonsTable = NewTable("pons", selfNamed(
	"arabic", "bulgarian", "chinese", "czech", "danish", "dutch", "english",
	"french", "german", "greek", "hungarian", "italian", "japanese", "latin",
	"norwegian", "polish", "portuguese", "russian", "slovenian", "spanish",
	"swedish", "turkish",
), false)

// ChatGPTTable accepts display names; the prompt carries the target name.
var ChatGPTTable = NewTable("chatgpt", selfNamedFromISO(), true)

func selfNamed(names ...string) map[string]string {
	entries := make(map[string]string, len(names))
	for _, name := range names {
		entries[name] = name
	}
	return entries
}

func selfNamedFromISO() map[string]string {
	entries := make(map[string]string, len(isoEntries))
	for name := range isoEntries {
		entries[name] = name
	}
	return entries
}
