package common

import "strings"

// languageCodes maps the language names NewsData.io reports to ISO 639-1 codes.
var languageCodes = map[string]string{
	"arabic":     "ar",
	"bengali":    "bn",
	"chinese":    "zh",
	"czech":      "cs",
	"danish":     "da",
	"dutch":      "nl",
	"english":    "en",
	"finnish":    "fi",
	"french":     "fr",
	"german":     "de",
	"greek":      "el",
	"hebrew":     "he",
	"hindi":      "hi",
	"hungarian":  "hu",
	"indonesian": "id",
	"italian":    "it",
	"japanese":   "ja",
	"korean":     "ko",
	"malay":      "ms",
	"norwegian":  "no",
	"persian":    "fa",
	"polish":     "pl",
	"portuguese": "pt",
	"romanian":   "ro",
	"russian":    "ru",
	"spanish":    "es",
	"swedish":    "sv",
	"tagalog":    "tl",
	"thai":       "th",
	"turkish":    "tr",
	"ukrainian":  "uk",
	"urdu":       "ur",
	"vietnamese": "vi",
}

// LanguageCode returns the ISO 639-1 code for a language name or a regional
// tag such as "en-US". Unknown values come back lowercased.
func LanguageCode(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if code, ok := languageCodes[language]; ok {
		return code
	}
	if i := strings.IndexAny(language, "-_"); i == 2 {
		return language[:i]
	}
	return language
}
