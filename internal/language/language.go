package language

import (
	"strings"

	textlang "golang.org/x/text/language"
)

// Language describes how documents written in one locale are read.
type Language struct {
	Code  string // ISO 639-1 (2-letter)
	Code3 string // ISO 639-2 primary (3-letter)
	Name  string // Human-readable name
	// Tag drives locale-aware case mapping of indicators and document text.
	Tag textlang.Tag
	// DateLabel is the literal marker preceding the transaction date.
	DateLabel string
	// DateLayout parses the captured date; single-digit layout elements also
	// accept leading zeros.
	DateLayout string
}

type entry struct {
	lang  Language
	alt3  string   // ISO 639-2 alternate (e.g. "ger" vs "deu")
	words []string // Full word forms (e.g. "german")
}

var languages = []entry{
	{
		lang: Language{
			Code:       "de",
			Code3:      "deu",
			Name:       "German",
			Tag:        textlang.German,
			DateLabel:  "DATUM",
			DateLayout: "2.1.2006",
		},
		alt3:  "ger",
		words: []string{"german", "deutsch"},
	},
}

var index map[string]int

func init() {
	index = make(map[string]int, len(languages)*4)
	for i, e := range languages {
		index[e.lang.Code] = i
		index[e.lang.Code3] = i
		if e.alt3 != "" {
			index[e.alt3] = i
		}
		for _, w := range e.words {
			index[w] = i
		}
	}
}

// Lookup resolves a 2-letter code, 3-letter code or word form to a supported
// language.
func Lookup(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return Language{}, false
	}
	i, ok := index[code]
	if !ok {
		return Language{}, false
	}
	return languages[i].lang, true
}

// ToISO2 converts any recognized language code or word to ISO 639-1.
// Unrecognized input is returned lower-cased and trimmed so callers can report it.
func ToISO2(code string) string {
	if lang, ok := Lookup(code); ok {
		return lang.Code
	}
	return strings.ToLower(strings.TrimSpace(code))
}

// All returns every supported language in declaration order.
func All() []Language {
	out := make([]Language, len(languages))
	for i, e := range languages {
		out[i] = e.lang
	}
	return out
}

// Codes returns the 2-letter codes of every supported language.
func Codes() []string {
	out := make([]string, len(languages))
	for i, e := range languages {
		out[i] = e.lang.Code
	}
	return out
}
