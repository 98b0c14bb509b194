package extract

import (
	"regexp"

	"brokerdocs/internal/document"
)

const (
	defaultDateLabel = "DATUM"
	datePattern      = `\s*((3[01]|[12][0-9]|0?[1-9])\.(1[012]|0?[1-9])\.((?:19|20)\d{2}))`
)

var (
	isinPattern   = regexp.MustCompile(`ISIN:\s*([A-Z]{2}[A-Z0-9]{9}[0-9])`)
	cryptoPattern = regexp.MustCompile(`([[:alnum:][:blank:]*]+)\s\(([A-Z]{3,5})\)`)

	defaultExtractor = New(defaultDateLabel)
)

// Extractor pulls dates and asset codes out of document text. All lookups
// return the first match only and never fail; absence is reported with ok=false.
type Extractor struct {
	date *regexp.Regexp
}

// New returns an extractor whose date lookup anchors on label, the literal
// marker printed before the transaction date ("DATUM" in German documents).
func New(label string) *Extractor {
	return &Extractor{date: regexp.MustCompile(regexp.QuoteMeta(label) + datePattern)}
}

// Date returns the raw day.month.year substring following the date label.
func (e *Extractor) Date(text string) (string, bool) {
	return submatch(e.date, text, 1)
}

// ISIN returns the first 12-character ISIN following an "ISIN:" marker.
func (e *Extractor) ISIN(text string) (string, bool) {
	return submatch(isinPattern, text, 1)
}

// CryptoAbbreviation returns the ticker from the first "Name (TICKER)" pair.
func (e *Extractor) CryptoAbbreviation(text string) (string, bool) {
	return submatch(cryptoPattern, text, 2)
}

// Code returns the asset identifier appropriate for the document type: the
// crypto ticker for crypto trades and the ISIN otherwise.
func (e *Extractor) Code(text string, t document.Type) (string, bool) {
	if t == document.TypeCryptoTrade {
		return e.CryptoAbbreviation(text)
	}
	return e.ISIN(text)
}

// Date extracts a German-labelled date.
func Date(text string) (string, bool) { return defaultExtractor.Date(text) }

// ISIN extracts the first ISIN.
func ISIN(text string) (string, bool) { return defaultExtractor.ISIN(text) }

// CryptoAbbreviation extracts the first crypto ticker.
func CryptoAbbreviation(text string) (string, bool) {
	return defaultExtractor.CryptoAbbreviation(text)
}

// Code extracts the asset code for t.
func Code(text string, t document.Type) (string, bool) { return defaultExtractor.Code(text, t) }

func submatch(re *regexp.Regexp, text string, group int) (string, bool) {
	m := re.FindStringSubmatch(text)
	if len(m) <= group || m[group] == "" {
		return "", false
	}
	return m[group], true
}
