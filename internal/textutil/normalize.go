package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NFC composes decomposed characters so "U+0055 U+0308" compares equal to "Ü".
// PDF producers emit both forms.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Upper upper-cases s using the case rules of tag after NFC normalization.
func Upper(tag language.Tag, s string) string {
	return cases.Upper(tag).String(NFC(s))
}
