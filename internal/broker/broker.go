package broker

import (
	"slices"
	"strings"

	"brokerdocs/internal/document"
)

// Broker identifies a document-issuing institution.
type Broker string

const TradeRepublic Broker = "traderepublic"

type definition struct {
	label     string
	types     []document.Type
	languages []string
}

// Types are listed in classification priority order: the first type whose
// indicator matches wins.
var definitions = map[Broker]definition{
	TradeRepublic: {
		label: "Trade Republic",
		types: []document.Type{
			document.TypeCryptoTrade,
			document.TypeSecurityTrade,
			document.TypeDividends,
			document.TypeOther,
		},
		languages: []string{"de"},
	},
}

var order = []Broker{TradeRepublic}

// Parse resolves a broker code, ignoring case and surrounding space.
func Parse(value string) (Broker, bool) {
	b := Broker(strings.ToLower(strings.TrimSpace(value)))
	_, ok := definitions[b]
	return b, ok
}

// All returns every known broker.
func All() []Broker {
	return append([]Broker(nil), order...)
}

// Codes returns the code of every known broker.
func Codes() []string {
	out := make([]string, len(order))
	for i, b := range order {
		out[i] = string(b)
	}
	return out
}

// SupportingLanguage returns the brokers that publish documents in lang.
func SupportingLanguage(lang string) []Broker {
	var out []Broker
	for _, b := range order {
		if b.SupportsLanguage(lang) {
			out = append(out, b)
		}
	}
	return out
}

// Label returns the human-readable broker name.
func (b Broker) Label() string {
	return definitions[b].label
}

// SupportedTypes returns the document types in classification priority order.
func (b Broker) SupportedTypes() []document.Type {
	return append([]document.Type(nil), definitions[b].types...)
}

// ClassifiableTypes returns SupportedTypes without the fallback type.
func (b Broker) ClassifiableTypes() []document.Type {
	var out []document.Type
	for _, t := range definitions[b].types {
		if t.Classifiable() {
			out = append(out, t)
		}
	}
	return out
}

// SupportedLanguages returns the language codes the broker publishes in.
func (b Broker) SupportedLanguages() []string {
	return append([]string(nil), definitions[b].languages...)
}

// SupportsLanguage reports whether documents in lang are expected from b.
func (b Broker) SupportsLanguage(lang string) bool {
	return slices.Contains(definitions[b].languages, lang)
}

func (b Broker) String() string { return string(b) }
