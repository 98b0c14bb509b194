package classify

import (
	"log/slog"

	"github.com/cloudflare/ahocorasick"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/document"
	"brokerdocs/internal/language"
	"brokerdocs/internal/logging"
	"brokerdocs/internal/textutil"
	"brokerdocs/internal/translation"
)

// Classifier maps document text to a document type by substring matching
// against the broker's localized indicators. The underlying matcher keeps
// per-call state, so a Classifier must not be shared across goroutines.
type Classifier struct {
	lang    language.Language
	matcher *ahocorasick.Matcher
	// types[i] is the document type of pattern i; patterns are stored in the
	// broker's declared priority order.
	types    []document.Type
	patterns []string
}

// New builds a classifier for one broker and language. Types without an
// indicator are skipped and can never be matched.
func New(dict *translation.Dictionary, b broker.Broker, lang language.Language, logger *slog.Logger) *Classifier {
	logger = logging.NewComponentLogger(logger, "classifier")
	c := &Classifier{lang: lang}
	seen := make(map[string]document.Type)

	for _, t := range b.ClassifiableTypes() {
		indicator, ok := dict.Indicator(b, t)
		if !ok {
			logger.Debug("no indicator configured",
				logging.String("broker", string(b)),
				logging.String("type", string(t)),
			)
			continue
		}
		pattern := textutil.Upper(lang.Tag, indicator)
		if earlier, dup := seen[pattern]; dup {
			logger.Warn("indicator shared by two types; later type unreachable",
				logging.String("type", string(t)),
				logging.String("shadowed_by", string(earlier)),
			)
			continue
		}
		seen[pattern] = t
		c.types = append(c.types, t)
		c.patterns = append(c.patterns, pattern)
	}

	if len(c.patterns) > 0 {
		bytePatterns := make([][]byte, len(c.patterns))
		for i, p := range c.patterns {
			bytePatterns[i] = []byte(p)
		}
		c.matcher = ahocorasick.NewMatcher(bytePatterns)
	}
	return c
}

// Classify returns the first type in priority order whose indicator occurs in
// text, compared case-insensitively. ok is false when nothing matches.
func (c *Classifier) Classify(text string) (document.Type, bool) {
	if c == nil || c.matcher == nil || text == "" {
		return "", false
	}
	normalized := textutil.Upper(c.lang.Tag, text)

	best := -1
	for _, idx := range c.matcher.Match([]byte(normalized)) {
		if idx < 0 || idx >= len(c.types) {
			continue
		}
		if best == -1 || idx < best {
			best = idx
		}
	}
	if best == -1 {
		return "", false
	}
	return c.types[best], true
}

// Types returns the matchable types in priority order.
func (c *Classifier) Types() []document.Type {
	return append([]document.Type(nil), c.types...)
}
