package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/language"
	"brokerdocs/internal/services"
)

const maxSuggestionDistance = 3

func resolveBroker(value string) (broker.Broker, error) {
	if b, ok := broker.Parse(value); ok {
		return b, nil
	}
	return "", unsupportedValue("broker", value, broker.Codes())
}

func resolveLanguage(value string) (language.Language, error) {
	if lang, ok := language.Lookup(value); ok {
		return lang, nil
	}
	return language.Language{}, unsupportedValue("language", value, language.Codes())
}

func unsupportedValue(kind, value string, supported []string) error {
	msg := fmt.Sprintf("unsupported %s %q; supported: %s", kind, value, strings.Join(supported, ", "))
	if hint := suggest(value, supported); hint != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", hint)
	}
	return services.Wrap(services.ErrConfiguration, "cli", "resolve "+kind, msg, nil)
}

// suggest returns the closest candidate for value, or "" when nothing is close.
// Subsequence matches win over plain edit distance.
func suggest(value string, candidates []string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || len(candidates) == 0 {
		return ""
	}
	if ranks := fuzzy.RankFindFold(value, candidates); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDistance := "", maxSuggestionDistance+1
	for _, candidate := range candidates {
		if d := fuzzy.LevenshteinDistance(value, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best
}
