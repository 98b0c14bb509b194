package translation

import (
	"fmt"
	"sort"
	"strings"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/document"
	"brokerdocs/internal/services"
)

const (
	keyTargetDirectories = "target_directories"
	keyIndicators        = "indicators"
)

// Dictionary maps indicators and directory labels for one language. It is
// immutable after construction.
type Dictionary struct {
	Language string
	// Source names the file the dictionary was read from.
	Source string

	labels     map[document.TargetDirectory]string
	indicators map[broker.Broker]map[document.Type]string
	// shared holds the flat top-level indicator table of older files; it
	// applies to brokers without a table of their own.
	shared map[document.Type]string
}

// Indicator returns the indicator phrase for a broker and type. Empty values
// count as absent.
func (d *Dictionary) Indicator(b broker.Broker, t document.Type) (string, bool) {
	if d == nil {
		return "", false
	}
	table, ok := d.indicators[b]
	if !ok {
		table = d.shared
	}
	value := table[t]
	return value, value != ""
}

// DirectoryLabel returns the localized label for a target directory.
func (d *Dictionary) DirectoryLabel(dir document.TargetDirectory) (string, bool) {
	if d == nil {
		return "", false
	}
	value := d.labels[dir]
	return value, value != ""
}

// Brokers returns the brokers with a dedicated indicator table, sorted.
func (d *Dictionary) Brokers() []broker.Broker {
	out := make([]broker.Broker, 0, len(d.indicators))
	for b := range d.indicators {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Parse builds a dictionary from a decoded translation document. Unknown keys
// are ignored; values of the wrong shape are configuration errors naming the
// offending path.
func Parse(lang string, raw map[string]any) (*Dictionary, error) {
	dict := &Dictionary{
		Language:   lang,
		labels:     make(map[document.TargetDirectory]string),
		indicators: make(map[broker.Broker]map[document.Type]string),
	}

	if value, ok := raw[keyTargetDirectories]; ok {
		table, err := asTable(value, keyTargetDirectories)
		if err != nil {
			return nil, err
		}
		for _, dir := range document.Directories() {
			label, err := asString(table[string(dir)], keyTargetDirectories+"."+string(dir))
			if err != nil {
				return nil, err
			}
			if label != "" {
				dict.labels[dir] = label
			}
		}
	}

	if value, ok := raw[keyIndicators]; ok {
		table, err := asTable(value, keyIndicators)
		if err != nil {
			return nil, err
		}
		if dict.shared, err = parseIndicators(table, keyIndicators); err != nil {
			return nil, err
		}
	}

	for key, value := range raw {
		b, ok := broker.Parse(key)
		if !ok {
			continue
		}
		scope, err := asTable(value, key)
		if err != nil {
			return nil, err
		}
		table, err := asTable(scope[keyIndicators], key+"."+keyIndicators)
		if err != nil {
			return nil, err
		}
		if table == nil {
			continue
		}
		parsed, err := parseIndicators(table, key+"."+keyIndicators)
		if err != nil {
			return nil, err
		}
		dict.indicators[b] = parsed
	}

	return dict, nil
}

func parseIndicators(table map[string]any, path string) (map[document.Type]string, error) {
	out := make(map[document.Type]string, len(table))
	// Canonical keys first so "dividends" beats the legacy "payout" alias.
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ai, aj := keys[i] == "payout", keys[j] == "payout"
		if ai != aj {
			return aj
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		t, ok := document.ParseType(key)
		if !ok || !t.Classifiable() {
			continue
		}
		value, err := asString(table[key], path+"."+key)
		if err != nil {
			return nil, err
		}
		if value == "" {
			continue
		}
		if _, exists := out[t]; !exists {
			out[t] = value
		}
	}
	return out, nil
}

func asTable(value any, path string) (map[string]any, error) {
	if value == nil {
		return nil, nil
	}
	table, ok := value.(map[string]any)
	if !ok {
		return nil, services.Wrap(services.ErrConfiguration, "translation", "parse", fmt.Sprintf("%s must be a table", path), nil)
	}
	return table, nil
}

func asString(value any, path string) (string, error) {
	if value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", services.Wrap(services.ErrConfiguration, "translation", "parse", fmt.Sprintf("%s must be a string", path), nil)
	}
	return strings.TrimSpace(s), nil
}
