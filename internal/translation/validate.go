package translation

import (
	"errors"
	"fmt"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/document"
	"brokerdocs/internal/language"
	"brokerdocs/internal/services"
)

// ErrLanguageNotSupported reports a broker/language pair with no documents.
var ErrLanguageNotSupported = errors.New("language not supported by broker")

// MissingKeyError names the first required translation key that is absent
// or empty, e.g. "traderepublic.indicators.dividends".
type MissingKeyError struct {
	Language string
	Path     string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: translation %q is missing key %s", services.ErrConfiguration, e.Language, e.Path)
}

func (e *MissingKeyError) Unwrap() error { return services.ErrConfiguration }

// Validate checks that every grouped directory has a label and every
// classifiable type of every broker in scope has an indicator. Labels are
// checked first; the first gap is returned.
func Validate(dict *Dictionary, brokers []broker.Broker) error {
	if dict == nil {
		return services.Wrap(services.ErrConfiguration, "translation", "validate", "no dictionary loaded", nil)
	}
	for _, dir := range document.Directories() {
		if !dir.Grouped() {
			continue
		}
		if _, ok := dict.DirectoryLabel(dir); !ok {
			return &MissingKeyError{Language: dict.Language, Path: keyTargetDirectories + "." + string(dir)}
		}
	}
	for _, b := range brokers {
		for _, t := range b.ClassifiableTypes() {
			if _, ok := dict.Indicator(b, t); !ok {
				return &MissingKeyError{
					Language: dict.Language,
					Path:     string(b) + "." + keyIndicators + "." + string(t),
				}
			}
		}
	}
	return nil
}

// ValidateLanguage loads the translation for lang and validates it against
// every broker that publishes documents in that language.
func ValidateLanguage(lang, dir string) (*Dictionary, error) {
	code := language.ToISO2(lang)
	dict, err := Load(code, dir)
	if err != nil {
		return nil, err
	}
	if err := Validate(dict, broker.SupportingLanguage(code)); err != nil {
		return nil, err
	}
	return dict, nil
}

// Select resolves the dictionary for one broker and language, failing fast
// before any document is processed.
func Select(b broker.Broker, lang, dir string) (*Dictionary, error) {
	code := language.ToISO2(lang)
	if !b.SupportsLanguage(code) {
		return nil, services.Wrap(services.ErrConfiguration, "translation", "select",
			fmt.Sprintf("broker %s does not publish %q documents", b, code), ErrLanguageNotSupported)
	}
	dict, err := Load(code, dir)
	if err != nil {
		return nil, err
	}
	if err := Validate(dict, []broker.Broker{b}); err != nil {
		return nil, err
	}
	return dict, nil
}
