package organizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/language"
	"brokerdocs/internal/logging"
	"brokerdocs/internal/organizer"
	"brokerdocs/internal/translation"
)

const (
	securityText = "WERTPAPIERABRECHNUNG KAUF\nDATUM 05.03.2023\nISIN: US0378331005"
	cryptoText   = "ABRECHNUNG CRYPTOGESCHÄFT\nDATUM 7.1.2024\nBitcoin (BTC) 0,01 Stk."
	dividendText = "AUSSCHÜTTUNG\nDATUM 15.02.2023\nISIN: IE00B4L5Y983"
)

func german(t *testing.T) language.Language {
	t.Helper()
	lang, ok := language.Lookup("de")
	require.True(t, ok)
	return lang
}

func builtinDict(t *testing.T) *translation.Dictionary {
	t.Helper()
	dict, err := translation.Select(broker.TradeRepublic, "de", "")
	require.NoError(t, err)
	return dict
}

func newEngine(t *testing.T, opts organizer.Options) *organizer.Engine {
	t.Helper()
	return organizer.NewEngine(builtinDict(t), broker.TradeRepublic, german(t), opts, logging.NewNop())
}
