package translation_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerdocs/internal/broker"
	"brokerdocs/internal/document"
	"brokerdocs/internal/services"
	"brokerdocs/internal/translation"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

const completeTOML = `
[target_directories]
trades = "Trades"
trades_security = "Wertpapiere"
trades_crypto = "Crypto"
dividends = "Dividenden"

[traderepublic.indicators]
security_trade = "WERTPAPIERABRECHNUNG"
crypto_trade = "ABRECHNUNG CRYPTOGESCHÄFT"
dividends = "AUSSCHÜTTUNG"
`

func TestLoadBuiltinGerman(t *testing.T) {
	dict, err := translation.Load("de", "")
	require.NoError(t, err)
	assert.Equal(t, "de", dict.Language)

	indicator, ok := dict.Indicator(broker.TradeRepublic, document.TypeCryptoTrade)
	require.True(t, ok)
	assert.Equal(t, "ABRECHNUNG CRYPTOGESCHÄFT", indicator)

	label, ok := dict.DirectoryLabel(document.DirOthers)
	require.True(t, ok)
	assert.Equal(t, "Andere", label)

	require.NoError(t, translation.Validate(dict, broker.All()))
}

func TestLoadMissingLanguage(t *testing.T) {
	_, err := translation.Load("xx", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, translation.ErrLanguageFileNotFound)
	assert.ErrorIs(t, err, services.ErrConfiguration)

	_, err = translation.Load("de", t.TempDir())
	assert.ErrorIs(t, err, translation.ErrLanguageFileNotFound)
}

func TestLoadOverrideDirectoryYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de.yaml", `
target_directories:
  trades: Handel
  trades_security: Aktien
  trades_crypto: Krypto
  dividends: Ertraege
traderepublic:
  indicators:
    security_trade: WERTPAPIERABRECHNUNG
    crypto_trade: KRYPTO
    dividends: AUSSCHÜTTUNG
`)
	dict, err := translation.Load("de", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "de.yaml"), dict.Source)

	label, _ := dict.DirectoryLabel(document.DirTrades)
	assert.Equal(t, "Handel", label)
	indicator, _ := dict.Indicator(broker.TradeRepublic, document.TypeCryptoTrade)
	assert.Equal(t, "KRYPTO", indicator)
	require.NoError(t, translation.Validate(dict, broker.All()))
}

func TestTOMLPreferredOverYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de.toml", completeTOML)
	writeFile(t, dir, "de.yml", "target_directories: {trades: Other}\n")

	dict, err := translation.Load("de", dir)
	require.NoError(t, err)
	label, _ := dict.DirectoryLabel(document.DirTrades)
	assert.Equal(t, "Trades", label)
}

func TestValidateReportsMissingIndicator(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de.toml", `
[target_directories]
trades = "Trades"
trades_security = "Wertpapiere"
trades_crypto = "Crypto"
dividends = "Dividenden"

[traderepublic.indicators]
security_trade = "WERTPAPIERABRECHNUNG"
crypto_trade = "ABRECHNUNG CRYPTOGESCHÄFT"
`)
	dict, err := translation.Load("de", dir)
	require.NoError(t, err)

	err = translation.Validate(dict, []broker.Broker{broker.TradeRepublic})
	var missing *translation.MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "traderepublic.indicators.dividends", missing.Path)
	assert.ErrorIs(t, err, services.ErrConfiguration)
	assert.Contains(t, err.Error(), "traderepublic.indicators.dividends")
}

func TestValidateChecksLabelsFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de.toml", `
[target_directories]
trades = "Trades"
trades_crypto = "Crypto"
dividends = "Dividenden"
`)
	dict, err := translation.Load("de", dir)
	require.NoError(t, err)

	err = translation.Validate(dict, broker.All())
	var missing *translation.MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "target_directories.trades_security", missing.Path)
}

func TestEmptyIndicatorCountsAsMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de.toml", `
[target_directories]
trades = "Trades"
trades_security = "Wertpapiere"
trades_crypto = "Crypto"
dividends = "Dividenden"

[traderepublic.indicators]
security_trade = "   "
crypto_trade = "ABRECHNUNG CRYPTOGESCHÄFT"
dividends = "AUSSCHÜTTUNG"
`)
	dict, err := translation.Load("de", dir)
	require.NoError(t, err)
	_, ok := dict.Indicator(broker.TradeRepublic, document.TypeSecurityTrade)
	assert.False(t, ok)

	err = translation.Validate(dict, broker.All())
	var missing *translation.MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "traderepublic.indicators.security_trade", missing.Path)
}

func TestLegacyFlatIndicatorsAndPayoutAlias(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de.toml", `
[target_directories]
trades = "Trades"
trades_security = "Wertpapiere"
trades_crypto = "Crypto"
dividends = "Dividenden"

[indicators]
security_trade = "WERTPAPIERABRECHNUNG"
crypto_trade = "ABRECHNUNG CRYPTOGESCHÄFT"
payout = "AUSSCHÜTTUNG"
`)
	dict, err := translation.Load("de", dir)
	require.NoError(t, err)

	indicator, ok := dict.Indicator(broker.TradeRepublic, document.TypeDividends)
	require.True(t, ok)
	assert.Equal(t, "AUSSCHÜTTUNG", indicator)
	require.NoError(t, translation.Validate(dict, broker.All()))
}

func TestDividendsKeyWinsOverPayout(t *testing.T) {
	dict, err := translation.Parse("de", map[string]any{
		"traderepublic": map[string]any{
			"indicators": map[string]any{
				"payout":    "OLD",
				"dividends": "NEW",
			},
		},
	})
	require.NoError(t, err)
	indicator, _ := dict.Indicator(broker.TradeRepublic, document.TypeDividends)
	assert.Equal(t, "NEW", indicator)
}

func TestParseRejectsWrongShapes(t *testing.T) {
	_, err := translation.Parse("de", map[string]any{"target_directories": "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrConfiguration)

	_, err = translation.Parse("de", map[string]any{
		"traderepublic": map[string]any{"indicators": map[string]any{"dividends": 7}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "traderepublic.indicators.dividends")
}

func TestSelect(t *testing.T) {
	dict, err := translation.Select(broker.TradeRepublic, "DE", "")
	require.NoError(t, err)
	assert.Equal(t, "de", dict.Language)

	_, err = translation.Select(broker.TradeRepublic, "en", "")
	assert.ErrorIs(t, err, translation.ErrLanguageNotSupported)
	assert.ErrorIs(t, err, services.ErrConfiguration)
}

func TestValidateLanguage(t *testing.T) {
	_, err := translation.ValidateLanguage("german", "")
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "de.toml", "[target_directories]\n")
	_, err = translation.ValidateLanguage("de", dir)
	var missing *translation.MissingKeyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "target_directories.trades", missing.Path)
}
