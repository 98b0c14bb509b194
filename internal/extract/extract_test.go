package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brokerdocs/internal/document"
	"brokerdocs/internal/extract"
)

func TestDate(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"padded", "DATUM 05.03.2023", "05.03.2023", true},
		{"unpadded", "DATUM 5.3.2023", "5.3.2023", true},
		{"no space", "DATUM31.12.1999", "31.12.1999", true},
		{"newline", "DATUM\n01.01.2024 ZEIT", "01.01.2024", true},
		{"first match", "DATUM 01.02.2023 DATUM 03.04.2023", "01.02.2023", true},
		{"lowercase marker", "datum 05.03.2023", "", false},
		{"month out of range", "DATUM 05.13.2023", "", false},
		{"year out of range", "DATUM 05.03.2123", "", false},
		{"no marker", "05.03.2023", "", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extract.Date(tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDateWithCustomLabel(t *testing.T) {
	e := extract.New("DATE")
	got, ok := e.Date("DATE 7.8.2021")
	assert.True(t, ok)
	assert.Equal(t, "7.8.2021", got)

	_, ok = e.Date("DATUM 7.8.2021")
	assert.False(t, ok)
}

func TestISIN(t *testing.T) {
	got, ok := extract.ISIN("Position ISIN: US0378331005 Stk.")
	assert.True(t, ok)
	assert.Equal(t, "US0378331005", got)

	got, ok = extract.ISIN("ISIN:DE000BASF111")
	assert.True(t, ok)
	assert.Equal(t, "DE000BASF111", got)

	_, ok = extract.ISIN("ISIN: US037833100X")
	assert.False(t, ok, "last character must be a digit")

	_, ok = extract.ISIN("isin: US0378331005")
	assert.False(t, ok)
}

func TestCryptoAbbreviation(t *testing.T) {
	got, ok := extract.CryptoAbbreviation("Bitcoin (BTC) 0,0015 Stk.")
	assert.True(t, ok)
	assert.Equal(t, "BTC", got)

	got, ok = extract.CryptoAbbreviation("Position Ethereum Classic (ETC)")
	assert.True(t, ok)
	assert.Equal(t, "ETC", got)

	_, ok = extract.CryptoAbbreviation("Bitcoin (BT)")
	assert.False(t, ok)

	_, ok = extract.CryptoAbbreviation("Bitcoin (btc)")
	assert.False(t, ok)
}

func TestCodeDispatchesOnType(t *testing.T) {
	text := "Bitcoin (BTC) ISIN: XF000BTC0017"

	got, ok := extract.Code(text, document.TypeCryptoTrade)
	assert.True(t, ok)
	assert.Equal(t, "BTC", got)

	for _, typ := range []document.Type{document.TypeSecurityTrade, document.TypeDividends, document.TypeOther} {
		got, ok := extract.Code(text, typ)
		assert.True(t, ok)
		assert.Equal(t, "XF000BTC0017", got, typ)
	}
}
