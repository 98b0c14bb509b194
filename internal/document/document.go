package document

// Type is the semantic kind of a broker document.
type Type string

const (
	TypeSecurityTrade Type = "security_trade"
	TypeCryptoTrade   Type = "crypto_trade"
	TypeDividends     Type = "dividends"
	TypeOther         Type = "other"
)

// TargetDirectory is a logical output folder. Its display label comes from
// the translation dictionary.
type TargetDirectory string

const (
	DirTrades         TargetDirectory = "trades"
	DirTradesSecurity TargetDirectory = "trades_security"
	DirTradesCrypto   TargetDirectory = "trades_crypto"
	DirDividends      TargetDirectory = "dividends"
	DirOthers         TargetDirectory = "others"
)

var types = []Type{TypeSecurityTrade, TypeCryptoTrade, TypeDividends, TypeOther}

var directories = []TargetDirectory{DirTrades, DirTradesSecurity, DirTradesCrypto, DirDividends, DirOthers}

var typeDirectory = map[Type]TargetDirectory{
	TypeSecurityTrade: DirTradesSecurity,
	TypeCryptoTrade:   DirTradesCrypto,
	TypeDividends:     DirDividends,
	TypeOther:         DirOthers,
}

var directoryParent = map[TargetDirectory]TargetDirectory{
	DirTradesSecurity: DirTrades,
	DirTradesCrypto:   DirTrades,
}

// Types returns every document type in declaration order.
func Types() []Type {
	return append([]Type(nil), types...)
}

// ParseType resolves a type key. The legacy key "payout" maps to dividends.
func ParseType(value string) (Type, bool) {
	if value == "payout" {
		return TypeDividends, true
	}
	for _, t := range types {
		if string(t) == value {
			return t, true
		}
	}
	return "", false
}

// Classifiable reports whether indicator matching applies to the type.
func (t Type) Classifiable() bool {
	return t != TypeOther && t != ""
}

// Directory returns the target directory documents of this type land in.
func (t Type) Directory() TargetDirectory {
	if dir, ok := typeDirectory[t]; ok {
		return dir
	}
	return DirOthers
}

func (t Type) String() string { return string(t) }

// Directories returns every target directory in declaration order.
func Directories() []TargetDirectory {
	return append([]TargetDirectory(nil), directories...)
}

// Parent returns the enclosing directory, if any.
func (d TargetDirectory) Parent() (TargetDirectory, bool) {
	parent, ok := directoryParent[d]
	return parent, ok
}

// Grouped reports whether the directory is used when grouping classified
// documents, either directly or as the parent of such a directory.
func (d TargetDirectory) Grouped() bool {
	for _, t := range types {
		if !t.Classifiable() {
			continue
		}
		dir := t.Directory()
		if dir == d {
			return true
		}
		if parent, ok := dir.Parent(); ok && parent == d {
			return true
		}
	}
	return false
}

func (d TargetDirectory) String() string { return string(d) }

// Source is one input document with its extracted text.
type Source struct {
	Path string
	Text string
}

// Classification is the outcome of a successful classification. Date holds
// the raw matched substring, not a parsed value.
type Classification struct {
	Type Type
	Code string
	Date string
}
