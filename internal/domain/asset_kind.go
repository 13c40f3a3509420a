package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAssetKind is returned when a value outside the closed AssetKind set is used
var ErrUnknownAssetKind = errors.New("unknown asset kind")

// AssetKind represents the category of a holding
type AssetKind string

const (
	AssetKindStock          AssetKind = "STOCK"
	AssetKindBond           AssetKind = "BOND"
	AssetKindCash           AssetKind = "CASH"
	AssetKindCommodity      AssetKind = "COMMODITY"
	AssetKindCryptoCurrency AssetKind = "CRYPTO_CURRENCY"
	AssetKindPrivateEquity  AssetKind = "PRIVATE_EQUITY"
	AssetKindRealEstate     AssetKind = "REAL_ESTATE"
)

var assetKinds = []AssetKind{
	AssetKindStock,
	AssetKindBond,
	AssetKindCash,
	AssetKindCommodity,
	AssetKindCryptoCurrency,
	AssetKindPrivateEquity,
	AssetKindRealEstate,
}

// AssetKinds returns every asset kind in declaration order
func AssetKinds() []AssetKind {
	kinds := make([]AssetKind, len(assetKinds))
	copy(kinds, assetKinds)
	return kinds
}

// Valid reports whether k is one of the declared asset kinds
func (k AssetKind) Valid() bool {
	for _, kind := range assetKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (k AssetKind) String() string {
	return string(k)
}

// ParseAssetKind converts text into an AssetKind.
// Matching ignores case and surrounding whitespace, and accepts '-' or ' ' in
// place of '_' ("crypto-currency", "real estate").
func ParseAssetKind(s string) (AssetKind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	kind := AssetKind(normalized)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAssetKind, s)
	}
	return kind, nil
}

// MarshalText implements encoding.TextMarshaler
func (k AssetKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAssetKind, string(k))
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting kinds outside the closed set
func (k *AssetKind) UnmarshalText(text []byte) error {
	kind, err := ParseAssetKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
