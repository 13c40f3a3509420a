package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Holding represents one line-item position of a financial asset.
// Fields are unexported so a Holding cannot change after construction; the
// With* methods return modified copies.
// Negative values are allowed (short positions, liabilities).
type Holding struct {
	unitValue decimal.Decimal
	quantity  decimal.Decimal
	kind      AssetKind
}

// NewHolding creates a holding from exact decimal values.
// Returns an error if kind is not one of the declared asset kinds.
func NewHolding(unitValue, quantity decimal.Decimal, kind AssetKind) (Holding, error) {
	if !kind.Valid() {
		return Holding{}, fmt.Errorf("%w: %q", ErrUnknownAssetKind, string(kind))
	}

	return Holding{
		unitValue: unitValue,
		quantity:  quantity,
		kind:      kind,
	}, nil
}

// ParseHolding creates a holding from its textual representation.
// Numbers are parsed directly as exact decimals, never through float64.
func ParseHolding(unitValue, quantity, kind string) (Holding, error) {
	value, err := decimal.NewFromString(unitValue)
	if err != nil {
		return Holding{}, fmt.Errorf("invalid unit value %q: %w", unitValue, err)
	}

	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return Holding{}, fmt.Errorf("invalid quantity %q: %w", quantity, err)
	}

	assetKind, err := ParseAssetKind(kind)
	if err != nil {
		return Holding{}, err
	}

	return NewHolding(value, qty, assetKind)
}

// MustHolding is like NewHolding but panics on error
func MustHolding(unitValue, quantity decimal.Decimal, kind AssetKind) Holding {
	h, err := NewHolding(unitValue, quantity, kind)
	if err != nil {
		panic(err)
	}
	return h
}

// UnitValue returns the worth of one unit of the asset
func (h Holding) UnitValue() decimal.Decimal { return h.unitValue }

// Quantity returns how many units are held
func (h Holding) Quantity() decimal.Decimal { return h.quantity }

// Kind returns the asset category
func (h Holding) Kind() AssetKind { return h.kind }

// Worth returns UnitValue * Quantity without rounding
func (h Holding) Worth() decimal.Decimal {
	return h.unitValue.Mul(h.quantity)
}

// WithUnitValue returns a copy of h with a different unit value
func (h Holding) WithUnitValue(unitValue decimal.Decimal) Holding {
	h.unitValue = unitValue
	return h
}

// WithQuantity returns a copy of h with a different quantity
func (h Holding) WithQuantity(quantity decimal.Decimal) Holding {
	h.quantity = quantity
	return h
}

// WithKind returns a copy of h with a different asset kind
func (h Holding) WithKind(kind AssetKind) (Holding, error) {
	return NewHolding(h.unitValue, h.quantity, kind)
}

func (h Holding) String() string {
	return fmt.Sprintf("%s x %s (%s)", h.quantity, h.unitValue, h.kind)
}
