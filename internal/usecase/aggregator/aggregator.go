package aggregator

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/simaogato/worth-backend/internal/domain"
)

// CalculateTotalWorth calculates the total worth of a sequence of holdings
// Logic:
//  1. Start from exact decimal zero
//  2. For each holding, in iteration order, add UnitValue * Quantity
//
// The sequence is consumed exactly once and may be produced lazily.
// Kind never excludes or weights a holding. Decimal Mul and Add do not round,
// so the result is exact and independent of summation order.
func CalculateTotalWorth(holdings iter.Seq[domain.Holding]) decimal.Decimal {
	total := decimal.Zero
	for holding := range holdings {
		total = total.Add(holding.UnitValue().Mul(holding.Quantity()))
	}
	return total
}

// TotalWorth is CalculateTotalWorth over an in-memory list of holdings
func TotalWorth(holdings ...domain.Holding) decimal.Decimal {
	return CalculateTotalWorth(slices.Values(holdings))
}

// WorthByKind calculates per-kind subtotals in a single pass.
// Only kinds present in the sequence appear in the result; the subtotals sum
// to CalculateTotalWorth of the same sequence.
func WorthByKind(holdings iter.Seq[domain.Holding]) map[domain.AssetKind]decimal.Decimal {
	subtotals := make(map[domain.AssetKind]decimal.Decimal)
	for holding := range holdings {
		subtotals[holding.Kind()] = subtotals[holding.Kind()].Add(holding.Worth())
	}
	return subtotals
}
