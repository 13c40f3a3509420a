package domain

import (
	"context"
)

// HoldingSource defines the interface for loading holdings from a data source
// (a ledger, a portfolio database, a user-supplied file)
type HoldingSource interface {
	// Holdings returns every holding known to the source.
	// Implementations must return an error rather than a partial list when any
	// holding cannot be constructed.
	Holdings(ctx context.Context) ([]Holding, error)
}
