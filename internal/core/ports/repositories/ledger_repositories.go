package repositories

import (
	"context"
	"time"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// LedgerRepository defines the read-only view the balance-sheet engine has
// over the transaction sources. The engine never writes through this interface.
type LedgerRepository interface {
	// SourcesBefore returns every transaction record dated strictly before the
	// cutoff, across all historical years. Used for carry-forward.
	SourcesBefore(ctx context.Context, cutoff time.Time) (domain.LedgerSources, error)

	// SourcesBetween returns every transaction record dated within [from, to]
	// inclusive. Used for in-year aggregation.
	SourcesBetween(ctx context.Context, from, to time.Time) (domain.LedgerSources, error)
}

// SnapshotRepository persists computed balance-sheet reports keyed by the
// fiscal year's start year. Upserts are last-write-wins.
type SnapshotRepository interface {
	// UpsertSnapshot creates or replaces the snapshot for its year.
	// Returns true if a new row was created, false if an existing one was replaced.
	UpsertSnapshot(ctx context.Context, snapshot domain.BalanceSheetSnapshot) (bool, error)

	// FindSnapshotByYear returns the stored snapshot for a start year,
	// or apperrors.ErrNotFound if none exists.
	FindSnapshotByYear(ctx context.Context, year int) (*domain.BalanceSheetSnapshot, error)
}
