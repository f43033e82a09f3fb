package services

import (
	"context"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// BalanceSheetService computes the balance-sheet report, manages persisted
// snapshots and exposes the settlement diagnostic view.
type BalanceSheetService interface {
	// ComputeReport builds the report for a fiscal year from the live ledger.
	ComputeReport(ctx context.Context, year domain.FiscalYear) (*domain.BalanceSheetReport, error)

	// SnapshotReport computes the report and upserts it keyed by the year's
	// start year. Returns the stored snapshot and whether it was newly created.
	SnapshotReport(ctx context.Context, year domain.FiscalYear) (*domain.BalanceSheetSnapshot, bool, error)

	// GetSnapshot returns the stored snapshot for a start year.
	GetSnapshot(ctx context.Context, startYear int) (*domain.BalanceSheetSnapshot, error)

	// SettlementStatus classifies every counterparty's net position for the year.
	SettlementStatus(ctx context.Context, year domain.FiscalYear) (*domain.SettlementReport, error)
}
