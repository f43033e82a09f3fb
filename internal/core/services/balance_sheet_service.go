package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
)

// balanceSheetService implements the BalanceSheetService interface.
// It owns no state of its own; every report is recomputed from the raw
// transaction sources, never from a stored snapshot.
type balanceSheetService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerRepository
	snapshotRepo portsrepo.SnapshotRepository
}

// NewBalanceSheetService creates a new balance sheet service
func NewBalanceSheetService(ledgerRepo portsrepo.LedgerRepository, snapshotRepo portsrepo.SnapshotRepository) portssvc.BalanceSheetService {
	return &balanceSheetService{
		ledgerRepo:   ledgerRepo,
		snapshotRepo: snapshotRepo,
	}
}

var _ portssvc.BalanceSheetService = (*balanceSheetService)(nil)

func (s *balanceSheetService) fetchYear(ctx context.Context, year domain.FiscalYear) (domain.LedgerSources, domain.CarryForward, error) {
	start := year.Start()
	before, err := s.ledgerRepo.SourcesBefore(ctx, start)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch pre-year transaction sources",
			slog.String("financial_year", year.String()))
		return domain.LedgerSources{}, domain.CarryForward{}, fmt.Errorf("failed to fetch pre-year sources: %w", err)
	}
	window, err := s.ledgerRepo.SourcesBetween(ctx, start, year.End())
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch in-year transaction sources",
			slog.String("financial_year", year.String()))
		return domain.LedgerSources{}, domain.CarryForward{}, fmt.Errorf("failed to fetch in-year sources: %w", err)
	}
	return window, calculateCarryForward(before), nil
}

// ComputeReport builds the categorized balance sheet for a fiscal year.
func (s *balanceSheetService) ComputeReport(ctx context.Context, year domain.FiscalYear) (*domain.BalanceSheetReport, error) {
	window, cf, err := s.fetchYear(ctx, year)
	if err != nil {
		return nil, err
	}
	report := computeReport(window, cf)

	s.LogInfo(ctx, "Balance sheet report generated",
		slog.String("financial_year", year.String()),
		slog.Int("capital_lines", len(report.Capital)),
		slog.Int("sundry_lines", len(report.SundryDebtorsCreditors)))
	return &report, nil
}

// SnapshotReport computes the report and upserts it keyed by start year.
func (s *balanceSheetService) SnapshotReport(ctx context.Context, year domain.FiscalYear) (*domain.BalanceSheetSnapshot, bool, error) {
	report, err := s.ComputeReport(ctx, year)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	snapshot := domain.BalanceSheetSnapshot{
		Year:          year.StartYear,
		FinancialYear: year.String(),
		Data:          *report,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := s.snapshotRepo.UpsertSnapshot(ctx, snapshot)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert balance sheet snapshot",
			slog.Int("year", year.StartYear))
		return nil, false, fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	stored, err := s.snapshotRepo.FindSnapshotByYear(ctx, year.StartYear)
	if err != nil {
		s.LogError(ctx, err, "Failed to read back stored snapshot",
			slog.Int("year", year.StartYear))
		return nil, false, fmt.Errorf("failed to read back snapshot: %w", err)
	}

	s.LogInfo(ctx, "Balance sheet snapshot stored",
		slog.Int("year", year.StartYear),
		slog.Bool("created", created))
	return stored, created, nil
}

// GetSnapshot returns a previously stored snapshot for a start year.
func (s *balanceSheetService) GetSnapshot(ctx context.Context, startYear int) (*domain.BalanceSheetSnapshot, error) {
	snapshot, err := s.snapshotRepo.FindSnapshotByYear(ctx, startYear)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// SettlementStatus classifies every sundry counterparty's net position for
// the year, including fully settled ones.
func (s *balanceSheetService) SettlementStatus(ctx context.Context, year domain.FiscalYear) (*domain.SettlementReport, error) {
	window, cf, err := s.fetchYear(ctx, year)
	if err != nil {
		return nil, err
	}
	report := buildSettlementReport(year, window, cf)

	s.LogInfo(ctx, "Settlement status computed",
		slog.String("financial_year", year.String()),
		slog.Int("counterparties", report.Summary.Total),
		slog.Int("active", report.Summary.Active))
	return report, nil
}
