package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/core/services"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SourcesBefore(ctx context.Context, cutoff time.Time) (domain.LedgerSources, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(domain.LedgerSources), args.Error(1)
}

func (m *MockLedgerRepository) SourcesBetween(ctx context.Context, from, to time.Time) (domain.LedgerSources, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(domain.LedgerSources), args.Error(1)
}

// --- Mock SnapshotRepository ---
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) UpsertSnapshot(ctx context.Context, snapshot domain.BalanceSheetSnapshot) (bool, error) {
	args := m.Called(ctx, snapshot)
	return args.Bool(0), args.Error(1)
}

func (m *MockSnapshotRepository) FindSnapshotByYear(ctx context.Context, year int) (*domain.BalanceSheetSnapshot, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetSnapshot), args.Error(1)
}

// --- Test Suite ---
type BalanceSheetServiceTestSuite struct {
	suite.Suite
	mockLedger   *MockLedgerRepository
	mockSnapshot *MockSnapshotRepository
	service      portssvc.BalanceSheetService
}

func (suite *BalanceSheetServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.mockSnapshot = new(MockSnapshotRepository)
	suite.service = services.NewBalanceSheetService(suite.mockLedger, suite.mockSnapshot)
}

func (suite *BalanceSheetServiceTestSuite) fiscalYear() domain.FiscalYear {
	return domain.FiscalYear{StartYear: 2025, EndYear: 2026}
}

// --- Test Cases ---

func (suite *BalanceSheetServiceTestSuite) TestComputeReport_Success() {
	ctx := context.Background()
	year := suite.fiscalYear()

	prior := domain.LedgerSources{
		Invoices: []domain.Invoice{{
			InvoiceID:    "inv-prior",
			BuyerName:    "Beta Exports",
			InvoiceDate:  time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			TotalWithGST: decimal.NewFromInt(5900),
		}},
	}
	window := domain.LedgerSources{
		Invoices: []domain.Invoice{{
			InvoiceID:    "inv-1",
			BuyerName:    "Acme Traders",
			InvoiceDate:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			TotalWithGST: decimal.NewFromInt(11800),
		}},
		Receipts: []domain.BuyerReceipt{{
			ReceiptID: "rcpt-1",
			Name:      "Acme Traders",
			Date:      time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			Amount:    decimal.NewFromInt(5000),
		}},
	}

	suite.mockLedger.On("SourcesBefore", ctx, year.Start()).Return(prior, nil).Once()
	suite.mockLedger.On("SourcesBetween", ctx, year.Start(), year.End()).Return(window, nil).Once()

	report, err := suite.service.ComputeReport(ctx, year)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Require().Len(report.SundryDebtorsCreditors, 2)
	suite.Equal("Acme Traders", report.SundryDebtorsCreditors[0].Name)
	suite.True(report.SundryDebtorsCreditors[0].Amount.Equal(decimal.NewFromInt(6800)))
	suite.Equal("Beta Exports", report.SundryDebtorsCreditors[1].Name)
	suite.True(report.SundryDebtorsCreditors[1].Amount.Equal(decimal.NewFromInt(5900)))

	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *BalanceSheetServiceTestSuite) TestComputeReport_LedgerError() {
	ctx := context.Background()
	year := suite.fiscalYear()
	dbErr := errors.New("connection lost")

	suite.mockLedger.On("SourcesBefore", ctx, year.Start()).Return(domain.LedgerSources{}, dbErr).Once()

	report, err := suite.service.ComputeReport(ctx, year)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, dbErr)
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockLedger.AssertNotCalled(suite.T(), "SourcesBetween", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceSheetServiceTestSuite) TestSnapshotReport_CreatesNewSnapshot() {
	ctx := context.Background()
	year := suite.fiscalYear()

	suite.mockLedger.On("SourcesBefore", ctx, year.Start()).Return(domain.LedgerSources{}, nil).Once()
	suite.mockLedger.On("SourcesBetween", ctx, year.Start(), year.End()).Return(domain.LedgerSources{}, nil).Once()

	suite.mockSnapshot.On("UpsertSnapshot", ctx, mock.MatchedBy(func(s domain.BalanceSheetSnapshot) bool {
		return s.Year == 2025 && s.FinancialYear == "2025-2026"
	})).Return(true, nil).Once()

	stored := &domain.BalanceSheetSnapshot{Year: 2025, FinancialYear: "2025-2026"}
	suite.mockSnapshot.On("FindSnapshotByYear", ctx, 2025).Return(stored, nil).Once()

	snapshot, created, err := suite.service.SnapshotReport(ctx, year)

	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal(stored, snapshot)
	suite.mockSnapshot.AssertExpectations(suite.T())
}

func (suite *BalanceSheetServiceTestSuite) TestSnapshotReport_ReplacesExistingSnapshot() {
	ctx := context.Background()
	year := suite.fiscalYear()

	suite.mockLedger.On("SourcesBefore", ctx, year.Start()).Return(domain.LedgerSources{}, nil).Once()
	suite.mockLedger.On("SourcesBetween", ctx, year.Start(), year.End()).Return(domain.LedgerSources{}, nil).Once()
	suite.mockSnapshot.On("UpsertSnapshot", ctx, mock.AnythingOfType("domain.BalanceSheetSnapshot")).Return(false, nil).Once()
	suite.mockSnapshot.On("FindSnapshotByYear", ctx, 2025).Return(&domain.BalanceSheetSnapshot{Year: 2025}, nil).Once()

	_, created, err := suite.service.SnapshotReport(ctx, year)

	suite.Require().NoError(err)
	suite.False(created)
	suite.mockSnapshot.AssertExpectations(suite.T())
}

func (suite *BalanceSheetServiceTestSuite) TestGetSnapshot_NotFound() {
	ctx := context.Background()

	suite.mockSnapshot.On("FindSnapshotByYear", ctx, 2019).Return(nil, apperrors.ErrNotFound).Once()

	snapshot, err := suite.service.GetSnapshot(ctx, 2019)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSnapshot.AssertExpectations(suite.T())
}

func (suite *BalanceSheetServiceTestSuite) TestSettlementStatus_Success() {
	ctx := context.Background()
	year := suite.fiscalYear()

	window := domain.LedgerSources{
		Invoices: []domain.Invoice{{
			InvoiceID:    "inv-1",
			BuyerName:    "Acme Traders",
			InvoiceDate:  time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			TotalWithGST: decimal.NewFromInt(2000),
		}},
		Receipts: []domain.BuyerReceipt{{
			ReceiptID: "rcpt-1",
			Name:      "Acme Traders",
			Date:      time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			Amount:    decimal.NewFromInt(2000),
		}},
	}

	suite.mockLedger.On("SourcesBefore", ctx, year.Start()).Return(domain.LedgerSources{}, nil).Once()
	suite.mockLedger.On("SourcesBetween", ctx, year.Start(), year.End()).Return(window, nil).Once()

	report, err := suite.service.SettlementStatus(ctx, year)

	suite.Require().NoError(err)
	suite.Require().Len(report.Counterparties, 1)
	suite.Equal("Settled", report.Counterparties[0].Status)
	suite.Equal(1, report.Summary.Settled)
	suite.Equal(0, report.Summary.Active)
	suite.mockLedger.AssertExpectations(suite.T())
}

func TestBalanceSheetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceSheetServiceTestSuite))
}
