package services_test

import (
	"context"
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

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, financialYear string) ([]domain.Invoice, error) {
	args := m.Called(ctx, financialYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListDeletedInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkInvoiceDeleted(ctx context.Context, invoiceID string, deletedAt time.Time) error {
	args := m.Called(ctx, invoiceID, deletedAt)
	return args.Error(0)
}

func (m *MockInvoiceRepository) RestoreInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ArchiveInvoice(ctx context.Context, invoiceID string, archivedAt time.Time) (*domain.ArchivedInvoice, error) {
	args := m.Called(ctx, invoiceID, archivedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedInvoice), args.Error(1)
}

func (m *MockInvoiceRepository) LatestInvoiceNumber(ctx context.Context, financialYear string) (string, error) {
	args := m.Called(ctx, financialYear)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	service  portssvc.InvoiceService
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	invoice := domain.Invoice{
		BuyerName:     "Acme Traders",
		InvoiceNumber: "01-2025-2026",
		FinancialYear: "2025-2026",
		InvoiceDate:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		TotalWithGST:  decimal.NewFromInt(11800),
	}

	suite.mockRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceID != "" && inv.BuyerName == "Acme Traders" && !inv.IsDeleted && !inv.CreatedAt.IsZero()
	})).Return(nil).Once()

	created, err := suite.service.CreateInvoice(ctx, invoice)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.InvoiceID)
	suite.Equal("01-2025-2026", created.InvoiceNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_MissingBuyerName() {
	ctx := context.Background()

	created, err := suite.service.CreateInvoice(ctx, domain.Invoice{BuyerName: "   "})

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestNextInvoiceNumber_FirstOfYear() {
	ctx := context.Background()

	suite.mockRepo.On("LatestInvoiceNumber", ctx, "2025-2026").Return("", nil).Once()

	number, err := suite.service.NextInvoiceNumber(ctx, "2025-2026")

	suite.Require().NoError(err)
	suite.Equal("01-2025-2026", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestNextInvoiceNumber_IncrementsNumericPrefix() {
	ctx := context.Background()

	suite.mockRepo.On("LatestInvoiceNumber", ctx, "2025-2026").Return("03-2025-2026", nil).Once()

	number, err := suite.service.NextInvoiceNumber(ctx, "2025-2026")

	suite.Require().NoError(err)
	suite.Equal("04-2025-2026", number)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestNextInvoiceNumber_RequiresFinancialYear() {
	ctx := context.Background()

	number, err := suite.service.NextInvoiceNumber(ctx, "")

	suite.Require().Error(err)
	suite.Empty(number)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "LatestInvoiceNumber", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCalculateInvoice_HomeStateSplitsGST() {
	ctx := context.Background()
	input := domain.InvoiceCalcInput{
		Country:    "India",
		State:      "Gujarat",
		BaseAmount: decimal.NewFromInt(10000),
	}

	result, err := suite.service.CalculateInvoice(ctx, input)

	suite.Require().NoError(err)
	suite.True(result.CGST.Equal(decimal.NewFromInt(900)))
	suite.True(result.SGST.Equal(decimal.NewFromInt(900)))
	suite.True(result.IGST.IsZero())
	suite.True(result.TaxTotal.Equal(decimal.NewFromInt(1800)))
	suite.True(result.TotalWithGST.Equal(decimal.NewFromInt(11800)))
}

func (suite *InvoiceServiceTestSuite) TestCalculateInvoice_OtherStateUsesIGST() {
	ctx := context.Background()
	input := domain.InvoiceCalcInput{
		Country:    "India",
		State:      "Maharashtra",
		BaseAmount: decimal.NewFromInt(10000),
	}

	result, err := suite.service.CalculateInvoice(ctx, input)

	suite.Require().NoError(err)
	suite.True(result.CGST.IsZero())
	suite.True(result.SGST.IsZero())
	suite.True(result.IGST.Equal(decimal.NewFromInt(1800)))
	suite.True(result.TotalWithGST.Equal(decimal.NewFromInt(11800)))
}

func (suite *InvoiceServiceTestSuite) TestCalculateInvoice_ExportSkipsGST() {
	ctx := context.Background()
	input := domain.InvoiceCalcInput{
		Country:      "USA",
		BaseAmount:   decimal.NewFromInt(1000),
		ExchangeRate: decimal.NewFromFloat(83.25),
	}

	result, err := suite.service.CalculateInvoice(ctx, input)

	suite.Require().NoError(err)
	suite.True(result.TaxTotal.IsZero())
	suite.True(result.TotalWithGST.Equal(decimal.NewFromInt(1000)))
	suite.Require().NotNil(result.INREquivalent)
	suite.True(result.INREquivalent.Equal(decimal.NewFromInt(83250)))
}

func (suite *InvoiceServiceTestSuite) TestCalculateInvoice_DerivesBaseFromHours() {
	ctx := context.Background()
	input := domain.InvoiceCalcInput{
		Country:    "India",
		State:      "Gujarat",
		TotalHours: decimal.NewFromInt(100),
		Rate:       decimal.NewFromInt(50),
	}

	result, err := suite.service.CalculateInvoice(ctx, input)

	suite.Require().NoError(err)
	suite.True(result.BaseAmount.Equal(decimal.NewFromInt(5000)))
	suite.True(result.TotalWithGST.Equal(decimal.NewFromInt(5900)))
}

func (suite *InvoiceServiceTestSuite) TestCalculateInvoice_FillsNextInvoiceNumber() {
	ctx := context.Background()
	input := domain.InvoiceCalcInput{
		Country:       "India",
		State:         "Gujarat",
		BaseAmount:    decimal.NewFromInt(10000),
		FinancialYear: "2025-2026",
	}

	suite.mockRepo.On("LatestInvoiceNumber", ctx, "2025-2026").Return("07-2025-2026", nil).Once()

	result, err := suite.service.CalculateInvoice(ctx, input)

	suite.Require().NoError(err)
	suite.Equal("08-2025-2026", result.InvoiceNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_SoftDeletes() {
	ctx := context.Background()
	existing := &domain.Invoice{InvoiceID: "inv-1", BuyerName: "Acme"}

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-1").Return(existing, nil).Once()
	suite.mockRepo.On("MarkInvoiceDeleted", ctx, "inv-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, "inv-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindInvoiceByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteInvoice(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkInvoiceDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_PreservesCreatedAt() {
	ctx := context.Background()
	createdAt := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.Invoice{InvoiceID: "inv-1", BuyerName: "Acme", CreatedAt: createdAt}

	suite.mockRepo.On("FindInvoiceByID", ctx, "inv-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.CreatedAt.Equal(createdAt) && inv.UpdatedAt.After(createdAt)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateInvoice(ctx, domain.Invoice{InvoiceID: "inv-1", BuyerName: "Acme Traders"})

	suite.Require().NoError(err)
	suite.Equal("Acme Traders", updated.BuyerName)
	suite.True(updated.CreatedAt.Equal(createdAt))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestArchiveInvoice_Success() {
	ctx := context.Background()
	archived := &domain.ArchivedInvoice{ArchiveID: "arc-1", InvoiceID: "inv-1", BuyerName: "Acme"}

	suite.mockRepo.On("ArchiveInvoice", ctx, "inv-1", mock.AnythingOfType("time.Time")).Return(archived, nil).Once()

	result, err := suite.service.ArchiveInvoice(ctx, "inv-1")

	suite.Require().NoError(err)
	suite.Equal("arc-1", result.ArchiveID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
