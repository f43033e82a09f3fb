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

// --- Mock BuyerReceiptRepository ---
type MockBuyerReceiptRepository struct {
	mock.Mock
}

func (m *MockBuyerReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.BuyerReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockBuyerReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.BuyerReceipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BuyerReceipt), args.Error(1)
}

func (m *MockBuyerReceiptRepository) ListReceipts(ctx context.Context) ([]domain.BuyerReceipt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BuyerReceipt), args.Error(1)
}

func (m *MockBuyerReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.BuyerReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockBuyerReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	args := m.Called(ctx, receiptID)
	return args.Error(0)
}

// --- Mock CompanyBillRepository ---
type MockCompanyBillRepository struct {
	mock.Mock
}

func (m *MockCompanyBillRepository) SaveBill(ctx context.Context, bill domain.CompanyBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockCompanyBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.CompanyBill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyBill), args.Error(1)
}

func (m *MockCompanyBillRepository) ListBills(ctx context.Context) ([]domain.CompanyBill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyBill), args.Error(1)
}

func (m *MockCompanyBillRepository) UpdateBill(ctx context.Context, bill domain.CompanyBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockCompanyBillRepository) DeleteBill(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

// --- Mock OtherTransactionRepository ---
type MockOtherTransactionRepository struct {
	mock.Mock
}

func (m *MockOtherTransactionRepository) SaveOtherTransaction(ctx context.Context, txn domain.OtherTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockOtherTransactionRepository) FindOtherTransactionByID(ctx context.Context, transactionID string) (*domain.OtherTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OtherTransaction), args.Error(1)
}

func (m *MockOtherTransactionRepository) ListOtherTransactions(ctx context.Context) ([]domain.OtherTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OtherTransaction), args.Error(1)
}

func (m *MockOtherTransactionRepository) UpdateOtherTransaction(ctx context.Context, txn domain.OtherTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockOtherTransactionRepository) DeleteOtherTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type StatementServiceTestSuite struct {
	suite.Suite
	mockInvoices *MockInvoiceRepository
	mockReceipts *MockBuyerReceiptRepository
	mockBills    *MockCompanyBillRepository
	mockTxns     *MockOtherTransactionRepository
	service      portssvc.StatementService
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockInvoices = new(MockInvoiceRepository)
	suite.mockReceipts = new(MockBuyerReceiptRepository)
	suite.mockBills = new(MockCompanyBillRepository)
	suite.mockTxns = new(MockOtherTransactionRepository)
	suite.service = services.NewStatementService(suite.mockInvoices, suite.mockReceipts, suite.mockBills, suite.mockTxns)
}

func (suite *StatementServiceTestSuite) expectSources(invoices []domain.Invoice, receipts []domain.BuyerReceipt, bills []domain.CompanyBill, txns []domain.OtherTransaction) {
	suite.mockInvoices.On("ListInvoices", mock.Anything, "").Return(invoices, nil).Once()
	suite.mockReceipts.On("ListReceipts", mock.Anything).Return(receipts, nil).Once()
	suite.mockBills.On("ListBills", mock.Anything).Return(bills, nil).Once()
	suite.mockTxns.On("ListOtherTransactions", mock.Anything).Return(txns, nil).Once()
}

func statementDate(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 0, 0, 0, 0, time.UTC)
}

// --- Test Cases ---

func (suite *StatementServiceTestSuite) TestAccountStatement_MergesSourcesChronologically() {
	ctx := context.Background()
	suite.expectSources(
		[]domain.Invoice{{
			InvoiceID:     "inv-1",
			BuyerName:     "Acme Traders",
			InvoiceNumber: "01-2025-2026",
			InvoiceDate:   statementDate(time.June, 1),
			TotalWithGST:  decimal.NewFromInt(11800),
		}},
		[]domain.BuyerReceipt{{
			ReceiptID: "rcpt-1",
			Name:      "Acme Traders",
			Date:      statementDate(time.July, 1),
			Amount:    decimal.NewFromInt(5000),
		}},
		[]domain.CompanyBill{{
			BillID:  "bill-1",
			Company: "Acme Traders",
			Date:    statementDate(time.August, 1),
			Notice:  "Adjustment",
			Amount:  decimal.NewFromInt(3000),
		}},
		[]domain.OtherTransaction{{
			TransactionID:   "txn-1",
			Type:            "misc",
			Name:            "Acme Traders",
			Date:            statementDate(time.September, 1),
			Amount:          decimal.NewFromInt(200),
			TransactionType: domain.Debit,
		}},
	)

	statement, err := suite.service.AccountStatement(ctx, "Acme Traders", nil, nil)

	suite.Require().NoError(err)
	suite.Equal("Acme Traders", statement.BuyerName)
	suite.Require().Len(statement.Entries, 4)

	suite.Equal("01-2025-2026", statement.Entries[0].Description)
	suite.Equal("Invoice", statement.Entries[0].Type)
	suite.True(statement.Entries[0].Balance.Equal(decimal.NewFromInt(-11800)))

	suite.Equal("Deposit", statement.Entries[1].Type)
	suite.True(statement.Entries[1].Balance.Equal(decimal.NewFromInt(-6800)))

	suite.Equal("Adjustment", statement.Entries[2].Description)
	suite.True(statement.Entries[2].Balance.Equal(decimal.NewFromInt(-3800)))

	suite.Equal("Other", statement.Entries[3].Type)
	suite.True(statement.Entries[3].Balance.Equal(decimal.NewFromInt(-4000)))

	suite.True(statement.TotalDebit.Equal(decimal.NewFromInt(12000)))
	suite.True(statement.TotalCredit.Equal(decimal.NewFromInt(8000)))
	suite.True(statement.TotalBalance.Equal(decimal.NewFromInt(-4000)))
}

func (suite *StatementServiceTestSuite) TestAccountStatement_SkipsDeletedInvoicesAndOtherNames() {
	ctx := context.Background()
	suite.expectSources(
		[]domain.Invoice{
			{
				InvoiceID:     "inv-1",
				BuyerName:     "Acme Traders",
				InvoiceNumber: "01-2025-2026",
				InvoiceDate:   statementDate(time.June, 1),
				TotalWithGST:  decimal.NewFromInt(1000),
				IsDeleted:     true,
			},
			{
				InvoiceID:     "inv-2",
				BuyerName:     "Someone Else",
				InvoiceNumber: "02-2025-2026",
				InvoiceDate:   statementDate(time.June, 2),
				TotalWithGST:  decimal.NewFromInt(2000),
			},
		},
		[]domain.BuyerReceipt{{
			ReceiptID: "rcpt-1",
			Name:      "  Acme Traders  ",
			Date:      statementDate(time.July, 1),
			Amount:    decimal.NewFromInt(500),
		}},
		nil,
		nil,
	)

	statement, err := suite.service.AccountStatement(ctx, "Acme Traders", nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(statement.Entries, 1)
	suite.Equal("Deposit", statement.Entries[0].Type)
}

func (suite *StatementServiceTestSuite) TestAccountStatement_FiltersByDateRange() {
	ctx := context.Background()
	suite.expectSources(
		[]domain.Invoice{
			{InvoiceID: "inv-1", BuyerName: "Acme", InvoiceNumber: "01", InvoiceDate: statementDate(time.April, 1), TotalWithGST: decimal.NewFromInt(100)},
			{InvoiceID: "inv-2", BuyerName: "Acme", InvoiceNumber: "02", InvoiceDate: statementDate(time.June, 1), TotalWithGST: decimal.NewFromInt(200)},
			{InvoiceID: "inv-3", BuyerName: "Acme", InvoiceNumber: "03", InvoiceDate: statementDate(time.September, 1), TotalWithGST: decimal.NewFromInt(300)},
		},
		nil, nil, nil,
	)

	from := statementDate(time.May, 1)
	to := statementDate(time.July, 1)
	statement, err := suite.service.AccountStatement(ctx, "Acme", &from, &to)

	suite.Require().NoError(err)
	suite.Require().Len(statement.Entries, 1)
	suite.Equal("02", statement.Entries[0].Description)
	suite.True(statement.TotalDebit.Equal(decimal.NewFromInt(200)))
}

func (suite *StatementServiceTestSuite) TestAccountStatement_RequiresName() {
	ctx := context.Background()

	statement, err := suite.service.AccountStatement(ctx, "   ", nil, nil)

	suite.Require().Error(err)
	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoices.AssertNotCalled(suite.T(), "ListInvoices", mock.Anything, mock.Anything)
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
