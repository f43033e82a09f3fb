package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/karobar/karobar_backend/internal/core/domain"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/dto"
	"github.com/karobar/karobar_backend/internal/handlers"
)

// --- Mock BalanceSheetService ---
type MockBalanceSheetService struct {
	mock.Mock
}

func (m *MockBalanceSheetService) ComputeReport(ctx context.Context, year domain.FiscalYear) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *MockBalanceSheetService) SnapshotReport(ctx context.Context, year domain.FiscalYear) (*domain.BalanceSheetSnapshot, bool, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.BalanceSheetSnapshot), args.Bool(1), args.Error(2)
}

func (m *MockBalanceSheetService) GetSnapshot(ctx context.Context, startYear int) (*domain.BalanceSheetSnapshot, error) {
	args := m.Called(ctx, startYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetSnapshot), args.Error(1)
}

func (m *MockBalanceSheetService) SettlementStatus(ctx context.Context, year domain.FiscalYear) (*domain.SettlementReport, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementReport), args.Error(1)
}

var _ portssvc.BalanceSheetService = (*MockBalanceSheetService)(nil)

// --- Test Suite ---
type BalanceSheetHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockBalanceSheetService
}

func (suite *BalanceSheetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
	suite.router = gin.New()
	suite.mockService = new(MockBalanceSheetService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterBalanceSheetRoutes(v1, suite.mockService)
}

// --- Test Cases ---

func (suite *BalanceSheetHandlerTestSuite) TestGetBalanceSheet_WrapsReportWithFinancialYear() {
	year := domain.FiscalYear{StartYear: 2025, EndYear: 2026}
	report := &domain.BalanceSheetReport{
		SundryDebtorsCreditors: []domain.SundryEntry{
			{Name: "Acme Traders", Amount: decimal.NewFromInt(3800), Type: domain.SettlementDebtor},
		},
	}
	suite.mockService.On("ComputeReport", mock.Anything, year).Return(report, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/balance-sheet?financial_year=2025-2026", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		FinancialYear string          `json:"financial_year"`
		Data          json.RawMessage `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2025-2026", body.FinancialYear)
	suite.Require().NotEmpty(body.Data)

	var data domain.BalanceSheetReport
	suite.Require().NoError(json.Unmarshal(body.Data, &data))
	suite.Require().Len(data.SundryDebtorsCreditors, 1)
	suite.Equal("Acme Traders", data.SundryDebtorsCreditors[0].Name)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BalanceSheetHandlerTestSuite) TestGetBalanceSheet_InvalidYearRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/balance-sheet?financial_year=20x5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ComputeReport", mock.Anything, mock.Anything)
}

func TestBalanceSheetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceSheetHandlerTestSuite))
}
