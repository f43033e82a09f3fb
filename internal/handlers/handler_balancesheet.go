package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/core/domain"
	"github.com/karobar/karobar_backend/internal/dto"
	"github.com/karobar/karobar_backend/internal/middleware"
)

// balanceSheetHandler handles balance-sheet report, snapshot and settlement
// requests.
type balanceSheetHandler struct {
	balanceSheetService portssvc.BalanceSheetService
}

func newBalanceSheetHandler(bs portssvc.BalanceSheetService) *balanceSheetHandler {
	return &balanceSheetHandler{balanceSheetService: bs}
}

// RegisterBalanceSheetRoutes registers balance-sheet related routes.
func RegisterBalanceSheetRoutes(rg *gin.RouterGroup, bs portssvc.BalanceSheetService) {
	h := newBalanceSheetHandler(bs)

	group := rg.Group("/balance-sheet")
	{
		group.GET("", h.getBalanceSheet)
		group.POST("/snapshot", h.snapshotBalanceSheet)
		group.GET("/snapshot/:year", h.getSnapshot)
		group.GET("/settlement-status", h.getSettlementStatus)
	}
}

// resolveYear parses the optional financial_year query param, defaulting to
// the fiscal year containing today.
func (h *balanceSheetHandler) resolveYear(c *gin.Context) (domain.FiscalYear, bool) {
	var query dto.BalanceSheetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid financial_year, use YYYY-YYYY"})
		return domain.FiscalYear{}, false
	}
	if query.FinancialYear == "" {
		return domain.CurrentFiscalYear(time.Now()), true
	}
	year, err := domain.ParseFiscalYear(query.FinancialYear)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return domain.FiscalYear{}, false
	}
	return year, true
}

// getBalanceSheet godoc
// @Summary Compute the balance sheet
// @Description Computes the categorized balance sheet for a fiscal year from the live ledger
// @Tags balance-sheet
// @Produce json
// @Param financial_year query string false "Fiscal year (YYYY-YYYY)" default(current fiscal year)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance-sheet [get]
func (h *balanceSheetHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := h.resolveYear(c)
	if !ok {
		return
	}

	report, err := h.balanceSheetService.ComputeReport(c.Request.Context(), year)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceSheetResponse{
		FinancialYear: year.String(),
		Data:          *report,
	})
}

// snapshotBalanceSheet godoc
// @Summary Persist a balance-sheet snapshot
// @Description Computes the report and stores it keyed by the fiscal year's start year, replacing any previous snapshot
// @Tags balance-sheet
// @Produce json
// @Param financial_year query string false "Fiscal year (YYYY-YYYY)" default(current fiscal year)
// @Success 200 {object} domain.BalanceSheetSnapshot "Snapshot replaced"
// @Success 201 {object} domain.BalanceSheetSnapshot "Snapshot created"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance-sheet/snapshot [post]
func (h *balanceSheetHandler) snapshotBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := h.resolveYear(c)
	if !ok {
		return
	}

	snapshot, created, err := h.balanceSheetService.SnapshotReport(c.Request.Context(), year)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to snapshot balance sheet")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, snapshot)
}

// getSnapshot godoc
// @Summary Fetch a stored snapshot
// @Description Returns the persisted balance-sheet snapshot for a start year
// @Tags balance-sheet
// @Produce json
// @Param year path int true "Fiscal year start year (e.g. 2025)"
// @Success 200 {object} domain.BalanceSheetSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance-sheet/snapshot/{year} [get]
func (h *balanceSheetHandler) getSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
		return
	}

	snapshot, err := h.balanceSheetService.GetSnapshot(c.Request.Context(), year)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch snapshot")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// getSettlementStatus godoc
// @Summary Settlement diagnostic
// @Description Classifies every counterparty's net position for a fiscal year, including fully settled ones
// @Tags balance-sheet
// @Produce json
// @Param financial_year query string false "Fiscal year (YYYY-YYYY)" default(current fiscal year)
// @Success 200 {object} domain.SettlementReport
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance-sheet/settlement-status [get]
func (h *balanceSheetHandler) getSettlementStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, ok := h.resolveYear(c)
	if !ok {
		return
	}

	report, err := h.balanceSheetService.SettlementStatus(c.Request.Context(), year)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute settlement status")
		return
	}
	c.JSON(http.StatusOK, report)
}
