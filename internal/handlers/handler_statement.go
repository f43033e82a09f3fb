package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/dto"
	"github.com/karobar/karobar_backend/internal/middleware"
)

// statementHandler handles account statement requests.
type statementHandler struct {
	statementService portssvc.StatementService
}

func newStatementHandler(ss portssvc.StatementService) *statementHandler {
	return &statementHandler{statementService: ss}
}

// registerStatementRoutes registers the account statement route.
func registerStatementRoutes(rg *gin.RouterGroup, ss portssvc.StatementService) {
	h := newStatementHandler(ss)
	rg.GET("/statement", h.getStatement)
}

// getStatement godoc
// @Summary Counterparty account statement
// @Description Merges invoices, receipts, bills and typed transactions for one counterparty into a chronological statement with a running balance
// @Tags statement
// @Produce json
// @Param name query string true "Counterparty name"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.AccountStatement
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /statement [get]
func (h *statementHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.StatementQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name is required; dates use YYYY-MM-DD"})
		return
	}

	var from, to *time.Time
	if query.From != "" {
		t, _ := time.Parse("2006-01-02", query.From)
		from = &t
	}
	if query.To != "" {
		t, _ := time.Parse("2006-01-02", query.To)
		to = &t
	}

	statement, err := h.statementService.AccountStatement(c.Request.Context(), query.Name, from, to)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}
