package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/dto"
	"github.com/karobar/karobar_backend/internal/middleware"
)

// otherTransactionHandler handles typed miscellaneous transaction requests.
type otherTransactionHandler struct {
	otherTxnService portssvc.OtherTransactionService
}

func newOtherTransactionHandler(os portssvc.OtherTransactionService) *otherTransactionHandler {
	return &otherTransactionHandler{otherTxnService: os}
}

// registerOtherTransactionRoutes registers other transaction and type tag routes.
func registerOtherTransactionRoutes(rg *gin.RouterGroup, os portssvc.OtherTransactionService) {
	h := newOtherTransactionHandler(os)

	txns := rg.Group("/other-transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:transaction_id", h.getTransaction)
		txns.PUT("/:transaction_id", h.updateTransaction)
		txns.DELETE("/:transaction_id", h.deleteTransaction)
	}

	types := rg.Group("/other-types")
	{
		types.POST("", h.createType)
		types.GET("", h.listTypes)
		types.DELETE("/:type_id", h.deleteType)
	}
}

// createTransaction godoc
// @Summary Record a typed transaction
// @Description Records a transaction under a reserved tag (partner, loan, unsecure loan, fixed assets) or a user-defined one
// @Tags other-transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateOtherTransactionRequest true "Transaction details"
// @Success 201 {object} domain.OtherTransaction
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /other-transactions [post]
func (h *otherTransactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOtherTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.otherTxnService.CreateOtherTransaction(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, txn)
}

// listTransactions godoc
// @Summary List typed transactions
// @Tags other-transactions
// @Produce json
// @Success 200 {array} domain.OtherTransaction
// @Security BearerAuth
// @Router /other-transactions [get]
func (h *otherTransactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txns, err := h.otherTxnService.ListOtherTransactions(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// getTransaction godoc
// @Summary Fetch a typed transaction
// @Tags other-transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} domain.OtherTransaction
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /other-transactions/{transaction_id} [get]
func (h *otherTransactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txn, err := h.otherTxnService.GetOtherTransactionByID(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// updateTransaction godoc
// @Summary Update a typed transaction
// @Tags other-transactions
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param transaction body dto.UpdateOtherTransactionRequest true "Fields to update"
// @Success 200 {object} domain.OtherTransaction
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /other-transactions/{transaction_id} [put]
func (h *otherTransactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateOtherTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.otherTxnService.GetOtherTransactionByID(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch transaction")
		return
	}

	req.ApplyTo(txn)
	updated, err := h.otherTxnService.UpdateOtherTransaction(c.Request.Context(), *txn)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteTransaction godoc
// @Summary Delete a typed transaction
// @Tags other-transactions
// @Param transaction_id path string true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /other-transactions/{transaction_id} [delete]
func (h *otherTransactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.otherTxnService.DeleteOtherTransaction(c.Request.Context(), c.Param("transaction_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// createType godoc
// @Summary Add a user-defined type tag
// @Tags other-transactions
// @Accept json
// @Produce json
// @Param type body dto.CreateOtherTypeRequest true "Type tag"
// @Success 201 {object} domain.OtherType
// @Failure 409 {object} ErrorResponse "Tag already exists"
// @Security BearerAuth
// @Router /other-types [post]
func (h *otherTransactionHandler) createType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOtherTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	t, err := h.otherTxnService.CreateOtherType(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create type")
		return
	}
	c.JSON(http.StatusCreated, t)
}

// listTypes godoc
// @Summary List user-defined type tags
// @Tags other-transactions
// @Produce json
// @Success 200 {array} domain.OtherType
// @Security BearerAuth
// @Router /other-types [get]
func (h *otherTransactionHandler) listTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	types, err := h.otherTxnService.ListOtherTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list types")
		return
	}
	c.JSON(http.StatusOK, types)
}

// deleteType godoc
// @Summary Delete a user-defined type tag
// @Tags other-transactions
// @Param type_id path string true "Type ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /other-types/{type_id} [delete]
func (h *otherTransactionHandler) deleteType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.otherTxnService.DeleteOtherType(c.Request.Context(), c.Param("type_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete type")
		return
	}
	c.Status(http.StatusNoContent)
}
