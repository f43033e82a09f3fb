package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/dto"
	"github.com/karobar/karobar_backend/internal/middleware"
)

// bankingHandler handles bank book and cash book requests.
type bankingHandler struct {
	bankingService portssvc.BankingService
}

func newBankingHandler(bs portssvc.BankingService) *bankingHandler {
	return &bankingHandler{bankingService: bs}
}

// registerBankingRoutes registers bank account and cash entry routes.
func registerBankingRoutes(rg *gin.RouterGroup, bs portssvc.BankingService) {
	h := newBankingHandler(bs)

	banks := rg.Group("/bank-accounts")
	{
		banks.POST("", h.createBankAccount)
		banks.GET("", h.listBankAccounts)
		banks.GET("/:account_id", h.getBankAccount)
		banks.PUT("/:account_id", h.updateBankAccount)
		banks.DELETE("/:account_id", h.deleteBankAccount)
		banks.POST("/:account_id/restore", h.restoreBankAccount)
		banks.DELETE("/:account_id/purge", h.purgeBankAccount)
	}

	cash := rg.Group("/cash-entries")
	{
		cash.POST("", h.createCashEntry)
		cash.GET("", h.listCashEntries)
		cash.GET("/:entry_id", h.getCashEntry)
		cash.PUT("/:entry_id", h.updateCashEntry)
		cash.DELETE("/:entry_id", h.deleteCashEntry)
		cash.POST("/:entry_id/restore", h.restoreCashEntry)
		cash.DELETE("/:entry_id/purge", h.purgeCashEntry)
	}
}

// createBankAccount godoc
// @Summary Add a bank book entry
// @Tags banking
// @Accept json
// @Produce json
// @Param account body dto.CreateBankAccountRequest true "Account details"
// @Success 201 {object} domain.BankAccount
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts [post]
func (h *bankingHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.bankingService.CreateBankAccount(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create bank account")
		return
	}
	c.JSON(http.StatusCreated, account)
}

// listBankAccounts godoc
// @Summary List bank book entries
// @Tags banking
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted entries"
// @Success 200 {array} domain.BankAccount
// @Security BearerAuth
// @Router /bank-accounts [get]
func (h *bankingHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeDeleted := c.Query("include_deleted") == "true"
	accounts, err := h.bankingService.ListBankAccounts(c.Request.Context(), includeDeleted)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bank accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// getBankAccount godoc
// @Summary Fetch a bank book entry
// @Tags banking
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} domain.BankAccount
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts/{account_id} [get]
func (h *bankingHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account, err := h.bankingService.GetBankAccountByID(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch bank account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// updateBankAccount godoc
// @Summary Update a bank book entry
// @Tags banking
// @Accept json
// @Produce json
// @Param account_id path string true "Account ID"
// @Param account body dto.UpdateBankAccountRequest true "Fields to update"
// @Success 200 {object} domain.BankAccount
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts/{account_id} [put]
func (h *bankingHandler) updateBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.bankingService.GetBankAccountByID(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch bank account")
		return
	}

	req.ApplyTo(account)
	updated, err := h.bankingService.UpdateBankAccount(c.Request.Context(), *account)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update bank account")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteBankAccount godoc
// @Summary Soft-delete a bank book entry
// @Tags banking
// @Param account_id path string true "Account ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts/{account_id} [delete]
func (h *bankingHandler) deleteBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.bankingService.DeleteBankAccount(c.Request.Context(), c.Param("account_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete bank account")
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreBankAccount godoc
// @Summary Restore a soft-deleted bank book entry
// @Tags banking
// @Param account_id path string true "Account ID"
// @Success 204 "Restored"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts/{account_id}/restore [post]
func (h *bankingHandler) restoreBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.bankingService.RestoreBankAccount(c.Request.Context(), c.Param("account_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to restore bank account")
		return
	}
	c.Status(http.StatusNoContent)
}

// purgeBankAccount godoc
// @Summary Permanently delete a bank book entry
// @Tags banking
// @Param account_id path string true "Account ID"
// @Success 204 "Purged"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bank-accounts/{account_id}/purge [delete]
func (h *bankingHandler) purgeBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.bankingService.PurgeBankAccount(c.Request.Context(), c.Param("account_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to purge bank account")
		return
	}
	c.Status(http.StatusNoContent)
}

// createCashEntry godoc
// @Summary Add a cash book entry
// @Tags banking
// @Accept json
// @Produce json
// @Param entry body dto.CreateCashEntryRequest true "Entry details"
// @Success 201 {object} domain.CashEntry
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-entries [post]
func (h *bankingHandler) createCashEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.bankingService.CreateCashEntry(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create cash entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// listCashEntries godoc
// @Summary List cash book entries
// @Tags banking
// @Produce json
// @Param include_deleted query bool false "Include soft-deleted entries"
// @Success 200 {array} domain.CashEntry
// @Security BearerAuth
// @Router /cash-entries [get]
func (h *bankingHandler) listCashEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeDeleted := c.Query("include_deleted") == "true"
	entries, err := h.bankingService.ListCashEntries(c.Request.Context(), includeDeleted)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list cash entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// getCashEntry godoc
// @Summary Fetch a cash book entry
// @Tags banking
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} domain.CashEntry
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-entries/{entry_id} [get]
func (h *bankingHandler) getCashEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entry, err := h.bankingService.GetCashEntryByID(c.Request.Context(), c.Param("entry_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch cash entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// updateCashEntry godoc
// @Summary Update a cash book entry
// @Tags banking
// @Accept json
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Param entry body dto.UpdateCashEntryRequest true "Fields to update"
// @Success 200 {object} domain.CashEntry
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-entries/{entry_id} [put]
func (h *bankingHandler) updateCashEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.bankingService.GetCashEntryByID(c.Request.Context(), c.Param("entry_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch cash entry")
		return
	}

	req.ApplyTo(entry)
	updated, err := h.bankingService.UpdateCashEntry(c.Request.Context(), *entry)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update cash entry")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteCashEntry godoc
// @Summary Soft-delete a cash book entry
// @Tags banking
// @Param entry_id path string true "Entry ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-entries/{entry_id} [delete]
func (h *bankingHandler) deleteCashEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.bankingService.DeleteCashEntry(c.Request.Context(), c.Param("entry_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete cash entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreCashEntry godoc
// @Summary Restore a soft-deleted cash book entry
// @Tags banking
// @Param entry_id path string true "Entry ID"
// @Success 204 "Restored"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-entries/{entry_id}/restore [post]
func (h *bankingHandler) restoreCashEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.bankingService.RestoreCashEntry(c.Request.Context(), c.Param("entry_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to restore cash entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// purgeCashEntry godoc
// @Summary Permanently delete a cash book entry
// @Tags banking
// @Param entry_id path string true "Entry ID"
// @Success 204 "Purged"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cash-entries/{entry_id}/purge [delete]
func (h *bankingHandler) purgeCashEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.bankingService.PurgeCashEntry(c.Request.Context(), c.Param("entry_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to purge cash entry")
		return
	}
	c.Status(http.StatusNoContent)
}
