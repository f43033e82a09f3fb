package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/dto"
	"github.com/karobar/karobar_backend/internal/middleware"
)

// receiptHandler handles buyer receipt requests.
type receiptHandler struct {
	receiptService portssvc.BuyerReceiptService
}

func newReceiptHandler(rs portssvc.BuyerReceiptService) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers buyer receipt routes.
func registerReceiptRoutes(rg *gin.RouterGroup, rs portssvc.BuyerReceiptService) {
	h := newReceiptHandler(rs)

	group := rg.Group("/receipts")
	{
		group.POST("", h.createReceipt)
		group.GET("", h.listReceipts)
		group.GET("/:receipt_id", h.getReceipt)
		group.PUT("/:receipt_id", h.updateReceipt)
		group.DELETE("/:receipt_id", h.deleteReceipt)
	}
}

// createReceipt godoc
// @Summary Record a buyer receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} domain.BuyerReceipt
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create receipt")
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// listReceipts godoc
// @Summary List buyer receipts
// @Tags receipts
// @Produce json
// @Success 200 {array} domain.BuyerReceipt
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receipts, err := h.receiptService.ListReceipts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list receipts")
		return
	}
	c.JSON(http.StatusOK, receipts)
}

// getReceipt godoc
// @Summary Fetch a buyer receipt
// @Tags receipts
// @Produce json
// @Param receipt_id path string true "Receipt ID"
// @Success 200 {object} domain.BuyerReceipt
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{receipt_id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), c.Param("receipt_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch receipt")
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// updateReceipt godoc
// @Summary Update a buyer receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt_id path string true "Receipt ID"
// @Param receipt body dto.UpdateReceiptRequest true "Fields to update"
// @Success 200 {object} domain.BuyerReceipt
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{receipt_id} [put]
func (h *receiptHandler) updateReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), c.Param("receipt_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch receipt")
		return
	}

	req.ApplyTo(receipt)
	updated, err := h.receiptService.UpdateReceipt(c.Request.Context(), *receipt)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update receipt")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteReceipt godoc
// @Summary Delete a buyer receipt
// @Tags receipts
// @Param receipt_id path string true "Receipt ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{receipt_id} [delete]
func (h *receiptHandler) deleteReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.receiptService.DeleteReceipt(c.Request.Context(), c.Param("receipt_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete receipt")
		return
	}
	c.Status(http.StatusNoContent)
}
