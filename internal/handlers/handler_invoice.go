package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/dto"
	"github.com/karobar/karobar_backend/internal/middleware"
)

// invoiceHandler handles invoice lifecycle requests.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceService
}

func newInvoiceHandler(is portssvc.InvoiceService) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers invoice routes.
func registerInvoiceRoutes(rg *gin.RouterGroup, is portssvc.InvoiceService) {
	h := newInvoiceHandler(is)

	group := rg.Group("/invoices")
	{
		group.POST("", h.createInvoice)
		group.GET("", h.listInvoices)
		group.GET("/deleted", h.listDeletedInvoices)
		group.GET("/next-number", h.nextInvoiceNumber)
		group.POST("/calculate", h.calculateInvoice)
		group.GET("/:invoice_id", h.getInvoice)
		group.PUT("/:invoice_id", h.updateInvoice)
		group.DELETE("/:invoice_id", h.deleteInvoice)
		group.POST("/:invoice_id/restore", h.restoreInvoice)
		group.POST("/:invoice_id/archive", h.archiveInvoice)
	}
}

// createInvoice godoc
// @Summary Create an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} domain.Invoice
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists active invoices, optionally filtered by financial year
// @Tags invoices
// @Produce json
// @Param financial_year query string false "Fiscal year (YYYY-YYYY)"
// @Success 200 {array} domain.Invoice
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), c.Query("financial_year"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// listDeletedInvoices godoc
// @Summary List soft-deleted invoices
// @Tags invoices
// @Produce json
// @Success 200 {array} domain.Invoice
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/deleted [get]
func (h *invoiceHandler) listDeletedInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoices, err := h.invoiceService.ListDeletedInvoices(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list deleted invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// nextInvoiceNumber godoc
// @Summary Next sequential invoice number
// @Tags invoices
// @Produce json
// @Param financial_year query string true "Fiscal year (YYYY-YYYY)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/next-number [get]
func (h *invoiceHandler) nextInvoiceNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	financialYear := c.Query("financial_year")
	if financialYear == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "financial_year is required"})
		return
	}

	number, err := h.invoiceService.NextInvoiceNumber(c.Request.Context(), financialYear)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to derive next invoice number")
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoiceNumber": number})
}

// calculateInvoice godoc
// @Summary Calculate GST breakdown
// @Description Computes GST (CGST/SGST or IGST) for the given figures; export invoices get no GST plus an optional INR equivalent
// @Tags invoices
// @Accept json
// @Produce json
// @Param input body dto.InvoiceCalcRequest true "Calculation input"
// @Success 200 {object} domain.InvoiceCalcResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/calculate [post]
func (h *invoiceHandler) calculateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvoiceCalcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.invoiceService.CalculateInvoice(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to calculate invoice")
		return
	}
	c.JSON(http.StatusOK, result)
}

// getInvoice godoc
// @Summary Fetch an invoice
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// updateInvoice godoc
// @Summary Update an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch invoice")
		return
	}

	req.ApplyTo(invoice)
	updated, err := h.invoiceService.UpdateInvoice(c.Request.Context(), *invoice)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteInvoice godoc
// @Summary Soft-delete an invoice
// @Description Moves the invoice to the deleted bucket. Its receivable is reclassified as an unsecured exposure on the balance sheet.
// @Tags invoices
// @Param invoice_id path string true "Invoice ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("invoice_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreInvoice godoc
// @Summary Restore a soft-deleted invoice
// @Tags invoices
// @Param invoice_id path string true "Invoice ID"
// @Success 204 "Restored"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id}/restore [post]
func (h *invoiceHandler) restoreInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.invoiceService.RestoreInvoice(c.Request.Context(), c.Param("invoice_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to restore invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

// archiveInvoice godoc
// @Summary Archive an invoice permanently
// @Description Moves the invoice out of the active book into the archive
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} domain.ArchivedInvoice
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoice_id}/archive [post]
func (h *invoiceHandler) archiveInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	archived, err := h.invoiceService.ArchiveInvoice(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to archive invoice")
		return
	}
	c.JSON(http.StatusOK, archived)
}
