package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/dto"
	"github.com/karobar/karobar_backend/internal/middleware"
)

// billHandler handles company bill requests.
type billHandler struct {
	billService portssvc.CompanyBillService
}

func newBillHandler(bs portssvc.CompanyBillService) *billHandler {
	return &billHandler{billService: bs}
}

// registerBillRoutes registers company bill routes.
func registerBillRoutes(rg *gin.RouterGroup, bs portssvc.CompanyBillService) {
	h := newBillHandler(bs)

	group := rg.Group("/bills")
	{
		group.POST("", h.createBill)
		group.GET("", h.listBills)
		group.GET("/:bill_id", h.getBill)
		group.PUT("/:bill_id", h.updateBill)
		group.DELETE("/:bill_id", h.deleteBill)
	}
}

// createBill godoc
// @Summary Record a company bill
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} domain.CompanyBill
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create bill")
		return
	}
	c.JSON(http.StatusCreated, bill)
}

// listBills godoc
// @Summary List company bills
// @Tags bills
// @Produce json
// @Success 200 {array} domain.CompanyBill
// @Security BearerAuth
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bills, err := h.billService.ListBills(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, bills)
}

// getBill godoc
// @Summary Fetch a company bill
// @Tags bills
// @Produce json
// @Param bill_id path string true "Bill ID"
// @Success 200 {object} domain.CompanyBill
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{bill_id} [get]
func (h *billHandler) getBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bill, err := h.billService.GetBillByID(c.Request.Context(), c.Param("bill_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch bill")
		return
	}
	c.JSON(http.StatusOK, bill)
}

// updateBill godoc
// @Summary Update a company bill
// @Tags bills
// @Accept json
// @Produce json
// @Param bill_id path string true "Bill ID"
// @Param bill body dto.UpdateBillRequest true "Fields to update"
// @Success 200 {object} domain.CompanyBill
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{bill_id} [put]
func (h *billHandler) updateBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	bill, err := h.billService.GetBillByID(c.Request.Context(), c.Param("bill_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch bill")
		return
	}

	req.ApplyTo(bill)
	updated, err := h.billService.UpdateBill(c.Request.Context(), *bill)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update bill")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteBill godoc
// @Summary Delete a company bill
// @Tags bills
// @Param bill_id path string true "Bill ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{bill_id} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.billService.DeleteBill(c.Request.Context(), c.Param("bill_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete bill")
		return
	}
	c.Status(http.StatusNoContent)
}
