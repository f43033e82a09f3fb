package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/internal/dto"
	"github.com/karobar/karobar_backend/internal/middleware"
)

// payrollHandler handles employee and salary requests.
type payrollHandler struct {
	payrollService portssvc.PayrollService
}

func newPayrollHandler(ps portssvc.PayrollService) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

// registerPayrollRoutes registers employee and salary routes.
func registerPayrollRoutes(rg *gin.RouterGroup, ps portssvc.PayrollService) {
	h := newPayrollHandler(ps)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/deleted", h.listDeletedEmployees)
		employees.GET("/:employee_id", h.getEmployee)
		employees.PUT("/:employee_id", h.updateEmployee)
		employees.DELETE("/:employee_id", h.deleteEmployee)
		employees.POST("/:employee_id/restore", h.restoreEmployee)
		employees.GET("/:employee_id/actions", h.listEmployeeActions)
	}

	salaries := rg.Group("/salaries")
	{
		salaries.POST("", h.paySalary)
		salaries.GET("", h.listSalaries)
		salaries.DELETE("/:salary_id", h.deleteSalary)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Tags payroll
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *payrollHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	employee, err := h.payrollService.CreateEmployee(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// listEmployees godoc
// @Summary List active employees
// @Tags payroll
// @Produce json
// @Success 200 {array} domain.Employee
// @Security BearerAuth
// @Router /employees [get]
func (h *payrollHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employees, err := h.payrollService.ListEmployees(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// listDeletedEmployees godoc
// @Summary List soft-deleted employees
// @Tags payroll
// @Produce json
// @Success 200 {array} domain.Employee
// @Security BearerAuth
// @Router /employees/deleted [get]
func (h *payrollHandler) listDeletedEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employees, err := h.payrollService.ListDeletedEmployees(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list deleted employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// getEmployee godoc
// @Summary Fetch an employee
// @Tags payroll
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employee_id} [get]
func (h *payrollHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employee, err := h.payrollService.GetEmployeeByID(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags payroll
// @Accept json
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employee_id} [put]
func (h *payrollHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	employee, err := h.payrollService.GetEmployeeByID(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch employee")
		return
	}

	req.ApplyTo(employee)
	updated, err := h.payrollService.UpdateEmployee(c.Request.Context(), *employee)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteEmployee godoc
// @Summary Soft-delete an employee
// @Tags payroll
// @Param employee_id path string true "Employee ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employee_id} [delete]
func (h *payrollHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.payrollService.DeleteEmployee(c.Request.Context(), c.Param("employee_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreEmployee godoc
// @Summary Restore a soft-deleted employee
// @Tags payroll
// @Param employee_id path string true "Employee ID"
// @Success 204 "Restored"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employee_id}/restore [post]
func (h *payrollHandler) restoreEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.payrollService.RestoreEmployee(c.Request.Context(), c.Param("employee_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to restore employee")
		return
	}
	c.Status(http.StatusNoContent)
}

// listEmployeeActions godoc
// @Summary Employee audit trail
// @Tags payroll
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {array} domain.EmployeeAction
// @Security BearerAuth
// @Router /employees/{employee_id}/actions [get]
func (h *payrollHandler) listEmployeeActions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actions, err := h.payrollService.ListEmployeeActions(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list employee actions")
		return
	}
	c.JSON(http.StatusOK, actions)
}

// paySalary godoc
// @Summary Record a salary payment
// @Tags payroll
// @Accept json
// @Produce json
// @Param salary body dto.PaySalaryRequest true "Salary details"
// @Success 201 {object} domain.Salary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /salaries [post]
func (h *payrollHandler) paySalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PaySalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	salary, err := h.payrollService.PaySalary(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record salary")
		return
	}
	c.JSON(http.StatusCreated, salary)
}

// listSalaries godoc
// @Summary List salary payments
// @Tags payroll
// @Produce json
// @Success 200 {array} domain.Salary
// @Security BearerAuth
// @Router /salaries [get]
func (h *payrollHandler) listSalaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	salaries, err := h.payrollService.ListSalaries(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list salaries")
		return
	}
	c.JSON(http.StatusOK, salaries)
}

// deleteSalary godoc
// @Summary Delete a salary payment
// @Tags payroll
// @Param salary_id path string true "Salary ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /salaries/{salary_id} [delete]
func (h *payrollHandler) deleteSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.payrollService.DeleteSalary(c.Request.Context(), c.Param("salary_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete salary")
		return
	}
	c.Status(http.StatusNoContent)
}
