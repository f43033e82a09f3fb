package dto

import "github.com/karobar/karobar_backend/internal/core/domain"

// BalanceSheetQuery defines the query parameters for report endpoints. An
// empty financial year means the current one.
type BalanceSheetQuery struct {
	FinancialYear string `form:"financial_year" binding:"omitempty,finyear"`
}

// BalanceSheetResponse wraps a computed report with the fiscal year it covers.
type BalanceSheetResponse struct {
	FinancialYear string                    `json:"financial_year"`
	Data          domain.BalanceSheetReport `json:"data"`
}

// StatementQuery defines the query parameters for the account statement
// endpoint. Dates are YYYY-MM-DD.
type StatementQuery struct {
	Name string `form:"name" binding:"required"`
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}
