package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/karobar/karobar_backend/internal/apperrors"
)

// FiscalYear identifies an Indian financial year running April 1 through March 31,
// written as "start_year-end_year" (e.g. "2024-2025").
type FiscalYear struct {
	StartYear int
	EndYear   int
}

// ParseFiscalYear parses a "YYYY-YYYY" token into a FiscalYear.
// The error wraps apperrors.ErrValidation so handlers can map it to a 400.
func ParseFiscalYear(token string) (FiscalYear, error) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return FiscalYear{}, fmt.Errorf("%w: invalid financial_year format %q, use YYYY-YYYY", apperrors.ErrValidation, token)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return FiscalYear{}, fmt.Errorf("%w: invalid financial_year format %q, use YYYY-YYYY", apperrors.ErrValidation, token)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return FiscalYear{}, fmt.Errorf("%w: invalid financial_year format %q, use YYYY-YYYY", apperrors.ErrValidation, token)
	}
	return FiscalYear{StartYear: start, EndYear: end}, nil
}

// CurrentFiscalYear derives the fiscal year containing the given instant.
// April onwards belongs to the year starting that April; January-March belong
// to the year that started the previous April.
func CurrentFiscalYear(now time.Time) FiscalYear {
	start := now.Year()
	if now.Month() < time.April {
		start = now.Year() - 1
	}
	return FiscalYear{StartYear: start, EndYear: start + 1}
}

// Start returns April 1 of the start year (UTC, midnight).
func (fy FiscalYear) Start() time.Time {
	return time.Date(fy.StartYear, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// End returns March 31 of the end year. The window is inclusive of this date.
func (fy FiscalYear) End() time.Time {
	return time.Date(fy.EndYear, time.March, 31, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the given date falls inside the fiscal year window.
func (fy FiscalYear) Contains(d time.Time) bool {
	return !d.Before(fy.Start()) && !d.After(fy.End())
}

func (fy FiscalYear) String() string {
	return fmt.Sprintf("%d-%d", fy.StartYear, fy.EndYear)
}
