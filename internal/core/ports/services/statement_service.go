package services

import (
	"context"
	"time"

	"github.com/karobar/karobar_backend/internal/core/domain"
)

// StatementService builds per-counterparty account statements with a running
// balance.
type StatementService interface {
	AccountStatement(ctx context.Context, name string, from, to *time.Time) (*domain.AccountStatement, error)
}
