package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
)

// otherTransactionService implements the OtherTransactionService interface
type otherTransactionService struct {
	BaseService
	txnRepo  portsrepo.OtherTransactionRepository
	typeRepo portsrepo.OtherTypeRepository
}

// NewOtherTransactionService creates a new other transaction service
func NewOtherTransactionService(txnRepo portsrepo.OtherTransactionRepository, typeRepo portsrepo.OtherTypeRepository) portssvc.OtherTransactionService {
	return &otherTransactionService{
		txnRepo:  txnRepo,
		typeRepo: typeRepo,
	}
}

var _ portssvc.OtherTransactionService = (*otherTransactionService)(nil)

func (s *otherTransactionService) CreateOtherTransaction(ctx context.Context, txn domain.OtherTransaction) (*domain.OtherTransaction, error) {
	if strings.TrimSpace(txn.Type) == "" {
		return nil, fmt.Errorf("transaction type is required: %w", apperrors.ErrValidation)
	}
	if txn.TransactionType != domain.Credit && txn.TransactionType != domain.Debit {
		return nil, fmt.Errorf("transaction_type must be credit or debit: %w", apperrors.ErrValidation)
	}
	if txn.TransactionID == "" {
		txn.TransactionID = uuid.NewString()
	}
	if err := s.txnRepo.SaveOtherTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", txn.Type))
	return &txn, nil
}

func (s *otherTransactionService) GetOtherTransactionByID(ctx context.Context, transactionID string) (*domain.OtherTransaction, error) {
	txn, err := s.txnRepo.FindOtherTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *otherTransactionService) ListOtherTransactions(ctx context.Context) ([]domain.OtherTransaction, error) {
	txns, err := s.txnRepo.ListOtherTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *otherTransactionService) UpdateOtherTransaction(ctx context.Context, txn domain.OtherTransaction) (*domain.OtherTransaction, error) {
	if _, err := s.txnRepo.FindOtherTransactionByID(ctx, txn.TransactionID); err != nil {
		return nil, err
	}
	if err := s.txnRepo.UpdateOtherTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return &txn, nil
}

func (s *otherTransactionService) DeleteOtherTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteOtherTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *otherTransactionService) CreateOtherType(ctx context.Context, t domain.OtherType) (*domain.OtherType, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return nil, fmt.Errorf("type name is required: %w", apperrors.ErrValidation)
	}

	existing, err := s.typeRepo.ListOtherTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transaction types")
		return nil, fmt.Errorf("failed to list types: %w", err)
	}
	for _, e := range existing {
		if strings.EqualFold(strings.TrimSpace(e.Name), name) {
			return nil, fmt.Errorf("type %q already exists: %w", name, apperrors.ErrDuplicate)
		}
	}

	t.Name = name
	if t.TypeID == "" {
		t.TypeID = uuid.NewString()
	}
	if err := s.typeRepo.SaveOtherType(ctx, t); err != nil {
		s.LogError(ctx, err, "Failed to save transaction type", slog.String("type_id", t.TypeID))
		return nil, fmt.Errorf("failed to save type: %w", err)
	}
	s.LogInfo(ctx, "Transaction type created", slog.String("type_id", t.TypeID), slog.String("name", t.Name))
	return &t, nil
}

func (s *otherTransactionService) ListOtherTypes(ctx context.Context) ([]domain.OtherType, error) {
	types, err := s.typeRepo.ListOtherTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transaction types")
		return nil, fmt.Errorf("failed to list types: %w", err)
	}
	return types, nil
}

func (s *otherTransactionService) DeleteOtherType(ctx context.Context, typeID string) error {
	if err := s.typeRepo.DeleteOtherType(ctx, typeID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction type", slog.String("type_id", typeID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction type deleted", slog.String("type_id", typeID))
	return nil
}
