package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
)

// buyerReceiptService implements the BuyerReceiptService interface
type buyerReceiptService struct {
	BaseService
	receiptRepo portsrepo.BuyerReceiptRepository
}

// NewBuyerReceiptService creates a new buyer receipt service
func NewBuyerReceiptService(repo portsrepo.BuyerReceiptRepository) portssvc.BuyerReceiptService {
	return &buyerReceiptService{receiptRepo: repo}
}

var _ portssvc.BuyerReceiptService = (*buyerReceiptService)(nil)

func (s *buyerReceiptService) CreateReceipt(ctx context.Context, receipt domain.BuyerReceipt) (*domain.BuyerReceipt, error) {
	if strings.TrimSpace(receipt.Name) == "" {
		return nil, fmt.Errorf("buyer name is required: %w", apperrors.ErrValidation)
	}
	if receipt.ReceiptID == "" {
		receipt.ReceiptID = uuid.NewString()
	}
	receipt.CreatedAt = time.Now().UTC()

	if err := s.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
		s.LogError(ctx, err, "Failed to save buyer receipt", slog.String("receipt_id", receipt.ReceiptID))
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}
	s.LogInfo(ctx, "Buyer receipt created",
		slog.String("receipt_id", receipt.ReceiptID),
		slog.String("name", receipt.Name))
	return &receipt, nil
}

func (s *buyerReceiptService) GetReceiptByID(ctx context.Context, receiptID string) (*domain.BuyerReceipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch buyer receipt", slog.String("receipt_id", receiptID))
		}
		return nil, err
	}
	return receipt, nil
}

func (s *buyerReceiptService) ListReceipts(ctx context.Context) ([]domain.BuyerReceipt, error) {
	receipts, err := s.receiptRepo.ListReceipts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list buyer receipts")
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return receipts, nil
}

func (s *buyerReceiptService) UpdateReceipt(ctx context.Context, receipt domain.BuyerReceipt) (*domain.BuyerReceipt, error) {
	if _, err := s.receiptRepo.FindReceiptByID(ctx, receipt.ReceiptID); err != nil {
		return nil, err
	}
	if err := s.receiptRepo.UpdateReceipt(ctx, receipt); err != nil {
		s.LogError(ctx, err, "Failed to update buyer receipt", slog.String("receipt_id", receipt.ReceiptID))
		return nil, fmt.Errorf("failed to update receipt: %w", err)
	}
	return &receipt, nil
}

func (s *buyerReceiptService) DeleteReceipt(ctx context.Context, receiptID string) error {
	if err := s.receiptRepo.DeleteReceipt(ctx, receiptID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete buyer receipt", slog.String("receipt_id", receiptID))
		}
		return err
	}
	s.LogInfo(ctx, "Buyer receipt deleted", slog.String("receipt_id", receiptID))
	return nil
}

// companyBillService implements the CompanyBillService interface
type companyBillService struct {
	BaseService
	billRepo portsrepo.CompanyBillRepository
}

// NewCompanyBillService creates a new company bill service
func NewCompanyBillService(repo portsrepo.CompanyBillRepository) portssvc.CompanyBillService {
	return &companyBillService{billRepo: repo}
}

var _ portssvc.CompanyBillService = (*companyBillService)(nil)

func (s *companyBillService) CreateBill(ctx context.Context, bill domain.CompanyBill) (*domain.CompanyBill, error) {
	if strings.TrimSpace(bill.Company) == "" {
		return nil, fmt.Errorf("company name is required: %w", apperrors.ErrValidation)
	}
	if bill.BillID == "" {
		bill.BillID = uuid.NewString()
	}
	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to save company bill", slog.String("bill_id", bill.BillID))
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}
	s.LogInfo(ctx, "Company bill created",
		slog.String("bill_id", bill.BillID),
		slog.String("company", bill.Company))
	return &bill, nil
}

func (s *companyBillService) GetBillByID(ctx context.Context, billID string) (*domain.CompanyBill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch company bill", slog.String("bill_id", billID))
		}
		return nil, err
	}
	return bill, nil
}

func (s *companyBillService) ListBills(ctx context.Context) ([]domain.CompanyBill, error) {
	bills, err := s.billRepo.ListBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list company bills")
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (s *companyBillService) UpdateBill(ctx context.Context, bill domain.CompanyBill) (*domain.CompanyBill, error) {
	if _, err := s.billRepo.FindBillByID(ctx, bill.BillID); err != nil {
		return nil, err
	}
	if err := s.billRepo.UpdateBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to update company bill", slog.String("bill_id", bill.BillID))
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}
	return &bill, nil
}

func (s *companyBillService) DeleteBill(ctx context.Context, billID string) error {
	if err := s.billRepo.DeleteBill(ctx, billID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete company bill", slog.String("bill_id", billID))
		}
		return err
	}
	s.LogInfo(ctx, "Company bill deleted", slog.String("bill_id", billID))
	return nil
}
