package services

import (
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
	portssvc "github.com/karobar/karobar_backend/internal/core/ports/services"
	"github.com/karobar/karobar_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.BalanceSheetSvc = NewBalanceSheetService(repos.LedgerRepo, repos.SnapshotRepo)
	container.InvoiceSvc = NewInvoiceService(repos.InvoiceRepo)
	container.BuyerReceiptSvc = NewBuyerReceiptService(repos.BuyerReceiptRepo)
	container.CompanyBillSvc = NewCompanyBillService(repos.CompanyBillRepo)
	container.PayrollSvc = NewPayrollService(repos.EmployeeRepo, repos.SalaryRepo)
	container.BankingSvc = NewBankingService(repos.BankAccountRepo, repos.CashEntryRepo)
	container.OtherTxnSvc = NewOtherTransactionService(repos.OtherTransactionRepo, repos.OtherTypeRepo)
	container.StatementSvc = NewStatementService(
		repos.InvoiceRepo,
		repos.BuyerReceiptRepo,
		repos.CompanyBillRepo,
		repos.OtherTransactionRepo,
	)

	container.TokenSvc = NewTokenService(cfg)
	container.AuthSvc = NewAuthService(repos.UserRepo, repos.OTPRepo, container.TokenSvc, cfg)

	return container
}
