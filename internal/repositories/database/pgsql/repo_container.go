package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:           newLedgerRepository(dbPool),
		SnapshotRepo:         newSnapshotRepository(dbPool),
		InvoiceRepo:          newInvoiceRepository(dbPool),
		BuyerReceiptRepo:     newBuyerReceiptRepository(dbPool),
		CompanyBillRepo:      newCompanyBillRepository(dbPool),
		EmployeeRepo:         newEmployeeRepository(dbPool),
		SalaryRepo:           newSalaryRepository(dbPool),
		BankAccountRepo:      newBankAccountRepository(dbPool),
		CashEntryRepo:        newCashEntryRepository(dbPool),
		OtherTransactionRepo: newOtherTransactionRepository(dbPool),
		OtherTypeRepo:        newOtherTypeRepository(dbPool),
		UserRepo:             newUserRepository(dbPool),
		OTPRepo:              newOTPRepository(dbPool),
	}
}
