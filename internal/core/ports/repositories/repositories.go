package repositories

// RepositoryProvider aggregates all repository implementations so they can be
// passed around as a single dependency.
type RepositoryProvider struct {
	LedgerRepo           LedgerRepository
	SnapshotRepo         SnapshotRepository
	InvoiceRepo          InvoiceRepository
	BuyerReceiptRepo     BuyerReceiptRepository
	CompanyBillRepo      CompanyBillRepository
	EmployeeRepo         EmployeeRepository
	SalaryRepo           SalaryRepository
	BankAccountRepo      BankAccountRepository
	CashEntryRepo        CashEntryRepository
	OtherTransactionRepo OtherTransactionRepository
	OtherTypeRepo        OtherTypeRepository
	UserRepo             UserRepository
	OTPRepo              OTPRepository
}
