package services

// ServiceContainer aggregates all service implementations for handler wiring.
type ServiceContainer struct {
	BalanceSheetSvc BalanceSheetService
	InvoiceSvc      InvoiceService
	BuyerReceiptSvc BuyerReceiptService
	CompanyBillSvc  CompanyBillService
	PayrollSvc      PayrollService
	BankingSvc      BankingService
	OtherTxnSvc     OtherTransactionService
	StatementSvc    StatementService
	AuthSvc         AuthService
	TokenSvc        TokenService
}
