package services

import (
	"context"

	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/dto"
)

// BankAccountReaderSvc defines read operations for bank account data.
type BankAccountReaderSvc interface {
	// ListBankAccounts retrieves all company bank accounts.
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)

	// GetBankAccountByID retrieves a single bank account.
	GetBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)
}

// BankAccountWriterSvc defines write operations for bank account data.
type BankAccountWriterSvc interface {
	// CreateBankAccount registers a new company bank account.
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorUserID string) (*domain.BankAccount, error)

	// DeleteBankAccount removes a bank account.
	DeleteBankAccount(ctx context.Context, accountID string) error
}

// BankAccountSvcFacade combines all bank account service interfaces.
type BankAccountSvcFacade interface {
	BankAccountReaderSvc
	BankAccountWriterSvc
}
