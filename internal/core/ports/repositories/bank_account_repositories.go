package repositories

import (
	"context"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// BankAccountReader defines read operations for bank account reference data.
type BankAccountReader interface {
	// ListBankAccounts retrieves all company bank accounts.
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)

	// FindBankAccountByID retrieves a single bank account.
	FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank account reference data.
type BankAccountWriter interface {
	// SaveBankAccount persists a new bank account.
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error

	// DeleteBankAccount removes a bank account.
	DeleteBankAccount(ctx context.Context, accountID string) error
}

// BankAccountRepositoryFacade combines all bank account repository interfaces.
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}
