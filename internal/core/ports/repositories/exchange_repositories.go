package repositories

import (
	"context"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// ExchangeTransactionReader defines read operations for exchange transactions.
type ExchangeTransactionReader interface {
	// ListTransactions retrieves the full ordered transaction history,
	// oldest first. Holdings are always derived from this history.
	ListTransactions(ctx context.Context) ([]domain.ExchangeTransaction, error)

	// FindTransactionByID retrieves a single transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, error)
}

// ExchangeTransactionWriter defines write operations for exchange transactions.
type ExchangeTransactionWriter interface {
	// SaveTransaction appends a completed transaction to the history.
	SaveTransaction(ctx context.Context, tx domain.ExchangeTransaction) error

	// DeleteTransaction removes a transaction from the history. This is a
	// compensating event; the caller must discard any cached holdings.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// ExchangeTransactionRepositoryFacade combines all exchange transaction repository interfaces.
type ExchangeTransactionRepositoryFacade interface {
	ExchangeTransactionReader
	ExchangeTransactionWriter
}

// RateCatalogReader defines read operations for the stored rate catalog.
type RateCatalogReader interface {
	// FetchRawRates returns the stored catalog document as-is, which may be
	// any legacy shape, or nil when no catalog was ever written.
	FetchRawRates(ctx context.Context) ([]byte, error)
}

// RateCatalogWriter defines write operations for the stored rate catalog.
type RateCatalogWriter interface {
	// StoreRates replaces the stored catalog with the canonical table. An
	// empty table is stored as an empty document, not deleted, so that an
	// explicit clear stays distinguishable from a missing catalog.
	StoreRates(ctx context.Context, table domain.RateTable) error
}

// RateCatalogRepositoryFacade combines the rate catalog repository interfaces.
type RateCatalogRepositoryFacade interface {
	RateCatalogReader
	RateCatalogWriter
}
