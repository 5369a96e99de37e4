package services

import (
	"context"

	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/dto"
)

// ExchangeReaderSvc defines read operations for the exchange desk.
type ExchangeReaderSvc interface {
	// ListTransactions retrieves the full exchange history, oldest first.
	ListTransactions(ctx context.Context) ([]domain.ExchangeTransaction, error)

	// GetTransactionByID retrieves a single exchange transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, error)

	// GetHoldings computes the current vault position from the seed plus
	// the full transaction history.
	GetHoldings(ctx context.Context) (domain.Vault, error)

	// GetStats computes traded volume per currency for the dashboard.
	GetStats(ctx context.Context) (domain.ExchangeStats, error)
}

// ExchangeWriterSvc defines write operations for the exchange desk.
type ExchangeWriterSvc interface {
	// RecordTransaction validates a buy or sell against current holdings
	// and persists it.
	RecordTransaction(ctx context.Context, req dto.RecordExchangeRequest, creatorUserID string) (*domain.ExchangeTransaction, error)

	// DeleteTransaction removes a recorded transaction; holdings are
	// recomputed from the remaining history.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// ExchangeSvcFacade combines all exchange desk service interfaces.
type ExchangeSvcFacade interface {
	ExchangeReaderSvc
	ExchangeWriterSvc
}

// RateReaderSvc defines read operations for the rate catalog.
type RateReaderSvc interface {
	// GetRates resolves the stored catalog into its canonical table form.
	GetRates(ctx context.Context) (domain.RateTable, error)
}

// RateWriterSvc defines write operations for the rate catalog.
type RateWriterSvc interface {
	// ReplaceRates overwrites the whole catalog with the given quotes.
	ReplaceRates(ctx context.Context, req dto.ReplaceRatesRequest, updaterUserID string) (domain.RateTable, error)
}

// RateSvcFacade combines all rate catalog service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
