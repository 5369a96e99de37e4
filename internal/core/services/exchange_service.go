package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/core/ledger"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/dto"
	"github.com/unimanage/backoffice/internal/middleware"
)

// ExchangeService implements the exchange desk operations. Holdings are
// never stored: every read folds the seed vault over the full transaction
// history. A snapshot of the last fold is cached and invalidated on any
// write, and a single mutex serializes writers so that validation always
// runs against the holdings the commit will land on.
type ExchangeService struct {
	txRepo   portsrepo.ExchangeTransactionRepositoryFacade
	bankRepo portsrepo.BankAccountReader
	activity portssvc.ActivityWriterSvc
	seed     domain.Vault

	mu       sync.Mutex
	snapshot domain.Vault // Non-nil only while the history is unchanged
}

// NewExchangeService creates an ExchangeService with the given seed vault.
func NewExchangeService(txRepo portsrepo.ExchangeTransactionRepositoryFacade, bankRepo portsrepo.BankAccountReader, activity portssvc.ActivityWriterSvc, seed domain.Vault) *ExchangeService {
	return &ExchangeService{
		txRepo:   txRepo,
		bankRepo: bankRepo,
		activity: activity,
		seed:     seed.Clone(),
	}
}

// Verify interface compliance at compile time.
var _ portssvc.ExchangeSvcFacade = (*ExchangeService)(nil)

func (s *ExchangeService) ListTransactions(ctx context.Context) ([]domain.ExchangeTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txns, err := s.txRepo.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to list exchange transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list exchange transactions: %w", err)
	}
	if txns == nil {
		return []domain.ExchangeTransaction{}, nil
	}
	return txns, nil
}

func (s *ExchangeService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txn, err := s.txRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find exchange transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// GetHoldings returns the current vault position. The cached snapshot is
// returned as a copy so callers cannot corrupt it.
func (s *ExchangeService) GetHoldings(ctx context.Context) (domain.Vault, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vault, err := s.holdingsLocked(ctx)
	if err != nil {
		return nil, err
	}
	return vault.Clone(), nil
}

// holdingsLocked computes or reuses the holdings snapshot. Callers must hold
// s.mu.
func (s *ExchangeService) holdingsLocked(ctx context.Context) (domain.Vault, error) {
	if s.snapshot != nil {
		return s.snapshot, nil
	}
	logger := middleware.GetLoggerFromCtx(ctx)
	txns, err := s.txRepo.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to load history for holdings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load exchange history: %w", err)
	}
	vault, err := ledger.ComputeHoldings(s.seed, txns)
	if err != nil {
		logger.Error("Holdings fold failed", slog.String("error", err.Error()))
		return nil, err
	}
	s.snapshot = vault
	return vault, nil
}

func (s *ExchangeService) GetStats(ctx context.Context) (domain.ExchangeStats, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txns, err := s.txRepo.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to load history for stats", slog.String("error", err.Error()))
		return domain.ExchangeStats{}, fmt.Errorf("failed to load exchange history: %w", err)
	}
	return ledger.ComputeExchangeStats(txns)
}

// RecordTransaction validates the candidate against current holdings and
// persists it. Sells must be covered by foreign holdings, buys by local
// cash; bank-settled transactions must name an account eligible for the
// exchange sector.
func (s *ExchangeService) RecordTransaction(ctx context.Context, req dto.RecordExchangeRequest, creatorUserID string) (*domain.ExchangeTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	txn := domain.ExchangeTransaction{
		TransactionID: uuid.NewString(),
		Kind:          domain.ExchangeKind(req.Kind),
		CurrencyCode:  req.CurrencyCode,
		Amount:        req.Amount,
		Rate:          req.Rate,
		TotalLocal:    req.Amount.Mul(req.Rate).Round(2),
		CustomerName:  req.CustomerName,
		CustomerRef:   req.CustomerRef,
		Description:   req.Description,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		BankAccountID: req.BankAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.CurrencyCode == domain.LocalCurrencyCode {
		return nil, fmt.Errorf("%w: cannot trade the local currency against itself", apperrors.ErrValidation)
	}
	if req.Counterparty != nil {
		txn.Counterparty = &domain.BankDetails{
			BankName:      req.Counterparty.BankName,
			AccountNumber: req.Counterparty.AccountNumber,
		}
	}

	if txn.PaymentMethod == domain.PaymentBank {
		if txn.BankAccountID == "" {
			return nil, fmt.Errorf("%w: bankAccountID is required for bank settlement", apperrors.ErrValidation)
		}
		account, err := s.bankRepo.FindBankAccountByID(ctx, txn.BankAccountID)
		if err != nil {
			return nil, err
		}
		if err := ledger.ValidateBankAccount(*account, domain.SectorExchange); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vault, err := s.holdingsLocked(ctx)
	if err != nil {
		return nil, err
	}
	if err := ledger.ValidateNewTransaction(vault, txn); err != nil {
		return nil, err
	}

	if err := s.txRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save exchange transaction", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save exchange transaction: %w", err)
	}
	s.snapshot = nil

	logger.Info("Exchange transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("currency", txn.CurrencyCode),
	)
	s.activity.Record(ctx, "RECORD_"+string(txn.Kind), "exchange",
		fmt.Sprintf("%s %s %s @ %s", txn.Kind, txn.Amount.String(), txn.CurrencyCode, txn.Rate.String()), creatorUserID)
	return &txn, nil
}

// DeleteTransaction removes a recorded transaction. The deletion is a
// compensating event: the next holdings read refolds the remaining history.
func (s *ExchangeService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.txRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete exchange transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.snapshot = nil

	logger.Info("Exchange transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
