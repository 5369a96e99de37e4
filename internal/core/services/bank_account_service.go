package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/dto"
	"github.com/unimanage/backoffice/internal/middleware"
)

// BankAccountService implements company bank account management.
type BankAccountService struct {
	repo     portsrepo.BankAccountRepositoryFacade
	activity portssvc.ActivityWriterSvc
}

// NewBankAccountService creates a BankAccountService.
func NewBankAccountService(repo portsrepo.BankAccountRepositoryFacade, activity portssvc.ActivityWriterSvc) *BankAccountService {
	return &BankAccountService{repo: repo, activity: activity}
}

var _ portssvc.BankAccountSvcFacade = (*BankAccountService)(nil)

func (s *BankAccountService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.repo.ListBankAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list bank accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	if accounts == nil {
		return []domain.BankAccount{}, nil
	}
	return accounts, nil
}

func (s *BankAccountService) GetBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.repo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find bank account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *BankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorUserID string) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	sectors := make([]domain.Sector, len(req.EligibleSectors))
	for i, sector := range req.EligibleSectors {
		sectors[i] = domain.Sector(sector)
	}
	now := time.Now()
	account := domain.BankAccount{
		AccountID:       uuid.NewString(),
		BankName:        req.BankName,
		AccountNumber:   req.AccountNumber,
		EligibleSectors: sectors,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveBankAccount(ctx, account); err != nil {
		logger.Error("Failed to save bank account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}

	logger.Info("Bank account created", slog.String("account_id", account.AccountID), slog.String("bank", account.BankName))
	s.activity.Record(ctx, "CREATE_BANK_ACCOUNT", "settings", fmt.Sprintf("added account at %s", account.BankName), creatorUserID)
	return &account, nil
}

func (s *BankAccountService) DeleteBankAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.repo.DeleteBankAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete bank account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}
	logger.Info("Bank account deleted", slog.String("account_id", accountID))
	return nil
}
