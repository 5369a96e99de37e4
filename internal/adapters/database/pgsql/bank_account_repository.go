package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
)

type PgxBankAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPgxBankAccountRepository creates a new repository for company bank accounts.
func NewPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepositoryFacade {
	return &PgxBankAccountRepository{pool: pool}
}

const bankAccountColumns = `account_id, bank_name, account_number, eligible_sectors, created_at, created_by, last_updated_at, last_updated_by`

// SaveBankAccount persists a new bank account.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	sectors := make([]string, len(account.EligibleSectors))
	for i, s := range account.EligibleSectors {
		sectors[i] = string(s)
	}

	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		account.AccountID,
		account.BankName,
		account.AccountNumber,
		sectors,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save bank account %s: %w", account.AccountID, err)
	}
	return nil
}

func scanBankAccount(row pgx.Row) (domain.BankAccount, error) {
	var (
		account domain.BankAccount
		sectors []string
	)
	err := row.Scan(
		&account.AccountID,
		&account.BankName,
		&account.AccountNumber,
		&sectors,
		&account.CreatedAt,
		&account.CreatedBy,
		&account.LastUpdatedAt,
		&account.LastUpdatedBy,
	)
	if err != nil {
		return domain.BankAccount{}, err
	}
	account.EligibleSectors = make([]domain.Sector, len(sectors))
	for i, s := range sectors {
		account.EligibleSectors[i] = domain.Sector(s)
	}
	return account, nil
}

// ListBankAccounts retrieves all company bank accounts.
func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bankAccountColumns+` FROM bank_accounts ORDER BY bank_name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BankAccount, error) {
		return scanBankAccount(row)
	})
}

// FindBankAccountByID retrieves a single bank account.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	account, err := scanBankAccount(r.pool.QueryRow(ctx, `SELECT `+bankAccountColumns+` FROM bank_accounts WHERE account_id = $1;`, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: bank account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find bank account %s: %w", accountID, err)
	}
	return &account, nil
}

// DeleteBankAccount removes a bank account.
func (r *PgxBankAccountRepository) DeleteBankAccount(ctx context.Context, accountID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete bank account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: bank account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
