package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unimanage/backoffice/internal/core/domain"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
)

type PgxSiteTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSiteTransactionRepository creates a new repository for site cash flows.
func NewPgxSiteTransactionRepository(pool *pgxpool.Pool) portsrepo.SiteTransactionRepositoryFacade {
	return &PgxSiteTransactionRepository{pool: pool}
}

const siteTxColumns = `
	transaction_id, site_id, kind, amount, date, description,
	payment_method, bank_account_id, external_bank,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveSiteTransaction appends an income or expense entry.
func (r *PgxSiteTransactionRepository) SaveSiteTransaction(ctx context.Context, txn domain.SiteTransaction) error {
	var externalBank []byte
	if txn.ExternalBank != nil {
		data, err := json.Marshal(txn.ExternalBank)
		if err != nil {
			return fmt.Errorf("failed to marshal external bank for site transaction %s: %w", txn.TransactionID, err)
		}
		externalBank = data
	}

	query := `
		INSERT INTO site_transactions (` + siteTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.SiteID,
		txn.Kind,
		txn.Amount,
		txn.Date,
		txn.Description,
		txn.PaymentMethod,
		nullableText(txn.BankAccountID),
		externalBank,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert site transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

func scanSiteTransaction(row pgx.Row) (domain.SiteTransaction, error) {
	var (
		txn           domain.SiteTransaction
		bankAccountID *string
		externalBank  []byte
	)
	err := row.Scan(
		&txn.TransactionID,
		&txn.SiteID,
		&txn.Kind,
		&txn.Amount,
		&txn.Date,
		&txn.Description,
		&txn.PaymentMethod,
		&bankAccountID,
		&externalBank,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		return domain.SiteTransaction{}, err
	}
	if bankAccountID != nil {
		txn.BankAccountID = *bankAccountID
	}
	if len(externalBank) > 0 {
		var details domain.BankDetails
		if err := json.Unmarshal(externalBank, &details); err != nil {
			return domain.SiteTransaction{}, fmt.Errorf("failed to unmarshal external bank for site transaction %s: %w", txn.TransactionID, err)
		}
		txn.ExternalBank = &details
	}
	return txn, nil
}

// ListSiteTransactions retrieves the full history across all sites, oldest first.
func (r *PgxSiteTransactionRepository) ListSiteTransactions(ctx context.Context) ([]domain.SiteTransaction, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+siteTxColumns+` FROM site_transactions ORDER BY date, transaction_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query site transactions: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SiteTransaction, error) {
		return scanSiteTransaction(row)
	})
}

// ListSiteTransactionsBySite retrieves the history for one site, oldest first.
func (r *PgxSiteTransactionRepository) ListSiteTransactionsBySite(ctx context.Context, siteID string) ([]domain.SiteTransaction, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+siteTxColumns+` FROM site_transactions WHERE site_id = $1 ORDER BY date, transaction_id;`, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query site transactions for site %s: %w", siteID, err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SiteTransaction, error) {
		return scanSiteTransaction(row)
	})
}
