package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
)

type PgxExchangeTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxExchangeTransactionRepository creates a new repository for exchange desk transactions.
func NewPgxExchangeTransactionRepository(pool *pgxpool.Pool) portsrepo.ExchangeTransactionRepositoryFacade {
	return &PgxExchangeTransactionRepository{pool: pool}
}

// SaveTransaction appends a completed transaction to the history.
func (r *PgxExchangeTransactionRepository) SaveTransaction(ctx context.Context, txn domain.ExchangeTransaction) error {
	var counterparty []byte
	if txn.Counterparty != nil {
		data, err := json.Marshal(txn.Counterparty)
		if err != nil {
			return fmt.Errorf("failed to marshal counterparty for transaction %s: %w", txn.TransactionID, err)
		}
		counterparty = data
	}

	query := `
		INSERT INTO exchange_transactions (
			transaction_id, kind, currency_code, amount, rate, total_local,
			customer_name, customer_ref, description, payment_method,
			bank_account_id, counterparty,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Kind,
		txn.CurrencyCode,
		txn.Amount,
		txn.Rate,
		txn.TotalLocal,
		txn.CustomerName,
		txn.CustomerRef,
		txn.Description,
		txn.PaymentMethod,
		nullableText(txn.BankAccountID),
		counterparty,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert exchange transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

const exchangeTxColumns = `
	transaction_id, kind, currency_code, amount, rate, total_local,
	customer_name, customer_ref, description, payment_method,
	bank_account_id, counterparty,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanExchangeTransaction(row pgx.Row) (domain.ExchangeTransaction, error) {
	var (
		txn           domain.ExchangeTransaction
		bankAccountID *string
		counterparty  []byte
	)
	err := row.Scan(
		&txn.TransactionID,
		&txn.Kind,
		&txn.CurrencyCode,
		&txn.Amount,
		&txn.Rate,
		&txn.TotalLocal,
		&txn.CustomerName,
		&txn.CustomerRef,
		&txn.Description,
		&txn.PaymentMethod,
		&bankAccountID,
		&counterparty,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		return domain.ExchangeTransaction{}, err
	}
	if bankAccountID != nil {
		txn.BankAccountID = *bankAccountID
	}
	if len(counterparty) > 0 {
		var details domain.BankDetails
		if err := json.Unmarshal(counterparty, &details); err != nil {
			return domain.ExchangeTransaction{}, fmt.Errorf("failed to unmarshal counterparty for transaction %s: %w", txn.TransactionID, err)
		}
		txn.Counterparty = &details
	}
	return txn, nil
}

// ListTransactions retrieves the full history, oldest first. The fold over
// this ordering is what produces current holdings.
func (r *PgxExchangeTransactionRepository) ListTransactions(ctx context.Context) ([]domain.ExchangeTransaction, error) {
	query := `SELECT ` + exchangeTxColumns + ` FROM exchange_transactions ORDER BY created_at, transaction_id;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange transactions: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExchangeTransaction, error) {
		return scanExchangeTransaction(row)
	})
}

// FindTransactionByID retrieves a single transaction.
func (r *PgxExchangeTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, error) {
	query := `SELECT ` + exchangeTxColumns + ` FROM exchange_transactions WHERE transaction_id = $1;`
	txn, err := scanExchangeTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: exchange transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find exchange transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// DeleteTransaction removes a transaction from the history.
func (r *PgxExchangeTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exchange_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete exchange transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: exchange transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

// nullableText maps an empty string onto SQL NULL.
func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
