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

type PgxSaleRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSaleRepository creates a new repository for pharmacy sales.
func NewPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{pool: pool}
}

// SaveSaleWithDeductions persists the sale and applies the stock deductions
// within one database transaction, so a checkout either lands completely or
// not at all.
func (r *PgxSaleRepository) SaveSaleWithDeductions(ctx context.Context, sale domain.Sale, updatedItems []domain.StockItem) error {
	lines, err := json.Marshal(sale.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal sale lines for %s: %w", sale.SaleID, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	saleQuery := `
		INSERT INTO sales (sale_id, lines, total, payment_method, bank_account_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, saleQuery,
		sale.SaleID,
		lines,
		sale.Total,
		sale.PaymentMethod,
		nullableText(sale.BankAccountID),
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale %s: %w", sale.SaleID, err)
	}

	// Deduct relative to the stored quantity rather than writing the
	// caller's snapshot back: a concurrent writer elsewhere cannot be
	// silently undone, and the schema's non-negative check still bites.
	deducted := make(map[string]int64, len(sale.Lines))
	for _, line := range sale.Lines {
		deducted[line.ItemID] += line.AtomicDeduction
	}

	batch := &pgx.Batch{}
	deductQuery := `
		UPDATE stock_items
		SET quantity_on_hand = quantity_on_hand - $2, last_updated_at = $3, last_updated_by = $4
		WHERE item_id = $1;
	`
	for _, item := range updatedItems {
		batch.Queue(deductQuery, item.ItemID, deducted[item.ItemID], item.LastUpdatedAt, item.LastUpdatedBy)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to apply stock deductions for sale %s: %w", sale.SaleID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sale %s: %w", sale.SaleID, err)
	}
	return nil
}

// ListSales retrieves the sale history, newest first.
func (r *PgxSaleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	query := `
		SELECT sale_id, lines, total, payment_method, bank_account_id, created_at, created_by, last_updated_at, last_updated_by
		FROM sales
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Sale, error) {
		var (
			sale          domain.Sale
			lines         []byte
			bankAccountID *string
		)
		err := row.Scan(
			&sale.SaleID,
			&lines,
			&sale.Total,
			&sale.PaymentMethod,
			&bankAccountID,
			&sale.CreatedAt,
			&sale.CreatedBy,
			&sale.LastUpdatedAt,
			&sale.LastUpdatedBy,
		)
		if err != nil {
			return domain.Sale{}, err
		}
		if err := json.Unmarshal(lines, &sale.Lines); err != nil {
			return domain.Sale{}, fmt.Errorf("failed to unmarshal lines for sale %s: %w", sale.SaleID, err)
		}
		if bankAccountID != nil {
			sale.BankAccountID = *bankAccountID
		}
		return sale, nil
	})
}
