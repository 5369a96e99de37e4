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

type PgxStockRepository struct {
	pool *pgxpool.Pool
}

// NewPgxStockRepository creates a new repository for pharmacy stock items.
func NewPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{pool: pool}
}

const stockItemColumns = `
	item_id, name, buy_price, sell_price, quantity_on_hand,
	storage_unit, items_per_storage_unit, batch, mfg_date, exp_date,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveStockItem inserts or updates a stock item.
func (r *PgxStockRepository) SaveStockItem(ctx context.Context, item domain.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (item_id) DO UPDATE SET
			name = EXCLUDED.name,
			buy_price = EXCLUDED.buy_price,
			sell_price = EXCLUDED.sell_price,
			quantity_on_hand = EXCLUDED.quantity_on_hand,
			batch = EXCLUDED.batch,
			mfg_date = EXCLUDED.mfg_date,
			exp_date = EXCLUDED.exp_date,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		item.ItemID,
		item.Name,
		item.BuyPrice,
		item.SellPrice,
		item.QuantityOnHand,
		item.StorageUnit,
		item.ItemsPerStorageUnit,
		item.Batch,
		item.MfgDate,
		item.ExpDate,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save stock item %s: %w", item.ItemID, err)
	}
	return nil
}

func scanStockItem(row pgx.Row) (domain.StockItem, error) {
	var item domain.StockItem
	err := row.Scan(
		&item.ItemID,
		&item.Name,
		&item.BuyPrice,
		&item.SellPrice,
		&item.QuantityOnHand,
		&item.StorageUnit,
		&item.ItemsPerStorageUnit,
		&item.Batch,
		&item.MfgDate,
		&item.ExpDate,
		&item.CreatedAt,
		&item.CreatedBy,
		&item.LastUpdatedAt,
		&item.LastUpdatedBy,
	)
	return item, err
}

// ListStockItems retrieves the full catalog ordered by name.
func (r *PgxStockRepository) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+stockItemColumns+` FROM stock_items ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock items: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StockItem, error) {
		return scanStockItem(row)
	})
}

// FindStockItemByID retrieves a single stock item.
func (r *PgxStockRepository) FindStockItemByID(ctx context.Context, itemID string) (*domain.StockItem, error) {
	item, err := scanStockItem(r.pool.QueryRow(ctx, `SELECT `+stockItemColumns+` FROM stock_items WHERE item_id = $1;`, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: stock item %s", apperrors.ErrNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to find stock item %s: %w", itemID, err)
	}
	return &item, nil
}

// FindStockItemsByIDs retrieves the given items keyed by ID. Missing IDs are
// simply absent from the map; the checkout logic reports them.
func (r *PgxStockRepository) FindStockItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.StockItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+stockItemColumns+` FROM stock_items WHERE item_id = ANY($1);`, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock items by ids: %w", err)
	}
	defer rows.Close()

	items := make(map[string]domain.StockItem, len(itemIDs))
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock item: %w", err)
		}
		items[item.ItemID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stock items: %w", err)
	}
	return items, nil
}
