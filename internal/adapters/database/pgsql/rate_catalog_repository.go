package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unimanage/backoffice/internal/core/domain"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
)

// rateCatalogRowID pins the catalog to a single row. The catalog is one
// document, not a table of rows, because historical deployments stored it in
// several shapes and the resolver normalizes whatever it finds.
const rateCatalogRowID = 1

type PgxRateCatalogRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRateCatalogRepository creates a new repository for the rate catalog document.
func NewPgxRateCatalogRepository(pool *pgxpool.Pool) portsrepo.RateCatalogRepositoryFacade {
	return &PgxRateCatalogRepository{pool: pool}
}

// FetchRawRates returns the stored catalog document as-is, or nil when no
// catalog was ever written. The nil is significant: the resolver seeds
// defaults only for a missing catalog, never for a cleared one.
func (r *PgxRateCatalogRepository) FetchRawRates(ctx context.Context) ([]byte, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM rate_catalog WHERE id = $1;`, rateCatalogRowID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rate catalog: %w", err)
	}
	return doc, nil
}

// StoreRates replaces the catalog with the canonical table form. An empty
// table is written as an empty document so an explicit clear survives.
func (r *PgxRateCatalogRepository) StoreRates(ctx context.Context, table domain.RateTable) error {
	doc, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to marshal rate catalog: %w", err)
	}

	query := `
		INSERT INTO rate_catalog (id, doc, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			doc = EXCLUDED.doc,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.pool.Exec(ctx, query, rateCatalogRowID, doc, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to store rate catalog: %w", err)
	}
	return nil
}
