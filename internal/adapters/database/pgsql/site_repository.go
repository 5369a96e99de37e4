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

type PgxSiteRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSiteRepository creates a new repository for construction sites.
func NewPgxSiteRepository(pool *pgxpool.Pool) portsrepo.SiteRepositoryFacade {
	return &PgxSiteRepository{pool: pool}
}

const siteColumns = `site_id, name, status, created_at, created_by, last_updated_at, last_updated_by`

// SaveSite inserts or updates a site.
func (r *PgxSiteRepository) SaveSite(ctx context.Context, site domain.Site) error {
	query := `
		INSERT INTO sites (` + siteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (site_id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		site.SiteID,
		site.Name,
		site.Status,
		site.CreatedAt,
		site.CreatedBy,
		site.LastUpdatedAt,
		site.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save site %s: %w", site.SiteID, err)
	}
	return nil
}

func scanSite(row pgx.Row) (domain.Site, error) {
	var site domain.Site
	err := row.Scan(
		&site.SiteID,
		&site.Name,
		&site.Status,
		&site.CreatedAt,
		&site.CreatedBy,
		&site.LastUpdatedAt,
		&site.LastUpdatedBy,
	)
	return site, err
}

// ListSites retrieves all sites ordered by name.
func (r *PgxSiteRepository) ListSites(ctx context.Context) ([]domain.Site, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+siteColumns+` FROM sites ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Site, error) {
		return scanSite(row)
	})
}

// FindSiteByID retrieves a single site.
func (r *PgxSiteRepository) FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	site, err := scanSite(r.pool.QueryRow(ctx, `SELECT `+siteColumns+` FROM sites WHERE site_id = $1;`, siteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: site %s", apperrors.ErrNotFound, siteID)
		}
		return nil, fmt.Errorf("failed to find site %s: %w", siteID, err)
	}
	return &site, nil
}

// DeleteSite removes a site. Its transaction history is intentionally left
// in place.
func (r *PgxSiteRepository) DeleteSite(ctx context.Context, siteID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sites WHERE site_id = $1;`, siteID)
	if err != nil {
		return fmt.Errorf("failed to delete site %s: %w", siteID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: site %s", apperrors.ErrNotFound, siteID)
	}
	return nil
}
