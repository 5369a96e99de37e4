package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unimanage/backoffice/internal/core/domain"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
)

type PgxActivityLogRepository struct {
	pool *pgxpool.Pool
}

// NewPgxActivityLogRepository creates a new repository for the activity log.
func NewPgxActivityLogRepository(pool *pgxpool.Pool) portsrepo.ActivityLogRepositoryFacade {
	return &PgxActivityLogRepository{pool: pool}
}

// SaveActivityLog appends a log entry.
func (r *PgxActivityLogRepository) SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (log_id, action_type, module_name, details, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.LogID,
		entry.ActionType,
		entry.ModuleName,
		entry.Details,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity log %s: %w", entry.LogID, err)
	}
	return nil
}

// ListActivityLogs retrieves the newest entries first.
func (r *PgxActivityLogRepository) ListActivityLogs(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	query := `
		SELECT log_id, action_type, module_name, details, created_at, created_by, last_updated_at, last_updated_by
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActivityLog, error) {
		var entry domain.ActivityLog
		err := row.Scan(
			&entry.LogID,
			&entry.ActionType,
			&entry.ModuleName,
			&entry.Details,
			&entry.CreatedAt,
			&entry.CreatedBy,
			&entry.LastUpdatedAt,
			&entry.LastUpdatedBy,
		)
		return entry, err
	})
}
