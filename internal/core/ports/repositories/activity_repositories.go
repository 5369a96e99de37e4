package repositories

import (
	"context"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// ActivityLogReader defines read operations for the activity log.
type ActivityLogReader interface {
	// ListActivityLogs retrieves recent log entries, newest first.
	ListActivityLogs(ctx context.Context, limit int) ([]domain.ActivityLog, error)
}

// ActivityLogWriter defines write operations for the activity log.
type ActivityLogWriter interface {
	// SaveActivityLog appends a log entry.
	SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error
}

// ActivityLogRepositoryFacade combines the activity log repository interfaces.
type ActivityLogRepositoryFacade interface {
	ActivityLogReader
	ActivityLogWriter
}
