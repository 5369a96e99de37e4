package services

import (
	"context"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// ActivityReaderSvc defines read operations for the activity log.
type ActivityReaderSvc interface {
	// ListRecent retrieves the newest log entries.
	ListRecent(ctx context.Context, limit int) ([]domain.ActivityLog, error)
}

// ActivityWriterSvc defines write operations for the activity log.
type ActivityWriterSvc interface {
	// Record appends one log entry. Failures are logged, not propagated:
	// activity logging never fails a business operation.
	Record(ctx context.Context, actionType, moduleName, details, userID string)
}

// ActivitySvcFacade combines the activity log service interfaces.
type ActivitySvcFacade interface {
	ActivityReaderSvc
	ActivityWriterSvc
}
