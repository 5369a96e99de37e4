package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/unimanage/backoffice/internal/core/domain"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/middleware"
)

const defaultActivityLimit = 50

// ActivityService implements the activity log. Writes are best-effort: a
// failed log entry is reported to the logger and swallowed, because audit
// trail hiccups must never fail the business operation they describe.
type ActivityService struct {
	repo portsrepo.ActivityLogRepositoryFacade
}

// NewActivityService creates an ActivityService.
func NewActivityService(repo portsrepo.ActivityLogRepositoryFacade) *ActivityService {
	return &ActivityService{repo: repo}
}

var _ portssvc.ActivitySvcFacade = (*ActivityService)(nil)

func (s *ActivityService) ListRecent(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	entries, err := s.repo.ListActivityLogs(ctx, limit)
	if err != nil {
		logger.Error("Failed to list activity logs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	if entries == nil {
		return []domain.ActivityLog{}, nil
	}
	return entries, nil
}

func (s *ActivityService) Record(ctx context.Context, actionType, moduleName, details, userID string) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()
	entry := domain.ActivityLog{
		LogID:      uuid.NewString(),
		ActionType: actionType,
		ModuleName: moduleName,
		Details:    details,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.repo.SaveActivityLog(ctx, entry); err != nil {
		logger.Warn("Failed to record activity log entry",
			slog.String("error", err.Error()),
			slog.String("action", actionType),
			slog.String("module", moduleName),
		)
	}
}
