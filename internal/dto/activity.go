package dto

import (
	"time"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// ActivityLogResponse defines the data returned for one activity log entry.
type ActivityLogResponse struct {
	LogID      string    `json:"logID"`
	ActionType string    `json:"actionType"`
	ModuleName string    `json:"moduleName"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedBy  string    `json:"createdBy"`
}

// ToListActivityLogResponse converts a slice of log entries to DTOs.
func ToListActivityLogResponse(entries []domain.ActivityLog) []ActivityLogResponse {
	res := make([]ActivityLogResponse, len(entries))
	for i, entry := range entries {
		res[i] = ActivityLogResponse{
			LogID:      entry.LogID,
			ActionType: entry.ActionType,
			ModuleName: entry.ModuleName,
			Details:    entry.Details,
			CreatedAt:  entry.CreatedAt,
			CreatedBy:  entry.CreatedBy,
		}
	}
	return res
}
