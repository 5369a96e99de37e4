package domain

// ActivityLog records a user-visible action taken in one of the modules.
type ActivityLog struct {
	LogID      string `json:"logID"` // Primary Key (UUID)
	ActionType string `json:"actionType"`
	ModuleName string `json:"moduleName"`
	Details    string `json:"details"`
	AuditFields
}
