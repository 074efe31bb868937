package dto

// AdminOverviewResponse holds platform-wide statistics for the admin dashboard.
type AdminOverviewResponse struct {
	ProfilesByRole   map[string]int64 `json:"profiles_by_role"`
	TotalAttempts    int64            `json:"total_attempts"`
	TotalCompletions int64            `json:"total_completions"`
}
