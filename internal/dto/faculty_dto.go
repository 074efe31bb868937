package dto

// ScenarioResult is one row in a student's scenario history.
type ScenarioResult struct {
	Title     string `json:"title"`
	Score     int    `json:"score"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

// StudentSummary aggregates a single student's progress for the faculty view.
type StudentSummary struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	ActiveCount    int              `json:"active_count"`
	CompletedCount int              `json:"completed_count"`
	TotalScore     int              `json:"total_score"`
	AvgScore       int              `json:"avg_score"`
	LastActive     string           `json:"last_active"`
	Scenarios      []ScenarioResult `json:"scenarios"`
}

// ClassSummary holds class-wide statistics.
type ClassSummary struct {
	TotalCompletions int `json:"total_completions"`
	AvgClassScore    int `json:"avg_class_score"`
}

// FacultyDashboardResponse is the faculty dashboard payload.
type FacultyDashboardResponse struct {
	Students []StudentSummary `json:"students"`
	Class    ClassSummary     `json:"class"`
}
