package dto

import "github.com/safezard/safezard-api/internal/models"

// SaveProgressRequest is the quiz submission payload.
type SaveProgressRequest struct {
	ScenarioID    string `json:"scenario_id" validate:"required"`
	ScenarioTitle string `json:"scenario_title"`
	Score         int    `json:"score" validate:"gte=0"`
	Completed     bool   `json:"completed"`
}

// SaveProgressResponse reports the outcome of a submission.
type SaveProgressResponse struct {
	LogID            uint `json:"log_id"`
	ProgressUpserted bool `json:"progress_upserted"`
}

// AnalyticsResponse bundles a student's progress projection and attempt log.
type AnalyticsResponse struct {
	Progress []models.ProgressRecord `json:"progress"`
	Logs     []models.QuizLog        `json:"logs"`
}

// ClearanceState is the gamified tier derived from completed-module count.
type ClearanceState struct {
	Level    int `json:"level"`
	Progress int `json:"progress"`
}

// ProfileResponse is the student profile page payload.
type ProfileResponse struct {
	Email          string         `json:"email"`
	Role           string         `json:"role"`
	CompletedCount int            `json:"completed_count"`
	TotalXP        int            `json:"total_xp"`
	Clearance      ClearanceState `json:"clearance"`
}
