package models

import "time"

// ProgressRecord is the mutable best-score projection per (user, scenario).
// The composite unique index lets the write path run as a single atomic
// upsert instead of a racy read-then-write pair.
type ProgressRecord struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"size:36;not null;uniqueIndex:idx_user_scenario" json:"user_id"`
	ScenarioID  string     `gorm:"size:64;not null;uniqueIndex:idx_user_scenario" json:"scenario_id"`
	Score       int        `gorm:"not null" json:"score"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName matches the existing user_progress table.
func (ProgressRecord) TableName() string {
	return "user_progress"
}

// QuizLog is the append-only audit trail: one row per submitted attempt,
// never updated or deleted.
type QuizLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"size:36;not null;index" json:"user_id"`
	ScenarioID    string    `gorm:"size:64;not null" json:"scenario_id"`
	ScenarioTitle string    `gorm:"size:255" json:"scenario_title"`
	Score         int       `gorm:"not null" json:"score"`
	AttemptedAt   time.Time `gorm:"autoCreateTime" json:"attempted_at"`
}

// TableName matches the existing quiz_logs table.
func (QuizLog) TableName() string {
	return "quiz_logs"
}
