package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/safezard/safezard-api/internal/models"
)

// ProgressRepository defines data operations for the best-score projection.
type ProgressRepository interface {
	ListAll(ctx context.Context) ([]models.ProgressRecord, error)
	ListByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error)
	ListCompletedByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error)
	GetByUserAndScenario(ctx context.Context, userID, scenarioID string) (models.ProgressRecord, error)
	Upsert(ctx context.Context, record *models.ProgressRecord) (bool, error)
	CountCompleted(ctx context.Context) (int64, error)
}

type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository instantiates the repository.
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) ListAll(ctx context.Context) ([]models.ProgressRecord, error) {
	var records []models.ProgressRecord
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	var records []models.ProgressRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *progressRepository) ListCompletedByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	var records []models.ProgressRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("completed = ?", true).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *progressRepository) GetByUserAndScenario(ctx context.Context, userID, scenarioID string) (models.ProgressRecord, error) {
	var record models.ProgressRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("scenario_id = ?", scenarioID).
		First(&record).Error
	if err != nil {
		return models.ProgressRecord{}, err
	}

	return record, nil
}

// Upsert applies the monotonic best-score rule in a single statement. The
// unique index on (user_id, scenario_id) makes the insert-or-update atomic;
// the conflict guard skips the update when the stored record is already
// completed with an equal or higher score. The update path always marks the
// record completed: once a scenario is completed it never reverts, whatever
// the incoming payload says. Returns whether a row was written.
func (r *progressRepository) Upsert(ctx context.Context, record *models.ProgressRecord) (bool, error) {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "scenario_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":        record.Score,
			"completed":    true,
			"completed_at": now,
			"updated_at":   now,
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{
				SQL:  "user_progress.completed = ? OR excluded.score > user_progress.score",
				Vars: []interface{}{false},
			},
		}},
	}).Create(record)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *progressRepository) CountCompleted(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProgressRecord{}).
		Where("completed = ?", true).
		Count(&count).Error
	return count, err
}
