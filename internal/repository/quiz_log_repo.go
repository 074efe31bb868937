package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/safezard/safezard-api/internal/models"
)

// QuizLogRepository appends to and reads the attempt audit trail.
type QuizLogRepository interface {
	Insert(ctx context.Context, log *models.QuizLog) error
	ListByUser(ctx context.Context, userID string) ([]models.QuizLog, error)
	Count(ctx context.Context) (int64, error)
}

type quizLogRepository struct {
	db *gorm.DB
}

// NewQuizLogRepository instantiates the repository.
func NewQuizLogRepository(db *gorm.DB) QuizLogRepository {
	return &quizLogRepository{db: db}
}

func (r *quizLogRepository) Insert(ctx context.Context, log *models.QuizLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *quizLogRepository) ListByUser(ctx context.Context, userID string) ([]models.QuizLog, error) {
	var logs []models.QuizLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("attempted_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *quizLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.QuizLog{}).Count(&count).Error
	return count, err
}
