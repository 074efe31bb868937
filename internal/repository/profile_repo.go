package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/safezard/safezard-api/internal/models"
)

// ProfileRepository provides read access to identity profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	CountByRole(ctx context.Context) (map[string]int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository constructs a profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *profileRepository) CountByRole(ctx context.Context) (map[string]int64, error) {
	type roleCount struct {
		Role  string
		Count int64
	}

	var rows []roleCount
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}

	return counts, nil
}
