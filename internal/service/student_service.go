package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/dto"
	"github.com/safezard/safezard-api/internal/repository"
)

// StudentService produces the profile page payload.
type StudentService interface {
	Profile(ctx context.Context, userID, email string) dto.ProfileResponse
}

type studentService struct {
	progress repository.ProgressRepository
	roles    RoleResolver
	logger   zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(progress repository.ProgressRepository, roles RoleResolver, logger zerolog.Logger) StudentService {
	return &studentService{
		progress: progress,
		roles:    roles,
		logger:   logger.With().Str("component", "student_service").Logger(),
	}
}

// Profile never fails: stats degrade to zero on store errors so the profile
// page always renders.
func (s *studentService) Profile(ctx context.Context, userID, email string) dto.ProfileResponse {
	completedCount := 0
	totalXP := 0

	completed, err := s.progress.ListCompletedByUser(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to load completed progress")
	} else {
		completedCount = len(completed)
		for _, record := range completed {
			totalXP += record.Score
		}
	}

	return dto.ProfileResponse{
		Email:          email,
		Role:           capitalize(s.roles.Resolve(ctx, userID)),
		CompletedCount: completedCount,
		TotalXP:        totalXP,
		Clearance:      LevelFor(completedCount),
	}
}
