package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/dto"
	"github.com/safezard/safezard-api/internal/repository"
)

// AdminService supplies platform-wide statistics.
type AdminService interface {
	Overview(ctx context.Context) (dto.AdminOverviewResponse, error)
}

type adminService struct {
	profiles repository.ProfileRepository
	progress repository.ProgressRepository
	quizLogs repository.QuizLogRepository
	logger   zerolog.Logger
}

// NewAdminService constructs the admin service.
func NewAdminService(profiles repository.ProfileRepository, progress repository.ProgressRepository, quizLogs repository.QuizLogRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		profiles: profiles,
		progress: progress,
		quizLogs: quizLogs,
		logger:   logger.With().Str("component", "admin_service").Logger(),
	}
}

func (s *adminService) Overview(ctx context.Context) (dto.AdminOverviewResponse, error) {
	byRole, err := s.profiles.CountByRole(ctx)
	if err != nil {
		return dto.AdminOverviewResponse{}, err
	}

	attempts, err := s.quizLogs.Count(ctx)
	if err != nil {
		return dto.AdminOverviewResponse{}, err
	}

	completions, err := s.progress.CountCompleted(ctx)
	if err != nil {
		return dto.AdminOverviewResponse{}, err
	}

	return dto.AdminOverviewResponse{
		ProfilesByRole:   byRole,
		TotalAttempts:    attempts,
		TotalCompletions: completions,
	}, nil
}
