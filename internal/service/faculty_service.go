package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/dto"
	"github.com/safezard/safezard-api/internal/repository"
)

const facultyDashboardCacheKey = "dashboard:faculty"

// FacultyService produces the aggregated class view.
type FacultyService interface {
	Dashboard(ctx context.Context) (dto.FacultyDashboardResponse, error)
}

type facultyService struct {
	progress repository.ProgressRepository
	profiles repository.ProfileRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewFacultyService constructs the faculty dashboard aggregator.
func NewFacultyService(progress repository.ProgressRepository, profiles repository.ProfileRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) FacultyService {
	return &facultyService{
		progress: progress,
		profiles: profiles,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "faculty_service").Logger(),
	}
}

func (s *facultyService) Dashboard(ctx context.Context) (dto.FacultyDashboardResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, facultyDashboardCacheKey).Result(); err == nil {
			var response dto.FacultyDashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Msg("faculty dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return dto.FacultyDashboardResponse{}, err
	}

	emails := make(map[string]string, len(profiles))
	for _, profile := range profiles {
		emails[profile.ID] = profile.Email
	}

	records, err := s.progress.ListAll(ctx)
	if err != nil {
		return dto.FacultyDashboardResponse{}, err
	}

	students, class := BuildClassOverview(records, emails)
	response := dto.FacultyDashboardResponse{Students: students, Class: class}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, facultyDashboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}
