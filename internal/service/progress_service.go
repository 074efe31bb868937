package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/dto"
	"github.com/safezard/safezard-api/internal/models"
	"github.com/safezard/safezard-api/internal/observability"
	"github.com/safezard/safezard-api/internal/repository"
)

// ProgressService owns the attempt write path and student analytics reads.
type ProgressService interface {
	RecordAttempt(ctx context.Context, userID string, payload dto.SaveProgressRequest) (dto.SaveProgressResponse, error)
	Analytics(ctx context.Context, userID string) (dto.AnalyticsResponse, error)
}

type progressService struct {
	progress  repository.ProgressRepository
	quizLogs  repository.QuizLogRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// NewProgressService constructs the progress service.
func NewProgressService(progress repository.ProgressRepository, quizLogs repository.QuizLogRepository, validate *validator.Validate, logger zerolog.Logger) ProgressService {
	return &progressService{
		progress:  progress,
		quizLogs:  quizLogs,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "progress_service").Logger(),
		now:       time.Now,
	}
}

// RecordAttempt appends the audit log entry first, then applies the monotonic
// best-score upsert. The log write is never skipped: even an attempt that does
// not improve the stored best remains on record.
func (s *progressService) RecordAttempt(ctx context.Context, userID string, payload dto.SaveProgressRequest) (dto.SaveProgressResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SaveProgressResponse{}, err
	}

	entry := models.QuizLog{
		UserID:        userID,
		ScenarioID:    payload.ScenarioID,
		ScenarioTitle: strings.TrimSpace(s.sanitizer.Sanitize(payload.ScenarioTitle)),
		Score:         payload.Score,
	}
	if err := s.quizLogs.Insert(ctx, &entry); err != nil {
		return dto.SaveProgressResponse{}, err
	}

	record := models.ProgressRecord{
		UserID:     userID,
		ScenarioID: payload.ScenarioID,
		Score:      payload.Score,
		Completed:  payload.Completed,
	}
	if payload.Completed {
		completedAt := s.now().UTC()
		record.CompletedAt = &completedAt
	}

	upserted, err := s.progress.Upsert(ctx, &record)
	if err != nil {
		return dto.SaveProgressResponse{}, err
	}

	observability.QuizAttempts().WithLabelValues(payload.ScenarioID).Inc()

	s.logger.Info().
		Str("user_id", userID).
		Str("scenario_id", payload.ScenarioID).
		Int("score", payload.Score).
		Bool("progress_upserted", upserted).
		Msg("attempt recorded")

	return dto.SaveProgressResponse{LogID: entry.ID, ProgressUpserted: upserted}, nil
}

func (s *progressService) Analytics(ctx context.Context, userID string) (dto.AnalyticsResponse, error) {
	progress, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}

	logs, err := s.quizLogs.ListByUser(ctx, userID)
	if err != nil {
		return dto.AnalyticsResponse{}, err
	}

	return dto.AnalyticsResponse{Progress: progress, Logs: logs}, nil
}
