package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/safezard/safezard-api/internal/models"
	"github.com/safezard/safezard-api/internal/repository"
)

// RoleResolver maps an identity to its stored role.
type RoleResolver interface {
	// Resolve returns the user's role, degrading to student on any failure.
	// The system never elevates on uncertainty.
	Resolve(ctx context.Context, userID string) string
	// Lookup returns the stored role or an error for store failures; a
	// missing profile or empty role field resolves to student without error.
	Lookup(ctx context.Context, userID string) (string, error)
}

type roleResolver struct {
	profiles repository.ProfileRepository
	logger   zerolog.Logger
}

// NewRoleResolver constructs a resolver backed by the profiles table.
func NewRoleResolver(profiles repository.ProfileRepository, logger zerolog.Logger) RoleResolver {
	return &roleResolver{
		profiles: profiles,
		logger:   logger.With().Str("component", "role_resolver").Logger(),
	}
}

func (r *roleResolver) Resolve(ctx context.Context, userID string) string {
	role, err := r.Lookup(ctx, userID)
	if err != nil {
		r.logger.Warn().Err(err).Str("user_id", userID).Msg("role lookup failed, defaulting to student")
		return models.RoleStudent
	}

	return role
}

func (r *roleResolver) Lookup(ctx context.Context, userID string) (string, error) {
	profile, err := r.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoleStudent, nil
		}
		return "", err
	}

	if profile.Role == "" {
		return models.RoleStudent, nil
	}

	return profile.Role, nil
}
