package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/safezard/safezard-api/internal/dto"
	"github.com/safezard/safezard-api/internal/identity"
)

// ErrRegistrationRejected indicates the provider refused the sign-up without
// supplying a usable account.
var ErrRegistrationRejected = errors.New("registration failed")

// AuthService orchestrates account flows against the identity provider.
type AuthService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (string, error)
	Login(ctx context.Context, payload dto.LoginRequest) (dto.SessionResponse, error)
	Confirm(ctx context.Context, payload dto.ConfirmRequest) (dto.SessionResponse, error)
	Logout(ctx context.Context, accessToken string)
	UpdateEmail(ctx context.Context, accessToken string, payload dto.UpdateEmailRequest) error
	ResetPassword(ctx context.Context, accessToken, email, password string) (string, error)
}

type authService struct {
	provider  identity.Provider
	roles     RoleResolver
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAuthService constructs the auth service.
func NewAuthService(provider identity.Provider, roles RoleResolver, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		provider:  provider,
		roles:     roles,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Register(ctx context.Context, payload dto.RegisterRequest) (string, error) {
	if err := s.validator.Struct(payload); err != nil {
		return "", err
	}

	user, err := s.provider.SignUp(ctx, payload.Email, payload.Password)
	if err != nil {
		return "", err
	}

	if user.ID == "" {
		return "", ErrRegistrationRejected
	}

	s.logger.Info().Str("user_id", user.ID).Msg("account registered")

	return "registration successful, please check your email to verify your account", nil
}

func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.SessionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SessionResponse{}, err
	}

	session, err := s.provider.SignInWithPassword(ctx, payload.Email, payload.Password)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	return s.sessionResponse(ctx, session), nil
}

func (s *authService) Confirm(ctx context.Context, payload dto.ConfirmRequest) (dto.SessionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SessionResponse{}, err
	}

	user, err := s.provider.GetUser(ctx, payload.AccessToken)
	if err != nil {
		return dto.SessionResponse{}, err
	}

	return s.sessionResponse(ctx, identity.Session{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		User:         user,
	}), nil
}

// Logout is best-effort: provider failures are logged and swallowed because
// the client discards its token either way.
func (s *authService) Logout(ctx context.Context, accessToken string) {
	if err := s.provider.SignOut(ctx, accessToken); err != nil {
		s.logger.Warn().Err(err).Msg("provider sign-out failed")
	}
}

func (s *authService) UpdateEmail(ctx context.Context, accessToken string, payload dto.UpdateEmailRequest) error {
	if err := s.validator.Struct(payload); err != nil {
		return err
	}

	return s.provider.UpdateEmail(ctx, accessToken, payload.Email)
}

// ResetPassword updates the password directly when one is supplied, otherwise
// it triggers the provider's reset-mail flow for the caller's address.
func (s *authService) ResetPassword(ctx context.Context, accessToken, email, password string) (string, error) {
	if password == "" {
		if err := s.provider.SendPasswordReset(ctx, email); err != nil {
			return "", err
		}
		return "password reset link sent to your email", nil
	}

	if err := s.provider.UpdatePassword(ctx, accessToken, password); err != nil {
		return "", err
	}

	return "password updated successfully", nil
}

func (s *authService) sessionResponse(ctx context.Context, session identity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		User: dto.SessionUser{
			ID:    session.User.ID,
			Email: session.User.Email,
			Role:  s.roles.Resolve(ctx, session.User.ID),
		},
	}
}
