package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/safezard/safezard-api/internal/dto"
	"github.com/safezard/safezard-api/internal/identity"
	"github.com/safezard/safezard-api/internal/models"
)

type stubProvider struct {
	user    identity.User
	session identity.Session
	err     error

	signOutCalls   int
	resetEmails    []string
	updatedEmail   string
	passwordSet    string
	signOutToken   string
	lastResetEmail string
}

func (s *stubProvider) SignUp(context.Context, string, string) (identity.User, error) {
	return s.user, s.err
}

func (s *stubProvider) SignInWithPassword(context.Context, string, string) (identity.Session, error) {
	return s.session, s.err
}

func (s *stubProvider) GetUser(context.Context, string) (identity.User, error) {
	return s.user, s.err
}

func (s *stubProvider) SignOut(_ context.Context, token string) error {
	s.signOutCalls++
	s.signOutToken = token
	return s.err
}

func (s *stubProvider) UpdateEmail(_ context.Context, _ string, email string) error {
	s.updatedEmail = email
	return s.err
}

func (s *stubProvider) UpdatePassword(_ context.Context, _ string, password string) error {
	s.passwordSet = password
	return s.err
}

func (s *stubProvider) SendPasswordReset(_ context.Context, email string) error {
	s.resetEmails = append(s.resetEmails, email)
	s.lastResetEmail = email
	return s.err
}

func newAuthService(provider identity.Provider, role string) AuthService {
	return NewAuthService(provider, &stubRoleResolver{role: role}, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())
}

func TestAuthRegisterSuccess(t *testing.T) {
	provider := &stubProvider{user: identity.User{ID: "user-1", Email: "new@example.com"}}
	svc := newAuthService(provider, models.RoleStudent)

	message, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "new@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "registration successful, please check your email to verify your account", message)
}

func TestAuthRegisterValidatesPayload(t *testing.T) {
	svc := newAuthService(&stubProvider{}, models.RoleStudent)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "not-an-email", Password: "secret1"})
	require.Error(t, err)

	_, err = svc.Register(context.Background(), dto.RegisterRequest{Email: "a@example.com", Password: "short"})
	require.Error(t, err, "passwords under six characters are rejected")
}

func TestAuthRegisterRejectedWithoutAccount(t *testing.T) {
	svc := newAuthService(&stubProvider{}, models.RoleStudent)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{Email: "a@example.com", Password: "secret1"})
	require.ErrorIs(t, err, ErrRegistrationRejected)
}

func TestAuthLoginResolvesRoleFromStore(t *testing.T) {
	provider := &stubProvider{session: identity.Session{
		AccessToken:  "token-abc",
		RefreshToken: "refresh-xyz",
		User:         identity.User{ID: "user-1", Email: "fac@example.com"},
	}}
	svc := newAuthService(provider, models.RoleFaculty)

	session, err := svc.Login(context.Background(), dto.LoginRequest{Email: "fac@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "token-abc", session.AccessToken)
	require.Equal(t, "user-1", session.User.ID)
	require.Equal(t, models.RoleFaculty, session.User.Role, "role comes from the profile store, never the token")
}

func TestAuthLoginPassesThroughCredentialFailure(t *testing.T) {
	provider := &stubProvider{err: identity.ErrInvalidCredentials}
	svc := newAuthService(provider, models.RoleStudent)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@example.com", Password: "wrongpw"})
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestAuthConfirmBuildsSessionFromToken(t *testing.T) {
	provider := &stubProvider{user: identity.User{ID: "user-1", Email: "a@example.com"}}
	svc := newAuthService(provider, models.RoleStudent)

	session, err := svc.Confirm(context.Background(), dto.ConfirmRequest{AccessToken: "token-abc", RefreshToken: "refresh-xyz"})
	require.NoError(t, err)
	require.Equal(t, "token-abc", session.AccessToken)
	require.Equal(t, "refresh-xyz", session.RefreshToken)
	require.Equal(t, models.RoleStudent, session.User.Role)
}

func TestAuthConfirmRequiresToken(t *testing.T) {
	svc := newAuthService(&stubProvider{}, models.RoleStudent)

	_, err := svc.Confirm(context.Background(), dto.ConfirmRequest{})
	require.Error(t, err)
}

func TestAuthLogoutSwallowsProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("provider unavailable")}
	svc := newAuthService(provider, models.RoleStudent)

	svc.Logout(context.Background(), "token-abc")
	require.Equal(t, 1, provider.signOutCalls)
	require.Equal(t, "token-abc", provider.signOutToken)
}

func TestAuthResetPasswordSendsMailWhenEmpty(t *testing.T) {
	provider := &stubProvider{}
	svc := newAuthService(provider, models.RoleStudent)

	message, err := svc.ResetPassword(context.Background(), "token-abc", "a@example.com", "")
	require.NoError(t, err)
	require.Equal(t, "password reset link sent to your email", message)
	require.Equal(t, "a@example.com", provider.lastResetEmail)
	require.Empty(t, provider.passwordSet)
}

func TestAuthResetPasswordUpdatesDirectly(t *testing.T) {
	provider := &stubProvider{}
	svc := newAuthService(provider, models.RoleStudent)

	message, err := svc.ResetPassword(context.Background(), "token-abc", "a@example.com", "newsecret")
	require.NoError(t, err)
	require.Equal(t, "password updated successfully", message)
	require.Equal(t, "newsecret", provider.passwordSet)
	require.Empty(t, provider.resetEmails)
}

func TestAuthUpdateEmail(t *testing.T) {
	provider := &stubProvider{}
	svc := newAuthService(provider, models.RoleStudent)

	require.NoError(t, svc.UpdateEmail(context.Background(), "token-abc", dto.UpdateEmailRequest{Email: "next@example.com"}))
	require.Equal(t, "next@example.com", provider.updatedEmail)

	require.Error(t, svc.UpdateEmail(context.Background(), "token-abc", dto.UpdateEmailRequest{Email: "bad"}))
}
