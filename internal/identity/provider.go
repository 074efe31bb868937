// Package identity wraps the external GoTrue-compatible authentication
// provider. The provider owns accounts, passwords and email verification;
// this service only consumes its REST API.
package identity

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned when the provider rejects a password sign-in.
var ErrInvalidCredentials = errors.New("invalid login credentials")

// User is the provider's view of an account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is returned by password sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// APIError carries a provider-reported failure with its HTTP status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("identity provider error (%d): %s", e.Status, e.Message)
}

// Provider abstracts the auth provider so services can be tested with stubs.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (User, error)
	SignInWithPassword(ctx context.Context, email, password string) (Session, error)
	GetUser(ctx context.Context, accessToken string) (User, error)
	SignOut(ctx context.Context, accessToken string) error
	UpdateEmail(ctx context.Context, accessToken, email string) error
	UpdatePassword(ctx context.Context, accessToken, password string) error
	SendPasswordReset(ctx context.Context, email string) error
}
