package dto

// RegisterRequest carries a sign-up submission.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest carries a password sign-in submission.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ConfirmRequest carries the access token delivered by the provider's
// email-verification redirect.
type ConfirmRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token"`
}

// UpdateEmailRequest asks the provider to change the account email.
type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest either sets a new password directly or, when empty,
// requests the provider's reset-mail flow.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// SessionUser is the authenticated account with its resolved role.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionResponse is returned by login and confirm.
type SessionResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	User         SessionUser `json:"user"`
}
