package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// GoTrueClient talks to a GoTrue-compatible auth endpoint over REST.
type GoTrueClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewGoTrueClient builds a provider client for the given base URL and API key.
func NewGoTrueClient(baseURL, apiKey string, logger zerolog.Logger) *GoTrueClient {
	return &GoTrueClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger.With().Str("component", "identity_client").Logger(),
	}
}

// SignUp registers a new account. The provider sends the verification mail.
func (c *GoTrueClient) SignUp(ctx context.Context, email, password string) (User, error) {
	var user User
	payload := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/signup", "", payload, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// SignInWithPassword exchanges credentials for a session.
func (c *GoTrueClient) SignInWithPassword(ctx context.Context, email, password string) (Session, error) {
	var session Session
	payload := map[string]string{"email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/token?grant_type=password", "", payload, &session)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	return session, nil
}

// GetUser resolves the account behind an access token.
func (c *GoTrueClient) GetUser(ctx context.Context, accessToken string) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/user", accessToken, nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// SignOut revokes the session behind the token.
func (c *GoTrueClient) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/logout", accessToken, nil, nil)
}

// UpdateEmail asks the provider to change the account email. The provider
// sends a confirmation mail to the new address.
func (c *GoTrueClient) UpdateEmail(ctx context.Context, accessToken, email string) error {
	return c.do(ctx, http.MethodPut, "/user", accessToken, map[string]string{"email": email}, nil)
}

// UpdatePassword changes the password of the authenticated account.
func (c *GoTrueClient) UpdatePassword(ctx context.Context, accessToken, password string) error {
	return c.do(ctx, http.MethodPut, "/user", accessToken, map[string]string{"password": password}, nil)
}

// SendPasswordReset triggers the provider's reset-mail flow.
func (c *GoTrueClient) SendPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/recover", "", map[string]string{"email": email}, nil)
}

func (c *GoTrueClient) do(ctx context.Context, method, path, accessToken string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		message := decodeErrorMessage(resp.Body)
		c.logger.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("provider request rejected")
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}

	return nil
}

// decodeErrorMessage pulls a human-readable message out of the provider's
// error body, which varies between {msg}, {message} and {error_description}.
func decodeErrorMessage(body io.Reader) string {
	var parsed struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return "request rejected"
	}

	for _, candidate := range []string{parsed.Msg, parsed.Message, parsed.ErrorDescription} {
		if candidate != "" {
			return candidate
		}
	}
	return "request rejected"
}
