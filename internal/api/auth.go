package api

import (
	"context"
	"net/http"

	"pickfoo-owner/internal/domain"
)

// ErrNeedsVerification marks a login rejected because the email address has
// not been verified yet.
type ErrNeedsVerification struct {
	Email string
}

func (e *ErrNeedsVerification) Error() string {
	return "api: email not verified: " + e.Email
}

// Me fetches the current identity. Drives session initialization.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	env, err := c.roundTrip(ctx, http.MethodGet, "/auth/me", nil, "")
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	body := map[string]string{"email": email, "password": password}
	raw, err := marshal(body)
	if err != nil {
		return nil, err
	}
	env, err := c.roundTrip(ctx, http.MethodPost, "/auth/login", raw, "application/json")
	if err != nil {
		if env != nil && env.NeedsVerification {
			return nil, &ErrNeedsVerification{Email: env.Email}
		}
		return nil, err
	}
	return env.User, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     "owner",
	}
	raw, err := marshal(body)
	if err != nil {
		return nil, err
	}
	env, err := c.roundTrip(ctx, http.MethodPost, "/auth/register", raw, "application/json")
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

// Logout is best-effort server-side invalidation. Callers clear local state
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.roundTrip(ctx, http.MethodGet, "/auth/logout", nil, "")
	return err
}

func (c *Client) VerifyEmail(ctx context.Context, email, otp string) (*domain.User, error) {
	body := map[string]string{"email": email, "otp": otp}
	raw, err := marshal(body)
	if err != nil {
		return nil, err
	}
	env, err := c.roundTrip(ctx, http.MethodPost, "/auth/verify-email", raw, "application/json")
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) ResendOTP(ctx context.Context, email string) error {
	return c.sendJSON(ctx, http.MethodPost, "/auth/resend-otp", map[string]string{"email": email}, nil)
}
