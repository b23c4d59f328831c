package api

import (
	"context"
	"net/http"

	"github.com/shopipy/posctl/internal/errors"
)

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body for POST /auth/register.
// Role is a pure client decision: EMPLOYEE to join an existing business,
// MERCHANT_OWNER to create one.
type RegisterRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      Role     `json:"role"`
	Schedule  Schedule `json:"schedule,omitempty"`
}

// tokenResponse carries the issued session token
type tokenResponse struct {
	Token string `json:"jwt-token"`
}

// Login exchanges credentials for a session token. A non-success response
// fails with the backend's message verbatim; the client token is only set
// on success.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.NewAuthFailedError(errorMessage(resp))
	}

	var tr tokenResponse
	if err := decodeToken(resp, &tr); err != nil {
		return "", err
	}

	c.SetToken(tr.Token)
	return tr.Token, nil
}

// Register creates an account and returns the issued session token.
// The password equality precondition is enforced by the caller before any
// network call is made.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/register", nil, req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Wrap(errors.ErrCodeRegisterFailed, errorMessage(resp), nil)
	}

	var tr tokenResponse
	if err := decodeToken(resp, &tr); err != nil {
		return "", err
	}

	c.SetToken(tr.Token)
	return tr.Token, nil
}

func decodeToken(resp *http.Response, tr *tokenResponse) error {
	if err := decodeJSON(resp, tr); err != nil {
		return err
	}
	if tr.Token == "" {
		return errors.New(errors.ErrCodeDecodeFailed, "auth response did not contain a token")
	}
	return nil
}
