package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Me retrieves the identity behind the current session token.
// It is fetched fresh at every navigation decision point and never cached
// across render cycles.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var identity Identity
	if err := parseResponse(resp, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// UserFilter narrows ListUsers results
type UserFilter struct {
	FirstName string
	LastName  string
	Email     string
}

// ListUsers retrieves users, optionally filtered by name or email
func (c *Client) ListUsers(ctx context.Context, filter UserFilter) ([]Identity, error) {
	query := url.Values{}
	if filter.FirstName != "" {
		query.Set("firstname", filter.FirstName)
	}
	if filter.LastName != "" {
		query.Set("lastname", filter.LastName)
	}
	if filter.Email != "" {
		query.Set("email", filter.Email)
	}

	resp, err := c.do(ctx, http.MethodGet, "/users", query, nil)
	if err != nil {
		return nil, err
	}

	var users []Identity
	if err := parseResponse(resp, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser retrieves a user by id
func (c *Client) GetUser(ctx context.Context, userID string) (*Identity, error) {
	resp, err := c.do(ctx, http.MethodGet, "/users/"+userID, nil, nil)
	if err != nil {
		return nil, err
	}

	var user Identity
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserRequest carries the mutable user fields
type UpdateUserRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      Role   `json:"role,omitempty"`
}

// UpdateUser updates a user by id
func (c *Client) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*Identity, error) {
	resp, err := c.do(ctx, http.MethodPut, "/users/"+userID, nil, req)
	if err != nil {
		return nil, err
	}

	var user Identity
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user by id
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/users/"+userID, nil, nil)
	if err != nil {
		return err
	}
	return discardResponse(resp)
}

// AssignMerchant binds a merchant to a user
func (c *Client) AssignMerchant(ctx context.Context, userID, merchantID string) error {
	path := fmt.Sprintf("/users/%s/merchant", userID)
	resp, err := c.do(ctx, http.MethodPost, path, nil, map[string]string{"merchantId": merchantID})
	if err != nil {
		return err
	}
	return discardResponse(resp)
}

// SwitchMerchant re-points the current user's merchant association.
// An empty merchantID unbinds the user.
func (c *Client) SwitchMerchant(ctx context.Context, merchantID string) error {
	query := url.Values{}
	if merchantID != "" {
		query.Set("merchantId", merchantID)
	}

	resp, err := c.do(ctx, http.MethodPatch, "/users/switch-merchant", query, nil)
	if err != nil {
		return err
	}
	return discardResponse(resp)
}
