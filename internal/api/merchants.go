package api

import (
	"context"
	"net/http"
)

// ListMerchants retrieves the full merchant list
func (c *Client) ListMerchants(ctx context.Context) ([]Merchant, error) {
	resp, err := c.do(ctx, http.MethodGet, "/merchants", nil, nil)
	if err != nil {
		return nil, err
	}

	var merchants []Merchant
	if err := parseResponse(resp, &merchants); err != nil {
		return nil, err
	}
	return merchants, nil
}

// CreateMerchantRequest is the merchant creation form payload
type CreateMerchantRequest struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone,omitempty"`
	Email    string   `json:"email"`
	Currency string   `json:"currency"`
	Address  string   `json:"address,omitempty"`
	City     string   `json:"city,omitempty"`
	Country  string   `json:"country"`
	Postcode string   `json:"postcode,omitempty"`
	Schedule Schedule `json:"schedule,omitempty"`
}

// CreateMerchant creates a new merchant
func (c *Client) CreateMerchant(ctx context.Context, req CreateMerchantRequest) (*Merchant, error) {
	resp, err := c.do(ctx, http.MethodPost, "/merchants", nil, req)
	if err != nil {
		return nil, err
	}

	var merchant Merchant
	if err := parseResponse(resp, &merchant); err != nil {
		return nil, err
	}
	return &merchant, nil
}

// GetMerchant retrieves a merchant by id
func (c *Client) GetMerchant(ctx context.Context, merchantID string) (*Merchant, error) {
	resp, err := c.do(ctx, http.MethodGet, "/merchants/"+merchantID, nil, nil)
	if err != nil {
		return nil, err
	}

	var merchant Merchant
	if err := parseResponse(resp, &merchant); err != nil {
		return nil, err
	}
	return &merchant, nil
}

// UpdateMerchant updates a merchant by id
func (c *Client) UpdateMerchant(ctx context.Context, merchantID string, req CreateMerchantRequest) (*Merchant, error) {
	resp, err := c.do(ctx, http.MethodPut, "/merchants/"+merchantID, nil, req)
	if err != nil {
		return nil, err
	}

	var merchant Merchant
	if err := parseResponse(resp, &merchant); err != nil {
		return nil, err
	}
	return &merchant, nil
}

// DeleteMerchant removes a merchant by id
func (c *Client) DeleteMerchant(ctx context.Context, merchantID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/merchants/"+merchantID, nil, nil)
	if err != nil {
		return err
	}
	return discardResponse(resp)
}
