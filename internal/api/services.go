package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ServiceFilter narrows ListServices results
type ServiceFilter struct {
	Name     string
	Price    string
	Duration string
	Offset   int
	Limit    int
}

// ListServices retrieves a page of services
func (c *Client) ListServices(ctx context.Context, filter ServiceFilter) (*Page[Service], error) {
	if filter.Limit == 0 {
		filter.Limit = 10
	}
	query := url.Values{
		"offset": {strconv.Itoa(filter.Offset)},
		"limit":  {strconv.Itoa(filter.Limit)},
	}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.Price != "" {
		query.Set("price", filter.Price)
	}
	if filter.Duration != "" {
		query.Set("duration", filter.Duration)
	}

	resp, err := c.do(ctx, http.MethodGet, "/services", query, nil)
	if err != nil {
		return nil, err
	}

	var page Page[Service]
	if err := parseResponse(resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateServiceRequest is the service creation payload
type CreateServiceRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// CreateService creates a new service
func (c *Client) CreateService(ctx context.Context, req CreateServiceRequest) (*Service, error) {
	resp, err := c.do(ctx, http.MethodPost, "/services", nil, req)
	if err != nil {
		return nil, err
	}

	var service Service
	if err := parseResponse(resp, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// GetService retrieves a service by id
func (c *Client) GetService(ctx context.Context, serviceID string) (*Service, error) {
	resp, err := c.do(ctx, http.MethodGet, "/services/"+serviceID, nil, nil)
	if err != nil {
		return nil, err
	}

	var service Service
	if err := parseResponse(resp, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// UpdateService updates a service by id
func (c *Client) UpdateService(ctx context.Context, serviceID string, req CreateServiceRequest) (*Service, error) {
	resp, err := c.do(ctx, http.MethodPut, "/services/"+serviceID, nil, req)
	if err != nil {
		return nil, err
	}

	var service Service
	if err := parseResponse(resp, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// DeleteService removes a service by id
func (c *Client) DeleteService(ctx context.Context, serviceID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/services/"+serviceID, nil, nil)
	if err != nil {
		return err
	}
	return discardResponse(resp)
}

// AvailableSlots retrieves open booking slots for a service on a date
// (YYYY-MM-DD), optionally scoped to one employee. Slot computation is
// entirely server-side.
func (c *Client) AvailableSlots(ctx context.Context, serviceID, date, userID string) ([]Slot, error) {
	query := url.Values{"date": {date}}
	if userID != "" {
		query.Set("userId", userID)
	}

	path := fmt.Sprintf("/services/%s/availableSlots", serviceID)
	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	var slots SlotList
	if err := parseResponse(resp, &slots); err != nil {
		return nil, err
	}
	return slots.Items, nil
}
