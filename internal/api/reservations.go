package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ReservationFilter narrows ListReservations results
type ReservationFilter struct {
	ServiceName   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	AppointedAt   string
	Offset        int
	Limit         int
}

// ListReservations retrieves a page of reservations
func (c *Client) ListReservations(ctx context.Context, filter ReservationFilter) (*Page[Reservation], error) {
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	query := url.Values{
		"offset": {strconv.Itoa(filter.Offset)},
		"limit":  {strconv.Itoa(filter.Limit)},
	}
	if filter.ServiceName != "" {
		query.Set("service-name", filter.ServiceName)
	}
	if filter.CustomerName != "" {
		query.Set("customer-name", filter.CustomerName)
	}
	if filter.CustomerEmail != "" {
		query.Set("customer-email", filter.CustomerEmail)
	}
	if filter.CustomerPhone != "" {
		query.Set("customer-phone", filter.CustomerPhone)
	}
	if filter.AppointedAt != "" {
		query.Set("appointedAt", filter.AppointedAt)
	}

	resp, err := c.do(ctx, http.MethodGet, "/reservations", query, nil)
	if err != nil {
		return nil, err
	}

	var page Page[Reservation]
	if err := parseResponse(resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateReservationRequest books a service slot for a customer.
// AppointedAt is a slot start time passed back verbatim.
type CreateReservationRequest struct {
	ServiceID   string `json:"serviceId"`
	EmployeeID  string `json:"employeeId"`
	AppointedAt string `json:"appointedAt"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
}

// CreateReservation creates a new reservation
func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	resp, err := c.do(ctx, http.MethodPost, "/reservations", nil, req)
	if err != nil {
		return nil, err
	}

	var reservation Reservation
	if err := parseResponse(resp, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetReservation retrieves a reservation by id
func (c *Client) GetReservation(ctx context.Context, reservationID string) (*Reservation, error) {
	resp, err := c.do(ctx, http.MethodGet, "/reservations/"+reservationID, nil, nil)
	if err != nil {
		return nil, err
	}

	var reservation Reservation
	if err := parseResponse(resp, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservationRequest carries the mutable customer contact fields
type UpdateReservationRequest struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	AppointedAt string `json:"appointedAt,omitempty"`
}

// UpdateReservation updates a reservation by id
func (c *Client) UpdateReservation(ctx context.Context, reservationID string, req UpdateReservationRequest) (*Reservation, error) {
	resp, err := c.do(ctx, http.MethodPatch, "/reservations/"+reservationID, nil, req)
	if err != nil {
		return nil, err
	}

	var reservation Reservation
	if err := parseResponse(resp, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CancelReservation cancels a reservation by id
func (c *Client) CancelReservation(ctx context.Context, reservationID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/reservations/"+reservationID, nil, nil)
	if err != nil {
		return err
	}
	return discardResponse(resp)
}
