package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// OrderFilter narrows ListOrders results
type OrderFilter struct {
	Status   string
	DateFrom string
	DateTo   string
	Offset   int
	Limit    int
}

// ListOrders retrieves a page of orders
func (c *Client) ListOrders(ctx context.Context, filter OrderFilter) (*Page[Order], error) {
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	query := url.Values{
		"offset": {strconv.Itoa(filter.Offset)},
		"limit":  {strconv.Itoa(filter.Limit)},
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.DateFrom != "" {
		query.Set("dateFrom", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query.Set("dateTo", filter.DateTo)
	}

	resp, err := c.do(ctx, http.MethodGet, "/orders", query, nil)
	if err != nil {
		return nil, err
	}

	var page Page[Order]
	if err := parseResponse(resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateOrder opens a new, empty order
func (c *Client) CreateOrder(ctx context.Context) (*Order, error) {
	resp, err := c.do(ctx, http.MethodPost, "/orders", nil, struct{}{})
	if err != nil {
		return nil, err
	}

	var order Order
	if err := parseResponse(resp, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderTotal retrieves the server-computed total price of an order.
// Pricing rules live entirely on the backend.
func (c *Client) OrderTotal(ctx context.Context, orderID string) (float64, error) {
	path := fmt.Sprintf("/orders/%s/totalPrice", orderID)
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return 0, err
	}

	var total float64
	if err := parseResponse(resp, &total); err != nil {
		return 0, err
	}
	return total, nil
}

// OrderTotals fans out one OrderTotal request per order and merges the
// results by order id. Arrival order is irrelevant. The first failure wins
// and cancels the remaining requests via ctx.
func (c *Client) OrderTotals(ctx context.Context, orders []Order) (map[string]float64, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		id    string
		total float64
		err   error
	}

	results := make(chan result, len(orders))
	for _, order := range orders {
		go func(id string) {
			total, err := c.OrderTotal(ctx, id)
			results <- result{id: id, total: total, err: err}
		}(order.ID)
	}

	totals := make(map[string]float64, len(orders))
	var firstErr error
	for range orders {
		r := <-results
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
				cancel()
			}
			continue
		}
		totals[r.id] = r.total
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return totals, nil
}

// ListOrderItems retrieves the lines of an order
func (c *Client) ListOrderItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	path := fmt.Sprintf("/orders/%s/items", orderID)
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var items []OrderItem
	if err := parseResponse(resp, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddOrderItemRequest adds a product (or one of its variations) to an order.
// Exactly one of ProductID and ProductVariationID is set.
type AddOrderItemRequest struct {
	ProductID          string `json:"productId,omitempty"`
	ProductVariationID string `json:"productVariationId,omitempty"`
	Quantity           int    `json:"quantity"`
}

// AddOrderItem appends a line to an order
func (c *Client) AddOrderItem(ctx context.Context, orderID string, req AddOrderItemRequest) (*OrderItem, error) {
	path := fmt.Sprintf("/orders/%s/items", orderID)
	resp, err := c.do(ctx, http.MethodPost, path, nil, req)
	if err != nil {
		return nil, err
	}

	var item OrderItem
	if err := parseResponse(resp, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateOrderItem changes the quantity of an order line
func (c *Client) UpdateOrderItem(ctx context.Context, orderID, itemID string, quantity int) (*OrderItem, error) {
	path := fmt.Sprintf("/orders/%s/items/%s", orderID, itemID)
	resp, err := c.do(ctx, http.MethodPut, path, nil, map[string]int{"quantity": quantity})
	if err != nil {
		return nil, err
	}

	var item OrderItem
	if err := parseResponse(resp, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteOrderItem removes a line from an order
func (c *Client) DeleteOrderItem(ctx context.Context, orderID, itemID string) error {
	path := fmt.Sprintf("/orders/%s/items/%s", orderID, itemID)
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return discardResponse(resp)
}

// ListOrderTransactions retrieves a page of an order's transactions
func (c *Client) ListOrderTransactions(ctx context.Context, orderID string, offset, limit int) (*Page[Transaction], error) {
	if limit == 0 {
		limit = 20
	}
	query := url.Values{
		"offset": {strconv.Itoa(offset)},
		"limit":  {strconv.Itoa(limit)},
	}

	path := fmt.Sprintf("/orders/%s/transactions", orderID)
	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	var page Page[Transaction]
	if err := parseResponse(resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateTransactionRequest is the payment payload for an order
type CreateTransactionRequest struct {
	PaymentMethodType string  `json:"paymentMethodType"`
	Amount            float64 `json:"amount"`
}

// CreateTransaction records a payment attempt against an order
func (c *Client) CreateTransaction(ctx context.Context, orderID string, req CreateTransactionRequest) (*Transaction, error) {
	path := fmt.Sprintf("/orders/%s/transactions", orderID)
	resp, err := c.do(ctx, http.MethodPost, path, nil, req)
	if err != nil {
		return nil, err
	}

	var tx Transaction
	if err := parseResponse(resp, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetTransaction retrieves one transaction of an order
func (c *Client) GetTransaction(ctx context.Context, orderID, transactionID string) (*Transaction, error) {
	path := fmt.Sprintf("/orders/%s/transactions/%s", orderID, transactionID)
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var tx Transaction
	if err := parseResponse(resp, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// CompleteTransaction marks a cash transaction as completed
func (c *Client) CompleteTransaction(ctx context.Context, orderID, transactionID string) (*Transaction, error) {
	path := fmt.Sprintf("/orders/%s/transactions/%s/complete", orderID, transactionID)
	resp, err := c.do(ctx, http.MethodPatch, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var tx Transaction
	if err := parseResponse(resp, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// RefundTransaction refunds a transaction
func (c *Client) RefundTransaction(ctx context.Context, orderID, transactionID string) (*Transaction, error) {
	path := fmt.Sprintf("/orders/%s/transactions/%s/refund", orderID, transactionID)
	resp, err := c.do(ctx, http.MethodPatch, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var tx Transaction
	if err := parseResponse(resp, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
