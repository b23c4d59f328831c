package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ProductFilter narrows ListProducts results
type ProductFilter struct {
	Name       string
	Price      string
	CategoryID string
	Offset     int
	Limit      int
}

// ListProducts retrieves a page of products
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) (*Page[Product], error) {
	if filter.Limit == 0 {
		filter.Limit = 20
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
	if filter.CategoryID != "" {
		query.Set("categoryId", filter.CategoryID)
	}

	resp, err := c.do(ctx, http.MethodGet, "/products", query, nil)
	if err != nil {
		return nil, err
	}

	var page Page[Product]
	if err := parseResponse(resp, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateProductRequest is the product creation payload
type CreateProductRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	CategoryID string  `json:"categoryId,omitempty"`
}

// CreateProduct creates a new product
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	resp, err := c.do(ctx, http.MethodPost, "/products", nil, req)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := parseResponse(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProduct retrieves a product by id
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	resp, err := c.do(ctx, http.MethodGet, "/products/"+productID, nil, nil)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := parseResponse(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct updates a product by id
func (c *Client) UpdateProduct(ctx context.Context, productID string, req CreateProductRequest) (*Product, error) {
	resp, err := c.do(ctx, http.MethodPut, "/products/"+productID, nil, req)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := parseResponse(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product by id
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/products/"+productID, nil, nil)
	if err != nil {
		return err
	}
	return discardResponse(resp)
}

// AdjustProductQuantity changes a product's stock level by a signed delta.
// The inventory math itself is server-side.
func (c *Client) AdjustProductQuantity(ctx context.Context, productID string, adjustment int) (*Product, error) {
	path := fmt.Sprintf("/products/%s/adjust-quantity", productID)
	resp, err := c.do(ctx, http.MethodPatch, path, nil, map[string]int{"adjustment": adjustment})
	if err != nil {
		return nil, err
	}

	var product Product
	if err := parseResponse(resp, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListVariations retrieves all variations of a product
func (c *Client) ListVariations(ctx context.Context, productID string) ([]ProductVariation, error) {
	path := fmt.Sprintf("/products/%s/variations", productID)
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var variations []ProductVariation
	if err := parseResponse(resp, &variations); err != nil {
		return nil, err
	}
	return variations, nil
}

// CreateVariationRequest is the variation creation payload
type CreateVariationRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateVariation adds a variation to a product
func (c *Client) CreateVariation(ctx context.Context, productID string, req CreateVariationRequest) (*ProductVariation, error) {
	path := fmt.Sprintf("/products/%s/variations", productID)
	resp, err := c.do(ctx, http.MethodPost, path, nil, req)
	if err != nil {
		return nil, err
	}

	var variation ProductVariation
	if err := parseResponse(resp, &variation); err != nil {
		return nil, err
	}
	return &variation, nil
}

// GetVariation retrieves one variation of a product
func (c *Client) GetVariation(ctx context.Context, productID, variationID string) (*ProductVariation, error) {
	path := fmt.Sprintf("/products/%s/variations/%s", productID, variationID)
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var variation ProductVariation
	if err := parseResponse(resp, &variation); err != nil {
		return nil, err
	}
	return &variation, nil
}

// UpdateVariation updates one variation of a product
func (c *Client) UpdateVariation(ctx context.Context, productID, variationID string, req CreateVariationRequest) (*ProductVariation, error) {
	path := fmt.Sprintf("/products/%s/variations/%s", productID, variationID)
	resp, err := c.do(ctx, http.MethodPut, path, nil, req)
	if err != nil {
		return nil, err
	}

	var variation ProductVariation
	if err := parseResponse(resp, &variation); err != nil {
		return nil, err
	}
	return &variation, nil
}

// DeleteVariation removes one variation of a product
func (c *Client) DeleteVariation(ctx context.Context, productID, variationID string) error {
	path := fmt.Sprintf("/products/%s/variations/%s", productID, variationID)
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return discardResponse(resp)
}

// AdjustVariationQuantity changes a variation's stock level by a signed delta
func (c *Client) AdjustVariationQuantity(ctx context.Context, productID, variationID string, adjustment int) (*ProductVariation, error) {
	path := fmt.Sprintf("/products/%s/variations/%s/adjust-quantity", productID, variationID)
	resp, err := c.do(ctx, http.MethodPatch, path, nil, map[string]int{"adjustment": adjustment})
	if err != nil {
		return nil, err
	}

	var variation ProductVariation
	if err := parseResponse(resp, &variation); err != nil {
		return nil, err
	}
	return &variation, nil
}
