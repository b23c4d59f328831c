package api

import (
	"context"
	"net/http"
)

// ListCategories retrieves all product categories visible to the caller
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	resp, err := c.do(ctx, http.MethodGet, "/productCategories", nil, nil)
	if err != nil {
		return nil, err
	}

	var categories []Category
	if err := parseResponse(resp, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategoryRequest is the category creation payload
type CreateCategoryRequest struct {
	Name       string `json:"name"`
	MerchantID string `json:"merchantId"`
}

// CreateCategory creates a new product category
func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error) {
	resp, err := c.do(ctx, http.MethodPost, "/productCategories", nil, req)
	if err != nil {
		return nil, err
	}

	var category Category
	if err := parseResponse(resp, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategory retrieves a category by id
func (c *Client) GetCategory(ctx context.Context, categoryID string) (*Category, error) {
	resp, err := c.do(ctx, http.MethodGet, "/productCategories/"+categoryID, nil, nil)
	if err != nil {
		return nil, err
	}

	var category Category
	if err := parseResponse(resp, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory renames a category
func (c *Client) UpdateCategory(ctx context.Context, categoryID, name string) (*Category, error) {
	resp, err := c.do(ctx, http.MethodPut, "/productCategories/"+categoryID, nil, map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	var category Category
	if err := parseResponse(resp, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category by id
func (c *Client) DeleteCategory(ctx context.Context, categoryID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/productCategories/"+categoryID, nil, nil)
	if err != nil {
		return err
	}
	return discardResponse(resp)
}
