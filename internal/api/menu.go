package api

import (
	"context"
	"net/http"

	"pickfoo-owner/internal/domain"
)

func (c *Client) MyMenu(ctx context.Context) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	if err := c.getJSON(ctx, "/menu", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	var out domain.MenuItem
	if err := c.sendJSON(ctx, http.MethodPost, "/menu", item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, fields interface{}) (*domain.MenuItem, error) {
	var out domain.MenuItem
	if err := c.sendJSON(ctx, http.MethodPut, "/menu/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/menu/"+id, nil, nil)
}

func (c *Client) AssignRestaurants(ctx context.Context, id string, restaurantIDs []string) (*domain.MenuItem, error) {
	body := map[string][]string{"restaurantIds": restaurantIDs}
	var out domain.MenuItem
	if err := c.sendJSON(ctx, http.MethodPut, "/menu/"+id+"/assign-restaurants", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.getJSON(ctx, "/menu/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, cat *domain.Category) (*domain.Category, error) {
	var out domain.Category
	if err := c.sendJSON(ctx, http.MethodPost, "/menu/categories", cat, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, fields interface{}) (*domain.Category, error) {
	var out domain.Category
	if err := c.sendJSON(ctx, http.MethodPut, "/menu/categories/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory removes a category. Deleting a node that still has children
// is rejected server-side; the error message passes through untouched.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/menu/categories/"+id, nil, nil)
}
