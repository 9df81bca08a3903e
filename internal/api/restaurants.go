package api

import (
	"context"
	"net/http"

	"pickfoo-owner/internal/domain"
)

func (c *Client) MyRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	if err := c.getJSON(ctx, "/restaurants/my-restaurants", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRestaurant(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error) {
	var out domain.Restaurant
	if err := c.sendJSON(ctx, http.MethodPost, "/restaurants", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRestaurant sends a partial update. Fields is the subset of the
// restaurant document to change.
func (c *Client) UpdateRestaurant(ctx context.Context, id string, fields interface{}) (*domain.Restaurant, error) {
	var out domain.Restaurant
	if err := c.sendJSON(ctx, http.MethodPut, "/restaurants/"+id, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRestaurant(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/restaurants/"+id, nil, nil)
}

func (c *Client) SubmitForVerification(ctx context.Context, id string) (*domain.Restaurant, error) {
	var out domain.Restaurant
	if err := c.sendJSON(ctx, http.MethodPut, "/restaurants/"+id+"/submit-verification", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
