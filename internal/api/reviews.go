package api

import (
	"context"

	"pickfoo-owner/internal/domain"
)

func (c *Client) MyReviews(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.getJSON(ctx, "/reviews/my-reviews", &out); err != nil {
		return nil, err
	}
	return out, nil
}
