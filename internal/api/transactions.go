package api

import (
	"context"

	"pickfoo-owner/internal/domain"
)

func (c *Client) MyTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var out []domain.Transaction
	if err := c.getJSON(ctx, "/transactions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TransactionStats(ctx context.Context) (*domain.TransactionStats, error) {
	var out domain.TransactionStats
	if err := c.getJSON(ctx, "/transactions/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
