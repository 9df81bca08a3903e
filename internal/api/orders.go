package api

import (
	"context"
	"net/http"

	"pickfoo-owner/internal/domain"
)

func (c *Client) MyOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.getJSON(ctx, "/orders/my-orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	body := map[string]domain.OrderStatus{"status": status}
	var out domain.Order
	if err := c.sendJSON(ctx, http.MethodPut, "/orders/"+id+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
