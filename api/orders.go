package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yeremiapane/restaurant-client/models"
)

type OrderItemRequest struct {
	MenuItemID uint   `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
}

type CreateOrderRequest struct {
	SessionID uint               `json:"session_id"`
	TableCode string             `json:"table_code"`
	Items     []OrderItemRequest `json:"items"`
	// ClientKey lets the backend drop accidental double submissions.
	ClientKey string `json:"client_key,omitempty"`
}

// OrderFilter narrows restaurant-wide order queries. Active
// dashboards request only the statuses they show to bound payload
// size.
type OrderFilter struct {
	Statuses []string
	Limit    int
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (models.OrderView, error) {
	if len(req.Items) == 0 {
		return models.OrderView{}, validationErr("order needs at least one item")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return models.OrderView{}, validationErr("item quantity must be at least 1")
		}
	}
	var order models.OrderView
	err := c.doJSON(ctx, http.MethodPost, "/api/orders/create", req, &order)
	return order, err
}

func (c *Client) OrdersByTable(ctx context.Context, tableID uint) ([]models.OrderView, error) {
	var orders []models.OrderView
	path := fmt.Sprintf("/api/orders/table/%d", tableID)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &orders)
	return orders, err
}

func (c *Client) OrdersByRestaurant(ctx context.Context, restaurantID uint, filter OrderFilter) ([]models.OrderView, error) {
	query := url.Values{}
	for _, status := range filter.Statuses {
		query.Add("status", status)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	path := fmt.Sprintf("/api/orders/restaurant/%d", restaurantID)
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var orders []models.OrderView
	err := c.doJSON(ctx, http.MethodGet, path, nil, &orders)
	return orders, err
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID uint, status string) error {
	if status == "" {
		return validationErr("status is required")
	}
	body := map[string]string{"status": status}
	path := fmt.Sprintf("/api/orders/%d/status", orderID)
	return c.doJSON(ctx, http.MethodPatch, path, body, nil)
}

func (c *Client) UpdateOrderItemStatus(ctx context.Context, itemID uint, status string) error {
	if status == "" {
		return validationErr("status is required")
	}
	body := map[string]string{"status": status}
	path := fmt.Sprintf("/api/orders/items/%d/status", itemID)
	return c.doJSON(ctx, http.MethodPatch, path, body, nil)
}
