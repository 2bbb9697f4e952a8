package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yeremiapane/restaurant-client/models"
)

type CreateCallRequest struct {
	SessionID uint   `json:"session_id"`
	TableCode string `json:"table_code"`
	Type      string `json:"type"`
	Note      string `json:"note"`
}

// CreateCall raises a waiter call or bill request from a table.
func (c *Client) CreateCall(ctx context.Context, req CreateCallRequest) (models.WaiterCallView, error) {
	if req.Type != models.CallWaiter && req.Type != models.RequestBill {
		return models.WaiterCallView{}, validationErr("unknown call type")
	}
	var call models.WaiterCallView
	err := c.doJSON(ctx, http.MethodPost, "/api/calls/create", req, &call)
	return call, err
}

func (c *Client) CallsByRestaurant(ctx context.Context, restaurantID uint) ([]models.WaiterCallView, error) {
	var calls []models.WaiterCallView
	path := fmt.Sprintf("/api/calls/restaurant/%d", restaurantID)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &calls)
	return calls, err
}

func (c *Client) AcknowledgeCall(ctx context.Context, callID uint) error {
	path := fmt.Sprintf("/api/calls/%d/acknowledge", callID)
	return c.doJSON(ctx, http.MethodPatch, path, nil, nil)
}

func (c *Client) CompleteCall(ctx context.Context, callID uint) error {
	path := fmt.Sprintf("/api/calls/%d/complete", callID)
	return c.doJSON(ctx, http.MethodPatch, path, nil, nil)
}

func (c *Client) DeleteCall(ctx context.Context, callID uint) error {
	path := fmt.Sprintf("/api/calls/%d", callID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}
