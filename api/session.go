package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Session is a customer's active association with one table, opened
// when the menu page loads.
type Session struct {
	ID        uint      `json:"id"`
	TableID   uint      `json:"table_id"`
	TableCode string    `json:"table_code"`
	DeviceID  string    `json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
}

type OpenSessionRequest struct {
	TenantID     uint   `json:"tenant_id"`
	RestaurantID uint   `json:"restaurant_id"`
	TableCode    string `json:"table_code"`
	DeviceID     string `json:"device_id"`
}

// QRPayload is the rendered QR content for one table. The client only
// fetches it; rendering and printing are up to the caller.
type QRPayload struct {
	TableID  uint   `json:"table_id"`
	URL      string `json:"url"`
	ImageB64 string `json:"image_b64"`
}

func (c *Client) OpenSession(ctx context.Context, req OpenSessionRequest) (Session, error) {
	if req.TableCode == "" {
		return Session{}, validationErr("table code is required")
	}
	var session Session
	err := c.doJSON(ctx, http.MethodPost, "/api/session/open", req, &session)
	return session, err
}

func (c *Client) CloseSession(ctx context.Context, sessionID uint) error {
	body := map[string]uint{"session_id": sessionID}
	return c.doJSON(ctx, http.MethodPost, "/api/session/close", body, nil)
}

func (c *Client) TableQR(ctx context.Context, tableID uint) (QRPayload, error) {
	var payload QRPayload
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/session/qr/%d", tableID), nil, &payload)
	return payload, err
}
