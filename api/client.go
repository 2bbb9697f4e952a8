// Package api wraps the restaurant backend's REST surface behind two
// client profiles: an authenticated staff client and an anonymous
// customer client. The gateway never retries; callers translate
// errors into user-facing notifications.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// JSONResponse is the backend's response envelope.
type JSONResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Client is the shared HTTP plumbing beneath both profiles. It
// centralizes request building, the response envelope and the error
// taxonomy; the profiles only differ in token attachment and 401
// handling.
type Client struct {
	baseURL string
	http    *http.Client

	// attach decorates outgoing requests (bearer token for staff,
	// nothing for customers).
	attach func(*http.Request)

	// onUnauthorized runs on every 401 before the error is returned.
	onUnauthorized func()
}

func newClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// doJSON performs one request against the backend. A non-nil out is
// filled from the envelope's data field on success.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.attach != nil {
		c.attach(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope JSONResponse
	if len(raw) > 0 {
		// A broken envelope on an error status still has to surface
		// the status code, so decode failures are ignored here.
		_ = json.Unmarshal(raw, &envelope)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &Error{StatusCode: resp.StatusCode, Message: messageOr(envelope.Message, "unauthorized")}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode, Message: messageOr(envelope.Message, "request failed")}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
