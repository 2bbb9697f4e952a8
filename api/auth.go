package api

import (
	"context"
	"net/http"

	"github.com/yeremiapane/restaurant-client/models"
)

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login exchanges credentials for a bearer token. Required fields are
// checked before any request goes out.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, validationErr("email and password are required")
	}
	var result LoginResult
	body := map[string]string{"email": email, "password": password}
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &result)
	return result, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return models.User{}, validationErr("name, email and password are required")
	}
	var user models.User
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req, &user)
	return user, err
}

// Me fetches the authenticated profile.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &user)
	return user, err
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return validationErr("old and new password are required")
	}
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/change-password", body, nil)
}
