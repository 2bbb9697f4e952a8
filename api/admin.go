package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yeremiapane/restaurant-client/models"
)

// Admin CRUD. All of these require the staff profile; the backend
// enforces the admin role.

type CreateRestaurantRequest struct {
	Name string `json:"name"`
}

type CreateTableRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type SaveMenuItemRequest struct {
	CategoryID  uint    `json:"category_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	VatRate     float64 `json:"vat_rate"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
}

func (c *Client) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := c.doJSON(ctx, http.MethodGet, "/api/admin/restaurants", nil, &restaurants)
	return restaurants, err
}

func (c *Client) CreateRestaurant(ctx context.Context, req CreateRestaurantRequest) (models.Restaurant, error) {
	if req.Name == "" {
		return models.Restaurant{}, validationErr("restaurant name is required")
	}
	var restaurant models.Restaurant
	err := c.doJSON(ctx, http.MethodPost, "/api/admin/restaurants", req, &restaurant)
	return restaurant, err
}

func (c *Client) Tables(ctx context.Context, restaurantID uint) ([]models.Table, error) {
	var tables []models.Table
	path := fmt.Sprintf("/api/admin/restaurants/%d/tables", restaurantID)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &tables)
	return tables, err
}

func (c *Client) CreateTable(ctx context.Context, restaurantID uint, req CreateTableRequest) (models.Table, error) {
	if req.Name == "" || req.Code == "" {
		return models.Table{}, validationErr("table name and code are required")
	}
	var table models.Table
	path := fmt.Sprintf("/api/admin/restaurants/%d/tables", restaurantID)
	err := c.doJSON(ctx, http.MethodPost, path, req, &table)
	return table, err
}

func (c *Client) AdminMenu(ctx context.Context, restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	path := fmt.Sprintf("/api/admin/restaurants/%d/menu", restaurantID)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &items)
	return items, err
}

func (c *Client) CreateCategory(ctx context.Context, restaurantID uint, req CreateCategoryRequest) (models.MenuCategory, error) {
	if req.Name == "" {
		return models.MenuCategory{}, validationErr("category name is required")
	}
	var category models.MenuCategory
	path := fmt.Sprintf("/api/admin/restaurants/%d/categories", restaurantID)
	err := c.doJSON(ctx, http.MethodPost, path, req, &category)
	return category, err
}

func (c *Client) CreateMenuItem(ctx context.Context, restaurantID uint, req SaveMenuItemRequest) (models.MenuItem, error) {
	if req.Name == "" || req.CategoryID == 0 {
		return models.MenuItem{}, validationErr("item name and category are required")
	}
	var item models.MenuItem
	path := fmt.Sprintf("/api/admin/restaurants/%d/items", restaurantID)
	err := c.doJSON(ctx, http.MethodPost, path, req, &item)
	return item, err
}

func (c *Client) UpdateMenuItem(ctx context.Context, restaurantID, itemID uint, req SaveMenuItemRequest) (models.MenuItem, error) {
	if req.Name == "" || req.CategoryID == 0 {
		return models.MenuItem{}, validationErr("item name and category are required")
	}
	var item models.MenuItem
	path := fmt.Sprintf("/api/admin/restaurants/%d/items/%d", restaurantID, itemID)
	err := c.doJSON(ctx, http.MethodPut, path, req, &item)
	return item, err
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.doJSON(ctx, http.MethodGet, "/api/admin/users", nil, &users)
	return users, err
}

func (c *Client) UpdateUserStatus(ctx context.Context, userID uint, status string) error {
	if status == "" {
		return validationErr("status is required")
	}
	body := map[string]string{"status": status}
	path := fmt.Sprintf("/api/admin/users/%d/status", userID)
	return c.doJSON(ctx, http.MethodPatch, path, body, nil)
}
