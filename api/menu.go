package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yeremiapane/restaurant-client/models"
)

// Menu is read-only for both profiles.

func (c *Client) MenuCategories(ctx context.Context, restaurantID uint) ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	path := fmt.Sprintf("/api/menu/%d/categories", restaurantID)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &categories)
	return categories, err
}

func (c *Client) MenuItems(ctx context.Context, restaurantID, categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	path := fmt.Sprintf("/api/menu/%d/items/%d", restaurantID, categoryID)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &items)
	return items, err
}

// FullMenu fetches every category with its items in one call.
func (c *Client) FullMenu(ctx context.Context, restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	path := fmt.Sprintf("/api/menu/%d", restaurantID)
	err := c.doJSON(ctx, http.MethodGet, path, nil, &items)
	return items, err
}
