package models

import "time"

type MenuCategory struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuItem is the read-only menu entry shown to customers.
// VatRate is a percentage (10 means 10%).
type MenuItem struct {
	ID          uint      `json:"id"`
	CategoryID  uint      `json:"category_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	VatRate     float64   `json:"vat_rate"`
	Stock       int       `json:"stock"`
	Description string    `json:"description"`
	ImageUrl    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
