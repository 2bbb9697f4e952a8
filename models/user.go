package models

import "time"

// User is the staff profile cached locally after login.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Restaurant struct {
	ID        uint      `json:"id"`
	TenantID  uint      `json:"tenant_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Table struct {
	ID           uint      `json:"id"`
	RestaurantID uint      `json:"restaurant_id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Ref returns the display reference used by order and call views.
func (t Table) Ref() TableRef {
	return TableRef{Name: t.Name, Code: t.Code}
}
