package models

import "time"

// Order statuses as the backend reports them. CANCELLED is terminal;
// the rest advance in the listed order.
const (
	OrderPending    = "PENDING"
	OrderInProgress = "IN_PROGRESS"
	OrderReady      = "READY"
	OrderServed     = "SERVED"
	OrderCancelled  = "CANCELLED"
)

// OrderStatuses lists every status a view may partition by.
var OrderStatuses = []string{
	OrderPending,
	OrderInProgress,
	OrderReady,
	OrderServed,
	OrderCancelled,
}

// TableRef identifies the table an order or call belongs to.
// Code is the stable identity; Name is only for display.
type TableRef struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type OrderItemView struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Notes     string  `json:"notes"`
	Status    string  `json:"status"`
}

// OrderView is the client-side projection of a server order.
type OrderView struct {
	ID         uint            `json:"id"`
	Status     string          `json:"status"`
	Table      TableRef        `json:"table"`
	Items      []OrderItemView `json:"items"`
	GrandTotal float64         `json:"grand_total"`
	CreatedAt  time.Time       `json:"created_at"`
}

// progressByStatus drives the progress bar on tracking views.
// Coarse on purpose; the server never computes this.
var progressByStatus = map[string]int{
	OrderPending:    10,
	OrderInProgress: 50,
	OrderReady:      85,
	OrderServed:     100,
	OrderCancelled:  0,
}

// ProgressPercent maps an order status to its progress-bar percentage.
// Unknown statuses map to 0.
func ProgressPercent(status string) int {
	return progressByStatus[status]
}

// ElapsedMinutes returns whole minutes between createdAt and now.
// Recomputed on every call, never cached.
func ElapsedMinutes(createdAt, now time.Time) int {
	if now.Before(createdAt) {
		return 0
	}
	return int(now.Sub(createdAt) / time.Minute)
}
