// Package tracker keeps a surface's order and call lists consistent
// with server state. The poll snapshot is authoritative; pushed
// events only merge by id, so push/poll arrival order cannot corrupt
// the final list.
package tracker

import (
	"sort"
	"sync"

	"github.com/yeremiapane/restaurant-client/models"
)

// OrderTracker is the id-keyed order list behind kitchen, waiter and
// customer tracking views.
type OrderTracker struct {
	mu     sync.Mutex
	orders map[uint]models.OrderView
}

func NewOrderTracker() *OrderTracker {
	return &OrderTracker{orders: make(map[uint]models.OrderView)}
}

// Replace installs a poll snapshot wholesale. Entries absent from the
// snapshot are dropped; the poll is the source of truth.
func (t *OrderTracker) Replace(snapshot []models.OrderView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.orders = make(map[uint]models.OrderView, len(snapshot))
	for _, order := range snapshot {
		t.orders[order.ID] = order
	}
}

// ApplyStatus merges only the status into the matching entry, leaving
// items, table and timestamps untouched. Unknown ids are a no-op and
// reapplying the same status changes nothing. A CANCELLED status
// removes the order, same as a cancel push.
func (t *OrderTracker) ApplyStatus(id uint, status string) bool {
	if status == models.OrderCancelled {
		return t.Remove(id)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	order, ok := t.orders[id]
	if !ok {
		return false
	}
	order.Status = status
	t.orders[id] = order
	return true
}

// Remove drops the order immediately, without waiting for the next
// poll. Removing an unknown id is a safe no-op.
func (t *OrderTracker) Remove(id uint) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.orders[id]; !ok {
		return false
	}
	delete(t.orders, id)
	return true
}

// Get returns one tracked order by id.
func (t *OrderTracker) Get(id uint) (models.OrderView, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	order, ok := t.orders[id]
	return order, ok
}

// Orders returns the tracked orders oldest first for rendering.
func (t *OrderTracker) Orders() []models.OrderView {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.OrderView, 0, len(t.orders))
	for _, order := range t.orders {
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Len reports how many orders are tracked.
func (t *OrderTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.orders)
}
