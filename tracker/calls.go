package tracker

import (
	"sort"
	"sync"

	"github.com/yeremiapane/restaurant-client/models"
)

// CallTracker mirrors OrderTracker for waiter calls.
type CallTracker struct {
	mu    sync.Mutex
	calls map[uint]models.WaiterCallView
}

func NewCallTracker() *CallTracker {
	return &CallTracker{calls: make(map[uint]models.WaiterCallView)}
}

func (t *CallTracker) Replace(snapshot []models.WaiterCallView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = make(map[uint]models.WaiterCallView, len(snapshot))
	for _, call := range snapshot {
		t.calls[call.ID] = call
	}
}

// ApplyStatus merges only the status. COMPLETED is terminal and
// removes the call from the active list, same as an explicit delete.
func (t *CallTracker) ApplyStatus(id uint, status string) bool {
	if status == models.CallCompleted {
		return t.Remove(id)
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	call, ok := t.calls[id]
	if !ok {
		return false
	}
	call.Status = status
	t.calls[id] = call
	return true
}

func (t *CallTracker) Remove(id uint) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.calls[id]; !ok {
		return false
	}
	delete(t.calls, id)
	return true
}

func (t *CallTracker) Get(id uint) (models.WaiterCallView, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	call, ok := t.calls[id]
	return call, ok
}

func (t *CallTracker) Calls() []models.WaiterCallView {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.WaiterCallView, 0, len(t.calls))
	for _, call := range t.calls {
		out = append(out, call)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (t *CallTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.calls)
}
