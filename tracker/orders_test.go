package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-client/models"
)

func sampleOrder(id uint, status string) models.OrderView {
	return models.OrderView{
		ID:     id,
		Status: status,
		Table:  models.TableRef{Name: "Window 1", Code: "T-01"},
		Items: []models.OrderItemView{
			{ID: 10, Name: "Pizza", Quantity: 2, UnitPrice: 100, Status: "pending"},
		},
		GrandTotal: 220,
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestApplyStatusMergesOnlyStatus(t *testing.T) {
	tr := NewOrderTracker()
	tr.Replace([]models.OrderView{sampleOrder(1, models.OrderPending)})

	ok := tr.ApplyStatus(1, models.OrderInProgress)
	assert.True(t, ok)

	order, found := tr.Get(1)
	assert.True(t, found)
	assert.Equal(t, models.OrderInProgress, order.Status)
	// Everything besides status is untouched by the merge.
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "Pizza", order.Items[0].Name)
	assert.Equal(t, models.TableRef{Name: "Window 1", Code: "T-01"}, order.Table)
	assert.Equal(t, 220.0, order.GrandTotal)
	assert.Equal(t, sampleOrder(1, "").CreatedAt, order.CreatedAt)
}

func TestApplyStatusIsIdempotent(t *testing.T) {
	tr := NewOrderTracker()
	tr.Replace([]models.OrderView{sampleOrder(1, models.OrderPending)})

	tr.ApplyStatus(1, models.OrderInProgress)
	tr.ApplyStatus(1, models.OrderInProgress)

	order, _ := tr.Get(1)
	assert.Equal(t, models.OrderInProgress, order.Status)
	assert.Equal(t, 1, tr.Len())
}

func TestApplyStatusUnknownIDIsNoop(t *testing.T) {
	tr := NewOrderTracker()
	assert.False(t, tr.ApplyStatus(42, models.OrderReady))
	assert.Equal(t, 0, tr.Len())
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	tr := NewOrderTracker()
	tr.Replace([]models.OrderView{sampleOrder(1, models.OrderPending)})

	assert.False(t, tr.Remove(42))
	assert.Equal(t, 1, tr.Len())

	assert.True(t, tr.Remove(1))
	assert.Equal(t, 0, tr.Len())
}

func TestCancelledStatusRemoves(t *testing.T) {
	tr := NewOrderTracker()
	tr.Replace([]models.OrderView{sampleOrder(1, models.OrderPending)})

	tr.ApplyStatus(1, models.OrderCancelled)
	_, found := tr.Get(1)
	assert.False(t, found)
}

func TestReplaceIsAuthoritative(t *testing.T) {
	tr := NewOrderTracker()
	tr.Replace([]models.OrderView{
		sampleOrder(1, models.OrderPending),
		sampleOrder(2, models.OrderPending),
	})
	tr.ApplyStatus(2, models.OrderInProgress)

	// The next poll omits order 1 (served) and confirms order 2.
	tr.Replace([]models.OrderView{sampleOrder(2, models.OrderInProgress)})

	assert.Equal(t, 1, tr.Len())
	order, found := tr.Get(2)
	assert.True(t, found)
	assert.Equal(t, models.OrderInProgress, order.Status)
}

func TestOrdersSortedOldestFirst(t *testing.T) {
	tr := NewOrderTracker()
	older := sampleOrder(5, models.OrderPending)
	older.CreatedAt = older.CreatedAt.Add(-30 * time.Minute)
	tr.Replace([]models.OrderView{sampleOrder(1, models.OrderPending), older})

	orders := tr.Orders()
	assert.Equal(t, uint(5), orders[0].ID)
	assert.Equal(t, uint(1), orders[1].ID)
}

func TestCallTrackerLifecycle(t *testing.T) {
	tr := NewCallTracker()
	tr.Replace([]models.WaiterCallView{
		{ID: 1, Type: models.CallWaiter, Status: models.CallPending, Table: models.TableRef{Code: "T-01"}},
		{ID: 2, Type: models.RequestBill, Status: models.CallPending, Table: models.TableRef{Code: "T-02"}},
	})

	assert.True(t, tr.ApplyStatus(1, models.CallAcknowledged))
	call, _ := tr.Get(1)
	assert.Equal(t, models.CallAcknowledged, call.Status)

	// COMPLETED is terminal: drops from the active list.
	tr.ApplyStatus(1, models.CallCompleted)
	_, found := tr.Get(1)
	assert.False(t, found)

	// Explicit delete removes as well; unknown ids are safe.
	assert.True(t, tr.Remove(2))
	assert.False(t, tr.Remove(2))
	assert.Equal(t, 0, tr.Len())
}
