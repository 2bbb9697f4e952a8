package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-client/models"
)

func TestPartitionByStatus(t *testing.T) {
	orders := []models.OrderView{
		{ID: 1, Status: models.OrderPending},
		{ID: 2, Status: models.OrderPending},
		{ID: 3, Status: models.OrderReady},
		{ID: 4, Status: "SOMETHING_ELSE"},
	}

	parts := PartitionByStatus(orders)
	assert.Len(t, parts, 5)
	assert.Len(t, parts[models.OrderPending], 2)
	assert.Len(t, parts[models.OrderReady], 1)
	assert.Empty(t, parts[models.OrderInProgress])
	assert.Empty(t, parts[models.OrderServed])
	assert.Empty(t, parts[models.OrderCancelled])
}

func TestFilterByStatus(t *testing.T) {
	orders := []models.OrderView{
		{ID: 1, Status: models.OrderPending},
		{ID: 2, Status: models.OrderReady},
	}
	assert.Len(t, FilterByStatus(orders, models.OrderPending), 1)
	assert.Empty(t, FilterByStatus(orders, models.OrderServed))
}

func TestGroupByTable(t *testing.T) {
	t1 := models.TableRef{Name: "Window 1", Code: "T-01"}
	t2 := models.TableRef{Name: "Patio", Code: "T-02"}
	orders := []models.OrderView{
		{ID: 1, Table: t2},
		{ID: 2, Table: t1},
		{ID: 3, Table: t1},
	}

	groups := GroupByTable(orders)
	assert.Len(t, groups, 2)
	assert.Equal(t, t1, groups[0].Table)
	assert.Len(t, groups[0].Orders, 2)
	assert.Equal(t, t2, groups[1].Table)
	assert.Len(t, groups[1].Orders, 1)
}

func TestGroupByTableSameCodeDifferentName(t *testing.T) {
	// Code+name is a composite display key; a renamed table groups
	// separately from its old name.
	orders := []models.OrderView{
		{ID: 1, Table: models.TableRef{Name: "Old", Code: "T-01"}},
		{ID: 2, Table: models.TableRef{Name: "New", Code: "T-01"}},
	}
	assert.Len(t, GroupByTable(orders), 2)
}

func TestElapsedMinutes(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 30, 45, 0, time.UTC)

	assert.Equal(t, 30, models.ElapsedMinutes(now.Add(-30*time.Minute), now))
	// Whole minutes only.
	assert.Equal(t, 0, models.ElapsedMinutes(now.Add(-59*time.Second), now))
	assert.Equal(t, 1, models.ElapsedMinutes(now.Add(-90*time.Second), now))
	// Clock skew never yields negative ages.
	assert.Equal(t, 0, models.ElapsedMinutes(now.Add(time.Minute), now))
}

func TestUrgency(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, UrgencyNormal, Urgency(now.Add(-5*time.Minute), now, 10, 20))
	assert.Equal(t, UrgencyWarning, Urgency(now.Add(-10*time.Minute), now, 10, 20))
	assert.Equal(t, UrgencyWarning, Urgency(now.Add(-19*time.Minute), now, 10, 20))
	assert.Equal(t, UrgencyUrgent, Urgency(now.Add(-20*time.Minute), now, 10, 20))
	assert.Equal(t, UrgencyUrgent, Urgency(now.Add(-2*time.Hour), now, 10, 20))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 10, models.ProgressPercent(models.OrderPending))
	assert.Equal(t, 50, models.ProgressPercent(models.OrderInProgress))
	assert.Equal(t, 85, models.ProgressPercent(models.OrderReady))
	assert.Equal(t, 100, models.ProgressPercent(models.OrderServed))
	assert.Equal(t, 0, models.ProgressPercent(models.OrderCancelled))
	assert.Equal(t, 0, models.ProgressPercent("UNKNOWN"))
}
