package tracker

import (
	"sort"
	"time"

	"github.com/yeremiapane/restaurant-client/models"
)

// ActiveStatuses is what active dashboards (kitchen) request from the
// server to bound payload size.
var ActiveStatuses = []string{models.OrderPending, models.OrderInProgress}

// FilterByStatus returns only the orders in the given status.
func FilterByStatus(orders []models.OrderView, status string) []models.OrderView {
	var out []models.OrderView
	for _, order := range orders {
		if order.Status == status {
			out = append(out, order)
		}
	}
	return out
}

// PartitionByStatus splits orders across the five defined statuses.
// Orders with an unknown status are dropped.
func PartitionByStatus(orders []models.OrderView) map[string][]models.OrderView {
	out := make(map[string][]models.OrderView, len(models.OrderStatuses))
	known := make(map[string]bool, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		out[status] = nil
		known[status] = true
	}
	for _, order := range orders {
		if known[order.Status] {
			out[order.Status] = append(out[order.Status], order)
		}
	}
	return out
}

// TableGroup is one table's orders for display aggregation. The
// composite code+name key is display-only, never identity.
type TableGroup struct {
	Table  models.TableRef
	Orders []models.OrderView
}

// GroupByTable aggregates orders per table, groups sorted by table
// code then name for a stable render.
func GroupByTable(orders []models.OrderView) []TableGroup {
	byKey := make(map[models.TableRef][]models.OrderView)
	for _, order := range orders {
		byKey[order.Table] = append(byKey[order.Table], order)
	}

	out := make([]TableGroup, 0, len(byKey))
	for table, grouped := range byKey {
		out = append(out, TableGroup{Table: table, Orders: grouped})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Table.Code != out[j].Table.Code {
			return out[i].Table.Code < out[j].Table.Code
		}
		return out[i].Table.Name < out[j].Table.Name
	})
	return out
}

// Urgency levels derived from elapsed minutes.
const (
	UrgencyNormal  = "normal"
	UrgencyWarning = "warning"
	UrgencyUrgent  = "urgent"
)

// Urgency classifies an order's age against the surface's thresholds.
func Urgency(createdAt, now time.Time, warningAfterMin, urgentAfterMin int) string {
	minutes := models.ElapsedMinutes(createdAt, now)
	switch {
	case minutes >= urgentAfterMin:
		return UrgencyUrgent
	case minutes >= warningAfterMin:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}
