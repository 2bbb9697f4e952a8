package realtime

import "encoding/json"

// Event names pushed by the backend. Push events are low-latency
// hints; the poll timer remains the authoritative resync path.
const (
	EventOrderCreated   = "order_created"
	EventOrderUpdated   = "order_updated"
	EventOrderCancelled = "order_cancelled"
	EventCallCreated    = "call_created"
	EventCallUpdated    = "call_updated"
	EventCallDeleted    = "call_deleted"
)

const eventJoinRoom = "join_room"

// Message is the wire envelope for every websocket frame.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Room is the logical broadcast scope the connection joins: a table
// for customers, a kitchen station for chefs, or the whole restaurant
// for waiters and admins. Zero-valued fields are omitted on the wire.
type Room struct {
	TenantID     uint   `json:"tenant_id,omitempty"`
	RestaurantID uint   `json:"restaurant_id"`
	TableCode    string `json:"table_code,omitempty"`
	Station      string `json:"station,omitempty"`
}

// CustomerRoom scopes pushes to one table.
func CustomerRoom(tenantID, restaurantID uint, tableCode string) Room {
	return Room{TenantID: tenantID, RestaurantID: restaurantID, TableCode: tableCode}
}

// KitchenRoom scopes pushes to one kitchen station.
func KitchenRoom(restaurantID uint, station string) Room {
	return Room{RestaurantID: restaurantID, Station: station}
}

// RestaurantRoom scopes pushes to the whole restaurant.
func RestaurantRoom(restaurantID uint) Room {
	return Room{RestaurantID: restaurantID}
}
