package models

import "time"

// Waiter call types.
const (
	CallWaiter  = "CALL_WAITER"
	RequestBill = "REQUEST_BILL"
)

// Waiter call statuses. COMPLETED is terminal and drops the call
// from active lists, same as an explicit delete.
const (
	CallPending      = "PENDING"
	CallAcknowledged = "ACKNOWLEDGED"
	CallCompleted    = "COMPLETED"
)

// WaiterCallView is the client-side projection of a waiter call.
type WaiterCallView struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Table     TableRef  `json:"table"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
