// Package cart holds the customer's in-progress order. One line per
// (menu item, notes) pair; the whole line set survives restarts via
// the local store and is erased on clear or successful submission.
package cart

import (
	"encoding/json"
	"sync"

	"github.com/yeremiapane/restaurant-client/localstore"
	"github.com/yeremiapane/restaurant-client/models"
	"github.com/yeremiapane/restaurant-client/utils"
)

// recordVersion tags the persisted snapshot so future field additions
// can migrate old records instead of silently dropping them.
const recordVersion = 1

type persistedCart struct {
	Version int               `json:"version"`
	Lines   []models.CartLine `json:"lines"`
}

type Store struct {
	mu    sync.Mutex
	lines []models.CartLine
	open  bool
	store *localstore.Store
}

// NewStore loads any previously persisted cart from the local store.
// A corrupt or unknown-version record loads as an empty cart; it is
// logged and never surfaces to the caller.
func NewStore(ls *localstore.Store) *Store {
	s := &Store{store: ls}
	raw, ok := ls.Get(localstore.KeyCart)
	if !ok {
		return s
	}
	var rec persistedCart
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		utils.ErrorLogger.Printf("cart: discarding corrupt persisted cart: %v", err)
		return s
	}
	if rec.Version != recordVersion {
		utils.ErrorLogger.Printf("cart: discarding persisted cart with unknown version %d", rec.Version)
		return s
	}
	s.lines = rec.Lines
	return s
}

// persist must be called with the mutex held.
func (s *Store) persist() {
	rec := persistedCart{Version: recordVersion, Lines: s.lines}
	raw, err := json.Marshal(rec)
	if err != nil {
		utils.ErrorLogger.Printf("cart: marshal persisted cart: %v", err)
		return
	}
	s.store.Put(localstore.KeyCart, string(raw))
}

// findLine must be called with the mutex held.
func (s *Store) findLine(menuItemID uint, notes string) int {
	for i, l := range s.lines {
		if l.MenuItemID == menuItemID && l.Notes == notes {
			return i
		}
	}
	return -1
}

// AddItem adds quantity of the item to the cart. If a line with the
// same (item, notes) identity exists its quantity is incremented;
// otherwise a new line snapshots the item's current name, price and
// VAT rate, so later server-side price changes do not touch the cart.
func (s *Store) AddItem(item models.MenuItem, quantity int, notes string) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.findLine(item.ID, notes); i >= 0 {
		s.lines[i].Quantity += quantity
	} else {
		s.lines = append(s.lines, models.CartLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.Price,
			VatRate:    item.VatRate,
			Quantity:   quantity,
			Notes:      notes,
		})
	}
	s.persist()
}

// RemoveItem deletes the matching line. Removing an absent line is a
// no-op, not an error.
func (s *Store) RemoveItem(menuItemID uint, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLine(menuItemID, notes)
	if i < 0 {
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persist()
}

// UpdateItemQuantity sets the line quantity verbatim. A quantity of
// zero or less removes the line.
func (s *Store) UpdateItemQuantity(menuItemID uint, notes string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(menuItemID, notes)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLine(menuItemID, notes)
	if i < 0 {
		return
	}
	s.lines[i].Quantity = quantity
	s.persist()
}

// Clear empties the cart and erases the persisted record.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.store.Delete(localstore.KeyCart)
}

// Lines returns a copy of the current lines for rendering.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// ItemCount is the sum of quantities across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal is the sum of line subtotals, not rounded.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// VatTotal sums each line's VAT computed on that line's own subtotal.
// Lines may carry different rates, so VAT is never applied to the
// aggregate subtotal.
func (s *Store) VatTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.VatAmount()
	}
	return total
}

// GrandTotal is subtotal plus VAT.
func (s *Store) GrandTotal() float64 {
	return s.Subtotal() + s.VatTotal()
}

// ToggleCart flips the cart panel's visibility flag. Pure UI state.
func (s *Store) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
}

func (s *Store) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

func (s *Store) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// IsOpen reports the visibility flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}
