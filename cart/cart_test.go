package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-client/localstore"
	"github.com/yeremiapane/restaurant-client/models"
)

func pizza() models.MenuItem {
	return models.MenuItem{ID: 1, Name: "Pizza", Price: 100, VatRate: 10}
}

func soda() models.MenuItem {
	return models.MenuItem{ID: 2, Name: "Soda", Price: 25, VatRate: 5}
}

func TestAddItemMergesByItemAndNotes(t *testing.T) {
	s := NewStore(localstore.OpenMemory())

	s.AddItem(pizza(), 2, "")
	s.AddItem(pizza(), 1, "")
	s.AddItem(pizza(), 1, "extra cheese")

	lines := s.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, "", lines[0].Notes)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, "extra cheese", lines[1].Notes)
	assert.Equal(t, 4, s.ItemCount())
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	s := NewStore(localstore.OpenMemory())

	s.AddItem(pizza(), 1, "")

	// A later price change on the server must not touch the cart.
	changed := pizza()
	changed.Price = 999
	s.AddItem(changed, 1, "")

	lines := s.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 100.0, lines[0].UnitPrice)
}

func TestTotalsPerLineVat(t *testing.T) {
	// Worked example: two pizzas plain plus one with extra cheese,
	// all at 10% VAT.
	s := NewStore(localstore.OpenMemory())
	s.AddItem(pizza(), 2, "")
	s.AddItem(pizza(), 1, "extra cheese")

	assert.InDelta(t, 300.0, s.Subtotal(), 1e-9)
	assert.InDelta(t, 20.0, s.VatTotal(), 1e-9)
	assert.InDelta(t, 320.0, s.GrandTotal(), 1e-9)
}

func TestGrandTotalInvariantUnderReorder(t *testing.T) {
	a := NewStore(localstore.OpenMemory())
	a.AddItem(pizza(), 2, "")
	a.AddItem(soda(), 1, "no ice")
	a.AddItem(pizza(), 1, "extra cheese")

	b := NewStore(localstore.OpenMemory())
	b.AddItem(pizza(), 1, "extra cheese")
	b.AddItem(pizza(), 2, "")
	b.AddItem(soda(), 1, "no ice")

	assert.InDelta(t, a.GrandTotal(), b.GrandTotal(), 1e-9)
	assert.Equal(t, a.ItemCount(), b.ItemCount())
}

func TestUpdateItemQuantity(t *testing.T) {
	s := NewStore(localstore.OpenMemory())
	s.AddItem(pizza(), 2, "")

	s.UpdateItemQuantity(1, "", 5)
	assert.Equal(t, 5, s.Lines()[0].Quantity)

	// Not additive: set verbatim.
	s.UpdateItemQuantity(1, "", 3)
	assert.Equal(t, 3, s.Lines()[0].Quantity)

	// Unknown identity is a no-op.
	s.UpdateItemQuantity(1, "extra cheese", 9)
	assert.Len(t, s.Lines(), 1)
}

func TestNonPositiveQuantityRemovesLine(t *testing.T) {
	s := NewStore(localstore.OpenMemory())
	s.AddItem(pizza(), 2, "")
	s.AddItem(pizza(), 1, "extra cheese")

	s.UpdateItemQuantity(1, "", 0)
	assert.Len(t, s.Lines(), 1)

	s.UpdateItemQuantity(1, "extra cheese", -5)
	assert.Empty(t, s.Lines())
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	s := NewStore(localstore.OpenMemory())
	s.AddItem(pizza(), 1, "")

	s.RemoveItem(99, "")
	s.RemoveItem(1, "other notes")
	assert.Len(t, s.Lines(), 1)

	s.RemoveItem(1, "")
	assert.Empty(t, s.Lines())
}

func TestCartSurvivesReload(t *testing.T) {
	ls := localstore.OpenMemory()

	s := NewStore(ls)
	s.AddItem(pizza(), 2, "extra cheese")

	reloaded := NewStore(ls)
	lines := reloaded.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "extra cheese", lines[0].Notes)
	assert.InDelta(t, 220.0, reloaded.GrandTotal(), 1e-9)
}

func TestClearErasesPersistedRecord(t *testing.T) {
	ls := localstore.OpenMemory()

	s := NewStore(ls)
	s.AddItem(pizza(), 2, "")
	s.Clear()

	_, ok := ls.Get(localstore.KeyCart)
	assert.False(t, ok, "clear must erase the stored record, not just memory")

	reloaded := NewStore(ls)
	assert.Empty(t, reloaded.Lines())
}

func TestCorruptPersistedRecordLoadsEmpty(t *testing.T) {
	ls := localstore.OpenMemory()
	ls.Put(localstore.KeyCart, "{not json")

	s := NewStore(ls)
	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.ItemCount())
}

func TestUnknownVersionLoadsEmpty(t *testing.T) {
	ls := localstore.OpenMemory()
	ls.Put(localstore.KeyCart, `{"version":99,"lines":[{"menu_item_id":1,"quantity":2}]}`)

	s := NewStore(ls)
	assert.Empty(t, s.Lines())
}

func TestVisibilityFlag(t *testing.T) {
	s := NewStore(localstore.OpenMemory())
	assert.False(t, s.IsOpen())

	s.ToggleCart()
	assert.True(t, s.IsOpen())
	s.ToggleCart()
	assert.False(t, s.IsOpen())

	s.OpenCart()
	s.OpenCart()
	assert.True(t, s.IsOpen())
	s.CloseCart()
	assert.False(t, s.IsOpen())

	// Visibility has no business effect.
	assert.Empty(t, s.Lines())
}
