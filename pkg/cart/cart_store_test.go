package cart

import (
	"testing"

	"rumbles-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addRequest(menuItemID string, price float64, quantity int) domain.AddCartItemRequest {
	return domain.AddCartItemRequest{
		MenuItemID: menuItemID,
		Name:       menuItemID,
		Price:      price,
		Quantity:   quantity,
	}
}

func TestAddItemMergesSameItemAndVariant(t *testing.T) {
	store := NewStore()

	store.AddItem(addRequest("fish-cod", 6.50, 1))
	store.AddItem(addRequest("fish-cod", 6.50, 2))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.InDelta(t, 19.50, store.Total(), 1e-9)
	assert.Equal(t, 3, store.ItemCount())
}

func TestAddItemKeepsFirstAddedPriceOnMerge(t *testing.T) {
	store := NewStore()

	store.AddItem(addRequest("fish-cod", 6.50, 1))

	// Price change between adds must not retroactively affect the line.
	store.AddItem(addRequest("fish-cod", 7.95, 1))

	items := store.Items()
	require.Len(t, items, 1)
	assert.InDelta(t, 6.50, items[0].Price, 1e-9)
	assert.InDelta(t, 13.00, store.Total(), 1e-9)
}

func TestAddItemDistinctVariantsStaySeparate(t *testing.T) {
	store := NewStore()

	store.AddItem(domain.AddCartItemRequest{
		MenuItemID: "fish-cod", Name: "Cod", VariantID: "small", VariantName: "Small",
		Price: 5.50, Quantity: 1,
	})
	store.AddItem(domain.AddCartItemRequest{
		MenuItemID: "fish-cod", Name: "Cod", VariantID: "large", VariantName: "Large",
		Price: 7.50, Quantity: 1,
	})
	store.AddItem(domain.AddCartItemRequest{
		MenuItemID: "fish-cod", Name: "Cod", VariantID: "small", VariantName: "Small",
		Price: 5.50, Quantity: 2,
	})

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "small", items[0].VariantID)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, "large", items[1].VariantID)
	assert.Equal(t, 1, items[1].Quantity)
	assert.InDelta(t, 3*5.50+7.50, store.Total(), 1e-9)
	assert.Equal(t, 4, store.ItemCount())
}

func TestAddItemWithoutVariantDoesNotMergeWithVariant(t *testing.T) {
	store := NewStore()

	store.AddItem(addRequest("veggie-falafel-wrap", 6.50, 1))
	store.AddItem(domain.AddCartItemRequest{
		MenuItemID: "veggie-falafel-wrap", Name: "Falafel Wrap",
		VariantID: "meal", VariantName: "Meal Deal", Price: 8.50, Quantity: 1,
	})

	assert.Len(t, store.Items(), 2)
}

func TestRemoveItem(t *testing.T) {
	store := NewStore()

	store.AddItem(addRequest("fish-cod", 6.50, 1))
	store.AddItem(addRequest("fish-haddock", 7.00, 2))

	items := store.Items()
	require.Len(t, items, 2)

	store.RemoveItem(items[0].ID)

	items = store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fish-haddock", items[0].MenuItemID)
	assert.InDelta(t, 14.00, store.Total(), 1e-9)
	assert.Equal(t, 2, store.ItemCount())
}

func TestRemoveItemUnknownIDIsNoop(t *testing.T) {
	store := NewStore()

	store.AddItem(addRequest("fish-cod", 6.50, 1))
	before := store.State()

	store.RemoveItem("no-such-id")

	assert.Equal(t, before, store.State())
}

func TestUpdateQuantity(t *testing.T) {
	store := NewStore()

	store.AddItem(addRequest("fish-cod", 6.50, 1))
	id := store.Items()[0].ID

	store.UpdateQuantity(id, 4)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	assert.InDelta(t, 26.00, store.Total(), 1e-9)
	assert.Equal(t, 4, store.ItemCount())
}

func TestUpdateQuantityToZeroEqualsRemove(t *testing.T) {
	removed := NewStore()
	removed.AddItem(addRequest("fish-cod", 6.50, 3))
	removed.RemoveItem(removed.Items()[0].ID)

	updated := NewStore()
	updated.AddItem(addRequest("fish-cod", 6.50, 3))
	updated.UpdateQuantity(updated.Items()[0].ID, 0)

	assert.Equal(t, removed.State(), updated.State())

	negative := NewStore()
	negative.AddItem(addRequest("fish-cod", 6.50, 3))
	negative.UpdateQuantity(negative.Items()[0].ID, -2)

	assert.Equal(t, removed.State(), negative.State())
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	store := NewStore()

	store.AddItem(addRequest("fish-cod", 6.50, 1))
	before := store.State()

	store.UpdateQuantity("no-such-id", 5)

	assert.Equal(t, before, store.State())
}

func TestClear(t *testing.T) {
	store := NewStore()

	store.AddItem(addRequest("fish-cod", 6.50, 1))
	store.AddItem(addRequest("fish-haddock", 7.00, 2))

	store.Clear()

	assert.Empty(t, store.Items())
	assert.Zero(t, store.Total())
	assert.Zero(t, store.ItemCount())
}

func TestAggregatesConsistentAfterEveryMutation(t *testing.T) {
	store := NewStore()

	check := func() {
		total := 0.0
		count := 0
		for _, item := range store.Items() {
			total += item.Price * float64(item.Quantity)
			count += item.Quantity
		}
		assert.InDelta(t, total, store.Total(), 1e-9)
		assert.Equal(t, count, store.ItemCount())
	}

	store.AddItem(addRequest("fish-cod", 6.50, 1))
	check()
	store.AddItem(addRequest("seafood-platter-1", 12.95, 2))
	check()
	store.UpdateQuantity(store.Items()[1].ID, 1)
	check()
	store.RemoveItem(store.Items()[0].ID)
	check()
	store.Clear()
	check()
}

func TestExampleScenario(t *testing.T) {
	store := NewStore()

	store.AddItem(addRequest("fish-cod", 6.50, 1))
	require.Len(t, store.Items(), 1)
	assert.InDelta(t, 6.50, store.Total(), 1e-9)

	store.AddItem(addRequest("fish-cod", 6.50, 2))
	require.Len(t, store.Items(), 1)
	assert.Equal(t, 3, store.Items()[0].Quantity)
	assert.InDelta(t, 19.50, store.Total(), 1e-9)

	store.UpdateQuantity(store.Items()[0].ID, 0)
	assert.Empty(t, store.Items())
	assert.Zero(t, store.Total())
	assert.Zero(t, store.ItemCount())
}
