package cart

import (
	"context"
	"encoding/json"
	"testing"

	"rumbles-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()
	service := NewCartService(repo)

	_, err := service.AddItem(ctx, "cart-1", addRequest("fish-cod", 6.50, 2))
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "cart-1", domain.AddCartItemRequest{
		MenuItemID: "fish-cod", Name: "Cod", VariantID: "large", VariantName: "Large",
		Price: 7.95, Quantity: 1,
	})
	require.NoError(t, err)

	// A fresh service over the same repository must rebuild an equivalent
	// cart from the snapshot alone.
	reloaded, err := NewCartService(repo).GetCart(ctx, "cart-1")
	require.NoError(t, err)

	require.Len(t, reloaded.Items, 2)
	assert.Equal(t, "fish-cod", reloaded.Items[0].MenuItemID)
	assert.Equal(t, "", reloaded.Items[0].VariantID)
	assert.Equal(t, 2, reloaded.Items[0].Quantity)
	assert.Equal(t, "large", reloaded.Items[1].VariantID)
	assert.Equal(t, 1, reloaded.Items[1].Quantity)
	assert.InDelta(t, 2*6.50+7.95, reloaded.Total, 1e-9)
	assert.Equal(t, 3, reloaded.ItemCount)
}

func TestCartServiceReplayMergesDuplicateSnapshotLines(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()

	// A snapshot that somehow holds two lines for the same pair collapses
	// back into one on replay.
	state := domain.CartState{
		Items: []domain.CartItem{
			{ID: "a", MenuItemID: "fish-cod", Name: "Cod", Price: 6.50, Quantity: 1},
			{ID: "b", MenuItemID: "fish-cod", Name: "Cod", Price: 6.50, Quantity: 2},
		},
	}
	data, err := json.Marshal(state)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, cartKey("cart-1"), data))

	cart, err := NewCartService(repo).GetCart(ctx, "cart-1")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartServiceIgnoresPersistedAggregates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()

	state := domain.CartState{
		Items: []domain.CartItem{
			{ID: "a", MenuItemID: "fish-cod", Name: "Cod", Price: 6.50, Quantity: 2},
		},
		Total:     999.99,
		ItemCount: 42,
	}
	data, err := json.Marshal(state)
	require.NoError(t, err)
	require.NoError(t, repo.Set(ctx, cartKey("cart-1"), data))

	cart, err := NewCartService(repo).GetCart(ctx, "cart-1")
	require.NoError(t, err)

	assert.InDelta(t, 13.00, cart.Total, 1e-9)
	assert.Equal(t, 2, cart.ItemCount)
}

func TestCartServiceCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()
	require.NoError(t, repo.Set(ctx, cartKey("cart-1"), []byte("{not json")))

	cart, err := NewCartService(repo).GetCart(ctx, "cart-1")
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemCount)
}

func TestCartServiceMissingSnapshotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	service := NewCartService(NewMemoryCartRepository())

	cart, err := service.GetCart(ctx, "never-seen")
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.ItemCount)
}

func TestCartServicePersistsAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()
	service := NewCartService(repo)

	res, err := service.AddItem(ctx, "cart-1", addRequest("fish-cod", 6.50, 1))
	require.NoError(t, err)

	data, err := repo.Get(ctx, cartKey("cart-1"))
	require.NoError(t, err)
	var state domain.CartState
	require.NoError(t, json.Unmarshal(data, &state))
	require.Len(t, state.Items, 1)
	assert.InDelta(t, 6.50, state.Total, 1e-9)

	_, err = service.UpdateQuantity(ctx, "cart-1", res.Items[0].ID, domain.UpdateCartQuantityRequest{Quantity: 3})
	require.NoError(t, err)

	data, err = repo.Get(ctx, cartKey("cart-1"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &state))
	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.InDelta(t, 19.50, state.Total, 1e-9)
}

func TestCartServiceRemoveItem(t *testing.T) {
	ctx := context.Background()
	service := NewCartService(NewMemoryCartRepository())

	res, err := service.AddItem(ctx, "cart-1", addRequest("fish-cod", 6.50, 1))
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "cart-1", addRequest("fish-haddock", 7.00, 1))
	require.NoError(t, err)

	cart, err := service.RemoveItem(ctx, "cart-1", res.Items[0].ID)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "fish-haddock", cart.Items[0].MenuItemID)
}

func TestCartServiceClearDeletesSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCartRepository()
	service := NewCartService(repo)

	_, err := service.AddItem(ctx, "cart-1", addRequest("fish-cod", 6.50, 1))
	require.NoError(t, err)

	cart, err := service.ClearCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = repo.Get(ctx, cartKey("cart-1"))
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)

	reloaded, err := service.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items)
}

func TestCartServiceRejectsEmptyCartID(t *testing.T) {
	ctx := context.Background()
	service := NewCartService(NewMemoryCartRepository())

	_, err := service.GetCart(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidCartID)

	_, err = service.AddItem(ctx, "", addRequest("fish-cod", 6.50, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidCartID)
}
