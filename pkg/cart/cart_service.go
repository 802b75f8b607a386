package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"rumbles-backend/domain"
)

const cartKeyPrefix = "rumbles-cart:"

type (
	CartService interface {
		GetCart(ctx context.Context, cartID string) (domain.CartResponse, error)
		AddItem(ctx context.Context, cartID string, req domain.AddCartItemRequest) (domain.CartResponse, error)
		RemoveItem(ctx context.Context, cartID string, itemID string) (domain.CartResponse, error)
		UpdateQuantity(ctx context.Context, cartID string, itemID string, req domain.UpdateCartQuantityRequest) (domain.CartResponse, error)
		ClearCart(ctx context.Context, cartID string) (domain.CartResponse, error)
	}

	cartService struct {
		cartRepository CartRepository
	}
)

func NewCartService(cartRepository CartRepository) CartService {
	return &cartService{cartRepository: cartRepository}
}

func (s *cartService) GetCart(ctx context.Context, cartID string) (domain.CartResponse, error) {
	if cartID == "" {
		return domain.CartResponse{}, domain.ErrInvalidCartID
	}

	store := s.loadStore(ctx, cartID)
	return s.response(cartID, store), nil
}

func (s *cartService) AddItem(ctx context.Context, cartID string, req domain.AddCartItemRequest) (domain.CartResponse, error) {
	if cartID == "" {
		return domain.CartResponse{}, domain.ErrInvalidCartID
	}

	store := s.loadStore(ctx, cartID)
	store.AddItem(req)
	s.persist(ctx, cartID, store)

	return s.response(cartID, store), nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartID string, itemID string) (domain.CartResponse, error) {
	if cartID == "" {
		return domain.CartResponse{}, domain.ErrInvalidCartID
	}

	store := s.loadStore(ctx, cartID)
	store.RemoveItem(itemID)
	s.persist(ctx, cartID, store)

	return s.response(cartID, store), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, cartID string, itemID string, req domain.UpdateCartQuantityRequest) (domain.CartResponse, error) {
	if cartID == "" {
		return domain.CartResponse{}, domain.ErrInvalidCartID
	}

	store := s.loadStore(ctx, cartID)
	store.UpdateQuantity(itemID, req.Quantity)
	s.persist(ctx, cartID, store)

	return s.response(cartID, store), nil
}

func (s *cartService) ClearCart(ctx context.Context, cartID string) (domain.CartResponse, error) {
	if cartID == "" {
		return domain.CartResponse{}, domain.ErrInvalidCartID
	}

	if err := s.cartRepository.Delete(ctx, cartKey(cartID)); err != nil {
		log.Printf("failed to delete cart snapshot for %s: %v", cartID, err)
	}

	return s.response(cartID, NewStore()), nil
}

// loadStore rebuilds the cart from its persisted snapshot by replaying every
// persisted item through AddItem. Replay re-runs the merge-by-variant rule
// and recomputes the aggregates, so a stale or inconsistent persisted
// total/itemCount is discarded rather than trusted. An absent or malformed
// snapshot degrades silently to an empty cart; the failure is only logged.
func (s *cartService) loadStore(ctx context.Context, cartID string) *Store {
	store := NewStore()

	data, err := s.cartRepository.Get(ctx, cartKey(cartID))
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			log.Printf("failed to load cart snapshot for %s: %v", cartID, err)
		}
		return store
	}

	var state domain.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("discarding corrupt cart snapshot for %s: %v", cartID, err)
		return store
	}

	for _, item := range state.Items {
		store.AddItem(domain.AddCartItemRequest{
			MenuItemID:  item.MenuItemID,
			Name:        item.Name,
			ImageURL:    item.ImageURL,
			VariantID:   item.VariantID,
			VariantName: item.VariantName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return store
}

// persist writes the snapshot after a mutation. Write failures are logged
// and swallowed: the in-memory state in the response stays authoritative
// regardless of whether the snapshot landed.
func (s *cartService) persist(ctx context.Context, cartID string, store *Store) {
	data, err := json.Marshal(store.State())
	if err != nil {
		log.Printf("failed to serialize cart state for %s: %v", cartID, err)
		return
	}

	if err := s.cartRepository.Set(ctx, cartKey(cartID), data); err != nil {
		log.Printf("failed to persist cart snapshot for %s: %v", cartID, err)
	}
}

func (s *cartService) response(cartID string, store *Store) domain.CartResponse {
	return domain.CartResponse{
		CartID:    cartID,
		Items:     store.Items(),
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
	}
}

func cartKey(cartID string) string {
	return cartKeyPrefix + cartID
}
