package cart

import (
	"fmt"
	"time"

	"rumbles-backend/domain"
)

// Store holds the in-memory cart state: the ordered line items plus the
// derived total and item count. Every mutation recomputes the aggregates
// before returning, so they are never observable out of sync with the items.
//
// The store is not safe for concurrent use; each cart is mutated within a
// single request at a time.
type Store struct {
	items     []domain.CartItem
	total     float64
	itemCount int
}

func NewStore() *Store {
	return &Store{}
}

// AddItem merges the request into an existing line with the same
// (menu item, variant) pair, or appends a new line with a fresh id.
// On merge the existing line keeps its first-added price and display
// fields; only the quantity grows.
//
// Precondition: req.Quantity >= 1 and req.Price >= 0. The store does not
// validate these; callers do (via the request validator).
func (s *Store) AddItem(req domain.AddCartItemRequest) {
	for i, item := range s.items {
		if item.MenuItemID == req.MenuItemID && item.VariantID == req.VariantID {
			s.items[i].Quantity += req.Quantity
			s.recalculate()
			return
		}
	}

	s.items = append(s.items, domain.CartItem{
		ID:          newCartItemID(req.MenuItemID, req.VariantID),
		MenuItemID:  req.MenuItemID,
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		VariantID:   req.VariantID,
		VariantName: req.VariantName,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	s.recalculate()
}

// RemoveItem deletes the line with the given id. Removing an unknown id is
// a no-op.
func (s *Store) RemoveItem(id string) {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recalculate()
			return
		}
	}
}

// UpdateQuantity sets the quantity of the line with the given id. A quantity
// of zero or less removes the line, identical to RemoveItem. An unknown id
// is a no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(id)
		return
	}

	for i, item := range s.items {
		if item.ID == id {
			s.items[i].Quantity = quantity
			s.recalculate()
			return
		}
	}
}

// Clear resets the cart to the empty state.
func (s *Store) Clear() {
	s.items = nil
	s.total = 0
	s.itemCount = 0
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) Total() float64 {
	return s.total
}

func (s *Store) ItemCount() int {
	return s.itemCount
}

// State returns the snapshot form of the cart, as persisted.
func (s *Store) State() domain.CartState {
	return domain.CartState{
		Items:     s.Items(),
		Total:     s.total,
		ItemCount: s.itemCount,
	}
}

func (s *Store) recalculate() {
	total := 0.0
	count := 0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
		count += item.Quantity
	}
	s.total = total
	s.itemCount = count
}

// newCartItemID builds a cart line id from the menu item, variant and
// creation time. Uniqueness across lines comes from the merge rule, not
// from this id: two adds of the same (item, variant) share one line.
func newCartItemID(menuItemID, variantID string) string {
	if variantID == "" {
		variantID = "default"
	}
	return fmt.Sprintf("%s-%s-%d", menuItemID, variantID, time.Now().UnixMilli())
}
