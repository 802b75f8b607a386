package domain

import (
	"errors"
)

var (
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddCartItem    = "item added to cart successfully"
	MessageSuccessRemoveCartItem = "item removed from cart successfully"
	MessageSuccessUpdateQuantity = "cart item quantity updated successfully"
	MessageSuccessClearCart      = "cart cleared successfully"

	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedAddCartItem    = "failed to add item to cart"
	MessageFailedRemoveCartItem = "failed to remove item from cart"
	MessageFailedUpdateQuantity = "failed to update cart item quantity"
	MessageFailedClearCart      = "failed to clear cart"

	ErrInvalidCartID       = errors.New("invalid cart id")
	ErrSnapshotNotFound    = errors.New("cart snapshot not found")
	ErrCorruptSnapshot     = errors.New("cart snapshot is not valid JSON")
	ErrInvalidCartQuantity = errors.New("quantity must be a positive integer")
)

type (
	// CartItem is one line in the cart. Display fields and price are captured
	// at add time and never re-read from the catalog afterwards, so later
	// catalog price changes do not touch items already in the cart.
	CartItem struct {
		ID          string  `json:"id"`
		MenuItemID  string  `json:"menu_item_id"`
		Name        string  `json:"name"`
		ImageURL    string  `json:"image_url,omitempty"`
		VariantID   string  `json:"variant_id,omitempty"`
		VariantName string  `json:"variant_name,omitempty"`
		Price       float64 `json:"price"`
		Quantity    int     `json:"quantity"`
	}

	// CartState is the persisted snapshot layout. Only Items is trusted on
	// reload; Total and ItemCount are recomputed by replay.
	CartState struct {
		Items     []CartItem `json:"items"`
		Total     float64    `json:"total"`
		ItemCount int        `json:"item_count"`
	}

	// AddCartItemRequest carries the caller-supplied catalog snapshot.
	// Quantity must be >= 1 and price non-negative; the store does not
	// defend against violations.
	AddCartItemRequest struct {
		MenuItemID  string  `json:"menu_item_id" validate:"required"`
		Name        string  `json:"name" validate:"required"`
		ImageURL    string  `json:"image_url" validate:"omitempty"`
		VariantID   string  `json:"variant_id" validate:"omitempty"`
		VariantName string  `json:"variant_name" validate:"omitempty"`
		Price       float64 `json:"price" validate:"min=0"`
		Quantity    int     `json:"quantity" validate:"required,min=1"`
	}

	UpdateCartQuantityRequest struct {
		Quantity int `json:"quantity"`
	}

	CartResponse struct {
		CartID    string     `json:"cart_id"`
		Items     []CartItem `json:"items"`
		Total     float64    `json:"total"`
		ItemCount int        `json:"item_count"`
	}
)
