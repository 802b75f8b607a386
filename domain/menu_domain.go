package domain

import (
	"errors"
)

var (
	MessageSuccessGetCategories   = "categories retrieved successfully"
	MessageSuccessGetCategory     = "category retrieved successfully"
	MessageSuccessGetMenuItems    = "menu items retrieved successfully"
	MessageSuccessGetMenuItem     = "menu item retrieved successfully"
	MessageSuccessSearchMenuItems = "menu search completed successfully"

	MessageFailedGetCategories   = "failed to retrieve categories"
	MessageFailedGetCategory     = "failed to retrieve category"
	MessageFailedGetMenuItems    = "failed to retrieve menu items"
	MessageFailedGetMenuItem     = "failed to retrieve menu item"
	MessageFailedSearchMenuItems = "failed to search menu items"
	MessageFailedGetMenuImage    = "failed to retrieve menu image"

	ErrCategoryNotFound = errors.New("category not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrEmptySearchQuery = errors.New("search query must not be empty")
)

type (
	// MenuItemVariant is a separately priced option of a menu item,
	// e.g. "Small" / "Large" or "Wrap".
	MenuItemVariant struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	// MenuItem carries either a single Price or a list of Variants,
	// never both.
	MenuItem struct {
		ID           string            `json:"id"`
		Name         string            `json:"name"`
		Description  string            `json:"description,omitempty"`
		ImageURL     string            `json:"image_url,omitempty"`
		CategoryID   string            `json:"category_id"`
		Price        float64           `json:"price,omitempty"`
		Variants     []MenuItemVariant `json:"variants,omitempty"`
		IsVegetarian bool              `json:"is_vegetarian,omitempty"`
		IsPopular    bool              `json:"is_popular,omitempty"`
		IsNew        bool              `json:"is_new,omitempty"`
	}

	Category struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description,omitempty"`
		ImageURL    string `json:"image_url,omitempty"`
		ItemCount   int    `json:"item_count"`
	}

	CategoryResponse struct {
		Category
		Items []MenuItem `json:"items,omitempty"`
	}
)
