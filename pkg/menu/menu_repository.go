package menu

import (
	"strings"

	"rumbles-backend/domain"
)

type (
	// MenuRepository serves the static catalog tables. The catalog is
	// read-only; there is no write path.
	MenuRepository interface {
		GetCategories() []domain.Category
		GetCategoryBySlug(slug string) (domain.Category, error)
		GetItemsByCategory(categoryID string) []domain.MenuItem
		GetItemByID(id string) (domain.MenuItem, error)
		GetAllItems() []domain.MenuItem
		GetPopularItems() []domain.MenuItem
		SearchItems(query string) []domain.MenuItem
	}

	menuRepository struct{}
)

func NewMenuRepository() MenuRepository {
	return &menuRepository{}
}

func (r *menuRepository) GetCategories() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}

func (r *menuRepository) GetCategoryBySlug(slug string) (domain.Category, error) {
	for _, category := range categories {
		if category.Slug == slug {
			return category, nil
		}
	}
	return domain.Category{}, domain.ErrCategoryNotFound
}

func (r *menuRepository) GetItemsByCategory(categoryID string) []domain.MenuItem {
	items := menuByCategory[categoryID]
	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	return out
}

func (r *menuRepository) GetItemByID(id string) (domain.MenuItem, error) {
	for _, items := range menuByCategory {
		for _, item := range items {
			if item.ID == id {
				return item, nil
			}
		}
	}
	return domain.MenuItem{}, domain.ErrMenuItemNotFound
}

func (r *menuRepository) GetAllItems() []domain.MenuItem {
	var all []domain.MenuItem
	for _, category := range categories {
		all = append(all, menuByCategory[category.ID]...)
	}
	return all
}

func (r *menuRepository) GetPopularItems() []domain.MenuItem {
	var popular []domain.MenuItem
	for _, item := range r.GetAllItems() {
		if item.IsPopular {
			popular = append(popular, item)
		}
	}
	return popular
}

func (r *menuRepository) SearchItems(query string) []domain.MenuItem {
	query = strings.ToLower(query)

	var matches []domain.MenuItem
	for _, item := range r.GetAllItems() {
		if strings.Contains(strings.ToLower(item.Name), query) ||
			strings.Contains(strings.ToLower(item.Description), query) {
			matches = append(matches, item)
		}
	}
	return matches
}
