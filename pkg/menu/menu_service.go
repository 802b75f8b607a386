package menu

import (
	"context"
	"io"
	"strings"

	"rumbles-backend/domain"
	"rumbles-backend/internal/utils/storage"
)

type (
	MenuService interface {
		GetCategories(ctx context.Context) ([]domain.Category, error)
		GetFeaturedCategories(ctx context.Context) ([]domain.Category, error)
		GetCategoryBySlug(ctx context.Context, slug string) (domain.CategoryResponse, error)
		GetItemsByCategory(ctx context.Context, slug string) ([]domain.MenuItem, error)
		GetItemByID(ctx context.Context, id string) (domain.MenuItem, error)
		GetPopularItems(ctx context.Context) ([]domain.MenuItem, error)
		SearchItems(ctx context.Context, query string) ([]domain.MenuItem, error)
		GetMenuImage(ctx context.Context, objectKey string) (io.ReadCloser, string, error)
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
	}
}

func (s *menuService) GetCategories(_ context.Context) ([]domain.Category, error) {
	categories := s.menuRepository.GetCategories()
	for i := range categories {
		categories[i].ItemCount = len(s.menuRepository.GetItemsByCategory(categories[i].ID))
		categories[i].ImageURL = s.resolveImage(categories[i].ImageURL)
	}
	return categories, nil
}

func (s *menuService) GetFeaturedCategories(ctx context.Context) ([]domain.Category, error) {
	all, err := s.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]domain.Category, 0, len(featuredCategoryIDs))
	for _, id := range featuredCategoryIDs {
		for _, category := range all {
			if category.ID == id {
				featured = append(featured, category)
				break
			}
		}
	}
	return featured, nil
}

func (s *menuService) GetCategoryBySlug(ctx context.Context, slug string) (domain.CategoryResponse, error) {
	category, err := s.menuRepository.GetCategoryBySlug(slug)
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	items, err := s.GetItemsByCategory(ctx, slug)
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	category.ItemCount = len(items)
	category.ImageURL = s.resolveImage(category.ImageURL)

	return domain.CategoryResponse{
		Category: category,
		Items:    items,
	}, nil
}

func (s *menuService) GetItemsByCategory(_ context.Context, slug string) ([]domain.MenuItem, error) {
	category, err := s.menuRepository.GetCategoryBySlug(slug)
	if err != nil {
		return nil, err
	}

	items := s.menuRepository.GetItemsByCategory(category.ID)
	for i := range items {
		items[i].ImageURL = s.resolveImage(items[i].ImageURL)
	}
	return items, nil
}

func (s *menuService) GetItemByID(_ context.Context, id string) (domain.MenuItem, error) {
	item, err := s.menuRepository.GetItemByID(id)
	if err != nil {
		return domain.MenuItem{}, err
	}

	item.ImageURL = s.resolveImage(item.ImageURL)
	return item, nil
}

func (s *menuService) GetPopularItems(_ context.Context) ([]domain.MenuItem, error) {
	items := s.menuRepository.GetPopularItems()
	for i := range items {
		items[i].ImageURL = s.resolveImage(items[i].ImageURL)
	}
	return items, nil
}

func (s *menuService) SearchItems(_ context.Context, query string) ([]domain.MenuItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptySearchQuery
	}

	items := s.menuRepository.SearchItems(query)
	for i := range items {
		items[i].ImageURL = s.resolveImage(items[i].ImageURL)
	}
	return items, nil
}

func (s *menuService) GetMenuImage(ctx context.Context, objectKey string) (io.ReadCloser, string, error) {
	return s.s3.GetFile(ctx, objectKey)
}

// resolveImage rewrites a relative catalog image path to its bucket URL when
// media storage is configured. Absolute URLs and unconfigured deployments
// pass through unchanged.
func (s *menuService) resolveImage(imagePath string) string {
	if imagePath == "" || !s.s3.Enabled() || strings.HasPrefix(imagePath, "http") {
		return imagePath
	}
	return s.s3.GetPublicLinkKey(imagePath)
}
