package handlers

import (
	"rumbles-backend/domain"
	"rumbles-backend/internal/api/presenters"
	"rumbles-backend/pkg/menu"

	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		GetCategories(c *fiber.Ctx) error
		GetFeaturedCategories(c *fiber.Ctx) error
		GetCategory(c *fiber.Ctx) error
		GetMenuItem(c *fiber.Ctx) error
		GetPopularItems(c *fiber.Ctx) error
		SearchMenuItems(c *fiber.Ctx) error
		GetMenuImage(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
	}
)

func NewMenuHandler(menuService menu.MenuService) MenuHandler {
	return &menuHandler{menuService: menuService}
}

func (h *menuHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.menuService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *menuHandler) GetFeaturedCategories(c *fiber.Ctx) error {
	categories, err := h.menuService.GetFeaturedCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *menuHandler) GetCategory(c *fiber.Ctx) error {
	slug := c.Params("slug")

	category, err := h.menuService.GetCategoryBySlug(c.Context(), slug)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCategory, err)
	}

	return presenters.SuccessResponse(c, category, fiber.StatusOK, domain.MessageSuccessGetCategory)
}

func (h *menuHandler) GetMenuItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.menuService.GetItemByID(c.Context(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMenuItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetMenuItem)
}

func (h *menuHandler) GetPopularItems(c *fiber.Ctx) error {
	items, err := h.menuService.GetPopularItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenuItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMenuItems)
}

func (h *menuHandler) SearchMenuItems(c *fiber.Ctx) error {
	query := c.Query("q")

	items, err := h.menuService.SearchItems(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchMenuItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessSearchMenuItems)
}

func (h *menuHandler) GetMenuImage(c *fiber.Ctx) error {
	objectKey := c.Params("*")

	body, contentType, err := h.menuService.GetMenuImage(c.Context(), objectKey)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMenuImage, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(body)
}
