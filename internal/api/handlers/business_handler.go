package handlers

import (
	"rumbles-backend/domain"
	"rumbles-backend/internal/api/presenters"
	"rumbles-backend/pkg/business"

	"github.com/gofiber/fiber/v2"
)

type (
	BusinessHandler interface {
		GetInfo(c *fiber.Ctx) error
		GetHours(c *fiber.Ctx) error
		GetStatus(c *fiber.Ctx) error
	}

	businessHandler struct {
		businessService business.BusinessService
	}
)

func NewBusinessHandler(businessService business.BusinessService) BusinessHandler {
	return &businessHandler{businessService: businessService}
}

func (h *businessHandler) GetInfo(c *fiber.Ctx) error {
	info, err := h.businessService.GetInfo(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, info, fiber.StatusOK, domain.MessageSuccessGetBusinessInfo)
}

func (h *businessHandler) GetHours(c *fiber.Ctx) error {
	hours, err := h.businessService.GetHours(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, hours, fiber.StatusOK, domain.MessageSuccessGetBusinessHours)
}

func (h *businessHandler) GetStatus(c *fiber.Ctx) error {
	status, err := h.businessService.GetStatus(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, status, fiber.StatusOK, domain.MessageSuccessGetBusinessStatus)
}
