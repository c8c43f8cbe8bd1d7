package handlers

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/internal/api/presenters"
	"Smart-Grocery-Backend/pkg/substitution"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	SubstitutionHandler interface {
		GetSubstitution(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
	}

	substitutionHandler struct {
		substitutionService substitution.SubstitutionService
	}
)

func NewSubstitutionHandler(substitutionService substitution.SubstitutionService) SubstitutionHandler {
	return &substitutionHandler{substitutionService: substitutionService}
}

func (h *substitutionHandler) GetSubstitution(c *fiber.Ctx) error {
	item := c.Query("item")
	if item == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSubstitution, errors.New("item query parameter is required"))
	}

	res := domain.SubstitutionResponse{Item: item}
	if alternative, ok := h.substitutionService.Suggest(item); ok {
		res.Alternative = &alternative
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubstitution)
}

func (h *substitutionHandler) GetCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.CategoriesResponse{
		Categories: h.substitutionService.Categories(),
	}, fiber.StatusOK, domain.MessageSuccessGetCategories)
}
