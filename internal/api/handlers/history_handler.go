package handlers

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/internal/api/presenters"
	"Smart-Grocery-Backend/pkg/history"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HistoryHandler interface {
		AddBasket(c *fiber.Ctx) error
		GetBaskets(c *fiber.Ctx) error
	}

	historyHandler struct {
		historyService history.HistoryService
		validator      *validator.Validate
	}
)

func NewHistoryHandler(historyService history.HistoryService, validator *validator.Validate) HistoryHandler {
	return &historyHandler{
		historyService: historyService,
		validator:      validator,
	}
}

func (h *historyHandler) AddBasket(c *fiber.Ctx) error {
	req := new(domain.AddBasketRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBasket, err)
	}

	basket, err := h.historyService.AddBasket(c.Context(), req.Basket)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBasket, err)
	}

	// A basket that normalized down to nothing is acknowledged with a null
	// id: nothing was recorded, but that is not a failure.
	res := domain.AddBasketResponse{OK: true}
	if basket != nil {
		res.ID = &basket.ID
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddBasket)
}

func (h *historyHandler) GetBaskets(c *fiber.Ctx) error {
	baskets, err := h.historyService.GetBaskets(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBaskets, err)
	}

	return presenters.SuccessResponse(c, baskets, fiber.StatusOK, domain.MessageSuccessGetBaskets)
}
