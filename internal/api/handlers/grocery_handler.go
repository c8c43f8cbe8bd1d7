package handlers

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/internal/api/presenters"
	"Smart-Grocery-Backend/pkg/grocery"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetItemDetails(c *fiber.Ctx) error
		GetExpiringItems(c *fiber.Ctx) error
		SendExpiryReminder(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.groceryService.AddItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItem)
}

func (h *groceryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	req := new(domain.UpdateItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	res, err := h.groceryService.UpdateItem(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *groceryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	// Deleting an unknown id is not an error; the count tells the caller
	// whether anything was removed.
	deleted, err := h.groceryService.DeleteItem(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, domain.DeleteItemResponse{Deleted: deleted}, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}

func (h *groceryHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.groceryService.GetItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *groceryHandler) GetItemDetails(c *fiber.Ctx) error {
	id, err := parseItemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
	}

	item, err := h.groceryService.GetItemByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *groceryHandler) GetExpiringItems(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", strconv.Itoa(grocery.DefaultShelfLifeDays)))
	if err != nil {
		days = grocery.DefaultShelfLifeDays
	}

	res, err := h.groceryService.ListExpiring(c.Context(), days)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpiringItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpiringItems)
}

func (h *groceryHandler) SendExpiryReminder(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", strconv.Itoa(grocery.DefaultShelfLifeDays)))
	if err != nil {
		days = grocery.DefaultShelfLifeDays
	}

	res, err := h.groceryService.SendExpiryReminder(c.Context(), days)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendReminder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendReminder)
}

func parseItemID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, domain.ErrInvalidItemID
	}
	return uint(id), nil
}
