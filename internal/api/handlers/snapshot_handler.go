package handlers

import (
	"Smart-Grocery-Backend/domain"
	"Smart-Grocery-Backend/internal/api/presenters"
	"Smart-Grocery-Backend/pkg/snapshot"

	"github.com/gofiber/fiber/v2"
)

type (
	SnapshotHandler interface {
		ExportSnapshot(c *fiber.Ctx) error
	}

	snapshotHandler struct {
		snapshotService snapshot.SnapshotService
	}
)

func NewSnapshotHandler(snapshotService snapshot.SnapshotService) SnapshotHandler {
	return &snapshotHandler{snapshotService: snapshotService}
}

func (h *snapshotHandler) ExportSnapshot(c *fiber.Ctx) error {
	res, err := h.snapshotService.Export(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportSnapshot, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessExportSnapshot)
}
