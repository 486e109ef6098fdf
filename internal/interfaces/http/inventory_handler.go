package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daftar-app/daftar/internal/application/usecase"
)

// InventoryHandler serves the derived stock report.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Report godoc
// @Summary      Current stock per product, derived from the invoice log
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryReportResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Report()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
