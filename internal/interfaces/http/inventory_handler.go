package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wesley1888/InvenMate/internal/application/inventory"
)

// InventoryHandler expone las vistas derivadas del inventario (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Vista de inventario derivada del libro
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Substring sobre código, nombre, especificación o categoría"
// @Param        category  query  string  false  "Categoría exacta"
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetSnapshots(c.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByPartModel godoc
// @Summary      Foto de inventario de un modelo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del modelo"
// @Success      200  {object}  dto.InventorySnapshotDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByPartModel(c *fiber.Ctx) error {
	out, err := h.uc.GetSnapshot(c.Context(), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// LowStockAlerts godoc
// @Summary      Modelos monitoreados bajo su umbral, por déficit descendente
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockAlertDTO
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) LowStockAlerts(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStockAlerts(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}
