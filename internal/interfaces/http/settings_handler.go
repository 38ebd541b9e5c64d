package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/application/usecase"
)

// settingsBody body de escritura de una clave.
type settingsBody struct {
	Value string `json:"value"`
}

// SettingsHandler maneja el almacén clave/valor de datos de aplicación (protegido).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// List godoc
// @Summary      Listar todas las claves almacenadas
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AppDataEntry
// @Router       /api/settings [get]
func (h *SettingsHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener una clave
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        key  path  string  true  "Clave"
// @Success      200  {object}  dto.AppDataEntry
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/{key} [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("key"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Crear o reemplazar el valor de una clave
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        key   path  string        true  "Clave"
// @Param        body  body  settingsBody  true  "Valor"
// @Success      200   {object}  dto.AppDataEntry
// @Router       /api/settings/{key} [put]
func (h *SettingsHandler) Set(c *fiber.Ctx) error {
	var in settingsBody
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Set(c.Params("key"), in.Value)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar una clave (idempotente)
// @Tags         settings
// @Security     Bearer
// @Param        key  path  string  true  "Clave"
// @Success      204
// @Router       /api/settings/{key} [delete]
func (h *SettingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("key")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
