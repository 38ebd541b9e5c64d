package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/application/usecase"
)

// PartModelHandler maneja el catálogo de modelos (protegido).
type PartModelHandler struct {
	uc *usecase.PartModelUseCase
}

// NewPartModelHandler construye el handler.
func NewPartModelHandler(uc *usecase.PartModelUseCase) *PartModelHandler {
	return &PartModelHandler{uc: uc}
}

// Create godoc
// @Summary      Crear modelo de pieza
// @Tags         part-models
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartModelRequest  true  "Datos del modelo"
// @Success      201   {object}  dto.PartModelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/part-models [post]
func (h *PartModelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartModelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar modelos con filtros
// @Tags         part-models
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Substring sobre código, nombre, especificación o categoría"
// @Param        category  query  string  false  "Categoría exacta"
// @Success      200  {array}  dto.PartModelResponse
// @Router       /api/part-models [get]
func (h *PartModelHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener modelo por ID
// @Tags         part-models
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del modelo"
// @Success      200  {object}  dto.PartModelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/part-models/{id} [get]
func (h *PartModelHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar modelo (el código no es editable)
// @Tags         part-models
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del modelo"
// @Param        body  body  dto.UpdatePartModelRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PartModelResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/part-models/{id} [put]
func (h *PartModelHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartModelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar modelo (solo sin referencias)
// @Tags         part-models
// @Security     Bearer
// @Param        id  path  string  true  "ID del modelo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/part-models/{id} [delete]
func (h *PartModelHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
