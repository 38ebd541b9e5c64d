package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/application/usecase"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// StockOutHandler maneja el libro de salidas (protegido).
type StockOutHandler struct {
	uc *usecase.StockOutUseCase
}

// NewStockOutHandler construye el handler.
func NewStockOutHandler(uc *usecase.StockOutUseCase) *StockOutHandler {
	return &StockOutHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar salida de stock
// @Tags         stock-out
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockOutRequest  true  "Datos de la salida"
// @Success      201   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-out [post]
func (h *StockOutHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in, GetUserName(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar salidas con filtros y paginación
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        part_name   query  string  false  "Substring sobre código o nombre del modelo"
// @Param        department  query  string  false  "Substring sobre el departamento"
// @Param        date_from   query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to     query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        page        query  int     false  "Página"            default(1)
// @Param        page_size   query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.StockOutListResponse
// @Router       /api/stock-out [get]
func (h *StockOutHandler) List(c *fiber.Ctx) error {
	filter := repository.StockOutFilter{
		PartName:   c.Query("part_name"),
		Department: c.Query("department"),
		DateFrom:   queryDate(c, "date_from"),
		DateTo:     queryDate(c, "date_to"),
		Page:       c.QueryInt("page", 1),
		PageSize:   c.QueryInt("page_size", 20),
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener salida por ID
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la salida"
// @Success      200  {object}  dto.StockOutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id} [get]
func (h *StockOutHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramInt64(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corregir salida existente
// @Tags         stock-out
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la salida"
// @Param        body  body  dto.CreateStockOutRequest  true  "Datos corregidos"
// @Success      200   {object}  dto.StockOutResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id} [put]
func (h *StockOutHandler) Update(c *fiber.Ctx) error {
	id, ok := paramInt64(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.CreateStockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar salida del libro
// @Tags         stock-out
// @Security     Bearer
// @Param        id  path  int  true  "ID de la salida"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id} [delete]
func (h *StockOutHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramInt64(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
