package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/application/usecase"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// StockInHandler maneja el libro de entradas (protegido).
type StockInHandler struct {
	uc *usecase.StockInUseCase
}

// NewStockInHandler construye el handler.
func NewStockInHandler(uc *usecase.StockInUseCase) *StockInHandler {
	return &StockInHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de stock
// @Tags         stock-in
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockInRequest  true  "Datos de la entrada"
// @Success      201   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-in [post]
func (h *StockInHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El operador por defecto es el nombre del token.
	out, err := h.uc.Create(in, GetUserName(c))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entradas con filtros y paginación
// @Tags         stock-in
// @Security     Bearer
// @Produce      json
// @Param        part_name     query  string  false  "Substring sobre código o nombre del modelo"
// @Param        order_number  query  string  false  "Substring sobre el número de orden"
// @Param        date_from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to       query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Param        page          query  int     false  "Página"            default(1)
// @Param        page_size     query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.StockInListResponse
// @Router       /api/stock-in [get]
func (h *StockInHandler) List(c *fiber.Ctx) error {
	filter := repository.StockInFilter{
		PartName:    c.Query("part_name"),
		OrderNumber: c.Query("order_number"),
		DateFrom:    queryDate(c, "date_from"),
		DateTo:      queryDate(c, "date_to"),
		Page:        c.QueryInt("page", 1),
		PageSize:    c.QueryInt("page_size", 20),
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada por ID
// @Tags         stock-in
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la entrada"
// @Success      200  {object}  dto.StockInResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-in/{id} [get]
func (h *StockInHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Corregir entrada existente
// @Tags         stock-in
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la entrada"
// @Param        body  body  dto.CreateStockInRequest  true  "Datos corregidos"
// @Success      200   {object}  dto.StockInResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-in/{id} [put]
func (h *StockInHandler) Update(c *fiber.Ctx) error {
	id, ok := paramInt64(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	var in dto.CreateStockInRequest
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
// @Summary      Borrar entrada del libro
// @Tags         stock-in
// @Security     Bearer
// @Param        id  path  int  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-in/{id} [delete]
func (h *StockInHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramInt64(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
