package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/application/usecase"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// OrderHandler maneja órdenes de compra y sus líneas (protegido).
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden con líneas iniciales
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes con filtros y paginación
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Substring sobre número de orden o proveedor"
// @Param        status     query  string  false  "Estado exacto"
// @Param        page       query  int     false  "Página"            default(1)
// @Param        page_size  query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	filter := repository.OrderFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}
	out, err := h.uc.List(c.Context(), filter)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden con sus líneas
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cabecera de la orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
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
// @Summary      Eliminar orden y sus líneas
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddItem godoc
// @Summary      Agregar línea a la orden (recalcula el total)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.OrderItemRequest  true  "Línea a agregar"
// @Success      201   {object}  dto.OrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/items [post]
func (h *OrderHandler) AddItem(c *fiber.Ctx) error {
	var in dto.OrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Actualizar línea de la orden (recalcula el total)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID de la orden"
// @Param        itemId  path  string  true  "ID de la línea"
// @Param        body    body  dto.OrderItemRequest  true  "Datos de la línea"
// @Success      200     {object}  dto.OrderResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/items/{itemId} [put]
func (h *OrderHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.OrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateItem(c.Context(), c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar línea de la orden (recalcula el total)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID de la orden"
// @Param        itemId  path  string  true  "ID de la línea"
// @Success      200     {object}  dto.OrderResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/items/{itemId} [delete]
func (h *OrderHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.Context(), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}
