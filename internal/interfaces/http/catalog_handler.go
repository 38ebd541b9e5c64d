package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/application/usecase"
)

// CatalogHandler maneja departamentos y proveedores (protegido).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateDepartment godoc
// @Summary      Crear departamento
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DepartmentRequest  true  "Datos del departamento"
// @Success      201   {object}  dto.DepartmentResponse
// @Router       /api/departments [post]
func (h *CatalogHandler) CreateDepartment(c *fiber.Ctx) error {
	var in dto.DepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateDepartment(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDepartments godoc
// @Summary      Listar departamentos
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DepartmentResponse
// @Router       /api/departments [get]
func (h *CatalogHandler) ListDepartments(c *fiber.Ctx) error {
	out, err := h.uc.ListDepartments(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteDepartment godoc
// @Summary      Eliminar departamento
// @Tags         catalogs
// @Security     Bearer
// @Param        id  path  string  true  "ID del departamento"
// @Success      204
// @Router       /api/departments/{id} [delete]
func (h *CatalogHandler) DeleteDepartment(c *fiber.Ctx) error {
	if err := h.uc.DeleteDepartment(c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateSupplier godoc
// @Summary      Crear proveedor
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Router       /api/suppliers [post]
func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSupplier(in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.uc.ListSuppliers(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateSupplier godoc
// @Summary      Actualizar proveedor
// @Tags         catalogs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.SupplierRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.SupplierResponse
// @Router       /api/suppliers/{id} [put]
func (h *CatalogHandler) UpdateSupplier(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateSupplier(c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// DeleteSupplier godoc
// @Summary      Eliminar proveedor
// @Tags         catalogs
// @Security     Bearer
// @Param        id  path  string  true  "ID del proveedor"
// @Success      204
// @Router       /api/suppliers/{id} [delete]
func (h *CatalogHandler) DeleteSupplier(c *fiber.Ctx) error {
	if err := h.uc.DeleteSupplier(c.Params("id")); err != nil {
		return handleDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
