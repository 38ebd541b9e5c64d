package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Wesley1888/InvenMate/internal/application/report"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// Content types de los archivos exportados.
const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
	contentTypeJSON = "application/json"
)

// ReportHandler expone las exportaciones descargables (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportInventory godoc
// @Summary      Exportar la vista de inventario a xlsx
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search    query  string  false  "Substring de filtro"
// @Param        category  query  string  false  "Categoría exacta"
// @Success      200  {file}  binary
// @Router       /api/reports/inventory.xlsx [get]
func (h *ReportHandler) ExportInventory(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportInventoryExcel(c.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return sendFile(c, data, name, contentTypeXLSX)
}

// ExportStockIn godoc
// @Summary      Exportar el libro de entradas a xlsx
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        part_name     query  string  false  "Substring sobre código o nombre"
// @Param        order_number  query  string  false  "Substring sobre el número de orden"
// @Param        date_from     query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to       query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Router       /api/reports/stock-in.xlsx [get]
func (h *ReportHandler) ExportStockIn(c *fiber.Ctx) error {
	filter := repository.StockInFilter{
		PartName:    c.Query("part_name"),
		OrderNumber: c.Query("order_number"),
		DateFrom:    queryDate(c, "date_from"),
		DateTo:      queryDate(c, "date_to"),
	}
	data, name, err := h.uc.ExportStockInExcel(c.Context(), filter)
	if err != nil {
		return handleDomainError(c, err)
	}
	return sendFile(c, data, name, contentTypeXLSX)
}

// ExportStockOut godoc
// @Summary      Exportar el libro de salidas a xlsx
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        part_name   query  string  false  "Substring sobre código o nombre"
// @Param        department  query  string  false  "Substring sobre el departamento"
// @Param        date_from   query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to     query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Router       /api/reports/stock-out.xlsx [get]
func (h *ReportHandler) ExportStockOut(c *fiber.Ctx) error {
	filter := repository.StockOutFilter{
		PartName:   c.Query("part_name"),
		Department: c.Query("department"),
		DateFrom:   queryDate(c, "date_from"),
		DateTo:     queryDate(c, "date_to"),
	}
	data, name, err := h.uc.ExportStockOutExcel(c.Context(), filter)
	if err != nil {
		return handleDomainError(c, err)
	}
	return sendFile(c, data, name, contentTypeXLSX)
}

// ExportLowStockExcel godoc
// @Summary      Exportar las alertas de stock bajo a xlsx
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/low-stock.xlsx [get]
func (h *ReportHandler) ExportLowStockExcel(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportLowStockExcel(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return sendFile(c, data, name, contentTypeXLSX)
}

// ExportLowStockPDF godoc
// @Summary      Reporte PDF de alertas de stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/low-stock.pdf [get]
func (h *ReportHandler) ExportLowStockPDF(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportLowStockPDF(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return sendFile(c, data, name, contentTypePDF)
}

// ExportAppData godoc
// @Summary      Volcado JSON de datos de aplicación
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {file}  binary
// @Router       /api/reports/app-data.json [get]
func (h *ReportHandler) ExportAppData(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportAppDataJSON(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return sendFile(c, data, name, contentTypeJSON)
}

func sendFile(c *fiber.Ctx, data []byte, name, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.Send(data)
}
