// Package excel arma los libros xlsx de exportación usando excelize.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/application/report"
)

var _ report.ExcelExporter = (*Exporter)(nil)

// Exporter implementa report.ExcelExporter con excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// InventoryWorkbook libro con la vista de inventario y una fila de resumen.
func (e *Exporter) InventoryWorkbook(snapshots []dto.InventorySnapshotDTO, summary dto.InventorySummaryDTO) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Inventario"
	if err := renameDefaultSheet(f, sheet); err != nil {
		return nil, err
	}

	writeHeadings(f, sheet, "Código", "Nombre", "Especificación", "Categoría", "Unidad",
		"Stock actual", "Umbral mínimo", "Costo promedio", "Valor total", "Nivel", "Última actualización")
	for i, s := range snapshots {
		rowNo := i + 2
		last := ""
		if s.LastUpdated != nil {
			last = s.LastUpdated.Format("2006-01-02")
		}
		writeRow(f, sheet, rowNo,
			s.ModelCode, s.ModelName, s.Specification, s.Category, s.Unit,
			s.CurrentQuantity, s.MinThreshold,
			s.AverageCost.StringFixed(2), s.TotalValue.StringFixed(2),
			s.Level, last,
		)
	}

	// Fila de resumen al pie, separada por una fila en blanco.
	footer := len(snapshots) + 3
	writeRow(f, sheet, footer,
		"Totales", "", "", "", "",
		summary.TotalQuantity, "", "", summary.TotalValue.StringFixed(2),
		fmt.Sprintf("%d con stock bajo", summary.LowStockItems), "",
	)

	return workbookBytes(f)
}

// StockInWorkbook libro con el listado de entradas.
func (e *Exporter) StockInWorkbook(rows []dto.StockInResponse) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Entradas"
	if err := renameDefaultSheet(f, sheet); err != nil {
		return nil, err
	}

	writeHeadings(f, sheet, "ID", "Código", "Nombre", "Unidad", "Orden",
		"Cantidad", "Precio unitario", "Monto total", "Fecha", "Operador", "Notas")
	for i, r := range rows {
		writeRow(f, sheet, i+2,
			r.ID, r.ModelCode, r.ModelName, r.Unit, r.OrderNumber,
			r.Quantity, r.UnitPrice.StringFixed(2), r.TotalAmount.StringFixed(2),
			r.StockInDate.Format("2006-01-02"), r.Operator, r.Notes,
		)
	}
	return workbookBytes(f)
}

// StockOutWorkbook libro con el listado de salidas.
func (e *Exporter) StockOutWorkbook(rows []dto.StockOutResponse) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Salidas"
	if err := renameDefaultSheet(f, sheet); err != nil {
		return nil, err
	}

	writeHeadings(f, sheet, "ID", "Código", "Nombre", "Unidad", "Cantidad",
		"Precio unitario", "Monto total", "Receptor", "Departamento", "Fecha", "Operador", "Notas")
	for i, r := range rows {
		writeRow(f, sheet, i+2,
			r.ID, r.ModelCode, r.ModelName, r.Unit, r.Quantity,
			r.UnitPrice.StringFixed(2), r.TotalAmount.StringFixed(2),
			r.Recipient, r.Department, r.StockOutDate.Format("2006-01-02"), r.Operator, r.Notes,
		)
	}
	return workbookBytes(f)
}

// LowStockWorkbook libro con las alertas de stock bajo vigentes.
func (e *Exporter) LowStockWorkbook(alerts []dto.LowStockAlertDTO) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "StockBajo"
	if err := renameDefaultSheet(f, sheet); err != nil {
		return nil, err
	}

	writeHeadings(f, sheet, "Código", "Nombre", "Unidad",
		"Stock actual", "Umbral mínimo", "Déficit", "Nivel")
	for i, a := range alerts {
		writeRow(f, sheet, i+2,
			a.ModelCode, a.ModelName, a.Unit,
			a.CurrentQuantity, a.MinThreshold, a.Deficit, a.Level,
		)
	}
	return workbookBytes(f)
}

func renameDefaultSheet(f *excelize.File, name string) error {
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	return nil
}

func writeHeadings(f *excelize.File, sheet string, headings ...string) {
	for i, h := range headings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
}

func writeRow(f *excelize.File, sheet string, rowNo int, values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, rowNo)
		_ = f.SetCellValue(sheet, cell, v)
	}
}

func workbookBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
