// Package report exporta las vistas del sistema a archivos descargables:
// libros xlsx, el PDF de alertas y el volcado JSON de datos de aplicación.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/application/inventory"
	"github.com/Wesley1888/InvenMate/internal/application/usecase"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// exportPageSize filas por página al recorrer el libro para exportar.
const exportPageSize = 10000

// UseCase casos de uso de exportación.
type UseCase struct {
	inventoryUC *inventory.UseCase
	stockInUC   *usecase.StockInUseCase
	stockOutUC  *usecase.StockOutUseCase
	settingsUC  *usecase.SettingsUseCase
	excel       ExcelExporter
	pdf         LowStockPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	inventoryUC *inventory.UseCase,
	stockInUC *usecase.StockInUseCase,
	stockOutUC *usecase.StockOutUseCase,
	settingsUC *usecase.SettingsUseCase,
	excel ExcelExporter,
	pdf LowStockPDFGenerator,
) *UseCase {
	return &UseCase{
		inventoryUC: inventoryUC,
		stockInUC:   stockInUC,
		stockOutUC:  stockOutUC,
		settingsUC:  settingsUC,
		excel:       excel,
		pdf:         pdf,
	}
}

// ExportInventoryExcel exporta la vista de inventario vigente a xlsx.
func (uc *UseCase) ExportInventoryExcel(ctx context.Context, search, category string) ([]byte, string, error) {
	view, err := uc.inventoryUC.GetSnapshots(ctx, search, category)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.excel.InventoryWorkbook(view.Snapshots, view.Summary)
	if err != nil {
		return nil, "", fmt.Errorf("exportar inventario: %w", err)
	}
	return data, exportName("inventario", "xlsx"), nil
}

// ExportStockInExcel exporta el libro de entradas (con los filtros dados) a xlsx.
func (uc *UseCase) ExportStockInExcel(ctx context.Context, filter repository.StockInFilter) ([]byte, string, error) {
	filter.PageSize = exportPageSize
	var rows []dto.StockInResponse
	for page := 1; ; page++ {
		filter.Page = page
		resp, err := uc.stockInUC.List(ctx, filter)
		if err != nil {
			return nil, "", err
		}
		rows = append(rows, resp.Rows...)
		// La exportación lleva el libro completo, no una sola página.
		if len(rows) >= resp.Meta.Total || len(resp.Rows) == 0 {
			break
		}
	}
	data, err := uc.excel.StockInWorkbook(rows)
	if err != nil {
		return nil, "", fmt.Errorf("exportar entradas: %w", err)
	}
	return data, exportName("entradas", "xlsx"), nil
}

// ExportStockOutExcel exporta el libro de salidas (con los filtros dados) a xlsx.
func (uc *UseCase) ExportStockOutExcel(ctx context.Context, filter repository.StockOutFilter) ([]byte, string, error) {
	filter.PageSize = exportPageSize
	var rows []dto.StockOutResponse
	for page := 1; ; page++ {
		filter.Page = page
		resp, err := uc.stockOutUC.List(ctx, filter)
		if err != nil {
			return nil, "", err
		}
		rows = append(rows, resp.Rows...)
		if len(rows) >= resp.Meta.Total || len(resp.Rows) == 0 {
			break
		}
	}
	data, err := uc.excel.StockOutWorkbook(rows)
	if err != nil {
		return nil, "", fmt.Errorf("exportar salidas: %w", err)
	}
	return data, exportName("salidas", "xlsx"), nil
}

// ExportLowStockExcel exporta las alertas de stock bajo vigentes a xlsx.
func (uc *UseCase) ExportLowStockExcel(ctx context.Context) ([]byte, string, error) {
	alerts, err := uc.inventoryUC.GetLowStockAlerts(ctx)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.excel.LowStockWorkbook(alerts)
	if err != nil {
		return nil, "", fmt.Errorf("exportar alertas: %w", err)
	}
	return data, exportName("alertas_stock_bajo", "xlsx"), nil
}

// ExportLowStockPDF genera el reporte PDF de alertas de stock bajo.
func (uc *UseCase) ExportLowStockPDF(ctx context.Context) ([]byte, string, error) {
	alerts, err := uc.inventoryUC.GetLowStockAlerts(ctx)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.Generate(alerts, time.Now())
	if err != nil {
		return nil, "", fmt.Errorf("generar pdf de alertas: %w", err)
	}
	return data, exportName("alertas_stock_bajo", "pdf"), nil
}

// appDataDump estructura del volcado JSON de datos de aplicación.
type appDataDump struct {
	ExportedAt time.Time          `json:"exported_at"`
	Entries    []dto.AppDataEntry `json:"entries"`
}

// ExportAppDataJSON vuelca todas las claves de app_data en un JSON legible.
func (uc *UseCase) ExportAppDataJSON(ctx context.Context) ([]byte, string, error) {
	entries, err := uc.settingsUC.List(ctx)
	if err != nil {
		return nil, "", err
	}
	data, err := json.MarshalIndent(appDataDump{ExportedAt: time.Now(), Entries: entries}, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("serializar datos de aplicación: %w", err)
	}
	return data, exportName("app_data", "json"), nil
}

func exportName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
}
