package report

import (
	"time"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
)

// ExcelExporter arma libros xlsx a partir de las vistas ya consultadas.
type ExcelExporter interface {
	InventoryWorkbook(snapshots []dto.InventorySnapshotDTO, summary dto.InventorySummaryDTO) ([]byte, error)
	StockInWorkbook(rows []dto.StockInResponse) ([]byte, error)
	StockOutWorkbook(rows []dto.StockOutResponse) ([]byte, error)
	LowStockWorkbook(alerts []dto.LowStockAlertDTO) ([]byte, error)
}

// LowStockPDFGenerator arma el reporte PDF de alertas de stock bajo.
type LowStockPDFGenerator interface {
	Generate(alerts []dto.LowStockAlertDTO, generatedAt time.Time) ([]byte, error)
}
