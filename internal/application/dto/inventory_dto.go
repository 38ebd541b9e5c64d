package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventorySnapshotDTO foto derivada del stock de un modelo.
type InventorySnapshotDTO struct {
	PartModelID     string          `json:"part_model_id"`
	ModelCode       string          `json:"model_code"`
	ModelName       string          `json:"model_name"`
	Specification   string          `json:"specification"`
	Category        string          `json:"category"`
	Unit            string          `json:"unit"`
	MinThreshold    int64           `json:"min_threshold"`
	CurrentQuantity int64           `json:"current_quantity"`
	AverageCost     decimal.Decimal `json:"average_cost"`
	TotalValue      decimal.Decimal `json:"total_value"`
	LastUpdated     *time.Time      `json:"last_updated,omitempty"` // nil sin movimientos
	Level           string          `json:"level"`                  // critical | low | normal | abundant | not_monitored
	OverIssued      bool            `json:"over_issued,omitempty"`
}

// InventorySummaryDTO totales de la vista de inventario.
type InventorySummaryDTO struct {
	TotalItems    int             `json:"total_items"`
	LowStockItems int             `json:"low_stock_items"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// InventoryListResponse respuesta de GET /api/inventory.
type InventoryListResponse struct {
	Snapshots []InventorySnapshotDTO `json:"snapshots"`
	Summary   InventorySummaryDTO    `json:"summary"`
}

// LowStockAlertDTO modelo monitoreado por debajo de su umbral (current < min).
type LowStockAlertDTO struct {
	PartModelID     string `json:"part_model_id"`
	ModelCode       string `json:"model_code"`
	ModelName       string `json:"model_name"`
	Unit            string `json:"unit"`
	CurrentQuantity int64  `json:"current_quantity"`
	MinThreshold    int64  `json:"min_threshold"`
	Deficit         int64  `json:"deficit"` // MinThreshold - CurrentQuantity
	Level           string `json:"level"`
}
