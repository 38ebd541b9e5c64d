package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatisticsDTO tarjetas del tablero.
type StatisticsDTO struct {
	TotalParts            int64 `json:"total_parts"`
	TotalOrders           int64 `json:"total_orders"`
	TotalStockInThisMonth int64 `json:"total_stock_in_this_month"`
	TotalStockOutMonth    int64 `json:"total_stock_out_this_month"`
	LowStockItems         int   `json:"low_stock_items"`
}

// ActivityEntryDTO evento del libro en el widget de actividad reciente.
type ActivityEntryDTO struct {
	Type     string    `json:"type"` // "in" | "out"
	RecordID int64     `json:"record_id"`
	PartName string    `json:"part_name"`
	Quantity int64     `json:"quantity"`
	Date     time.Time `json:"date"`
	Operator string    `json:"operator"`
}

// DepartmentStatDTO salidas agrupadas por departamento en un rango de fechas.
type DepartmentStatDTO struct {
	Department string          `json:"department"`
	Quantity   int64           `json:"quantity"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// MonthlyTrendDTO totales de entrada/salida de un mes calendario.
type MonthlyTrendDTO struct {
	Month       string `json:"month"` // YYYY-MM
	InQuantity  int64  `json:"in_quantity"`
	OutQuantity int64  `json:"out_quantity"`
}
