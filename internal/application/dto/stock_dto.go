package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockInRequest body para POST /api/stock-in.
// TotalAmount es opcional: por defecto Quantity * UnitPrice.
type CreateStockInRequest struct {
	PartModelID string           `json:"part_model_id"`
	OrderID     string           `json:"order_id,omitempty"`
	Quantity    int64            `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	StockInDate string           `json:"stock_in_date"` // YYYY-MM-DD
	Operator    string           `json:"operator,omitempty"`
	Notes       string           `json:"notes"`
}

// CreateStockOutRequest body para POST /api/stock-out.
type CreateStockOutRequest struct {
	PartModelID  string           `json:"part_model_id"`
	Quantity     int64            `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unit_price"`
	TotalAmount  *decimal.Decimal `json:"total_amount,omitempty"`
	Recipient    string           `json:"recipient"`
	Department   string           `json:"department"`
	StockOutDate string           `json:"stock_out_date"` // YYYY-MM-DD
	Operator     string           `json:"operator,omitempty"`
	Notes        string           `json:"notes"`
}

// StockInResponse fila de entrada en respuestas (con etiquetas de modelo y orden).
type StockInResponse struct {
	ID          int64           `json:"id"`
	PartModelID string          `json:"part_model_id"`
	ModelCode   string          `json:"model_code"`
	ModelName   string          `json:"model_name"`
	Unit        string          `json:"unit"`
	OrderID     string          `json:"order_id,omitempty"`
	OrderNumber string          `json:"order_number,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	StockInDate time.Time       `json:"stock_in_date"`
	Operator    string          `json:"operator"`
	Notes       string          `json:"notes"`
}

// StockOutResponse fila de salida en respuestas.
type StockOutResponse struct {
	ID           int64           `json:"id"`
	PartModelID  string          `json:"part_model_id"`
	ModelCode    string          `json:"model_code"`
	ModelName    string          `json:"model_name"`
	Unit         string          `json:"unit"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Recipient    string          `json:"recipient"`
	Department   string          `json:"department"`
	StockOutDate time.Time       `json:"stock_out_date"`
	Operator     string          `json:"operator"`
	Notes        string          `json:"notes"`
}

// StockInListResponse página de entradas.
type StockInListResponse struct {
	Rows []StockInResponse `json:"rows"`
	Meta PageResponse      `json:"meta"`
}

// StockOutListResponse página de salidas.
type StockOutListResponse struct {
	Rows []StockOutResponse `json:"rows"`
	Meta PageResponse       `json:"meta"`
}
