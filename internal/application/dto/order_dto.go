package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de orden en requests. TotalPrice se calcula en servidor.
type OrderItemRequest struct {
	PartModelID string          `json:"part_model_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest body para POST /api/orders. Las líneas son opcionales;
// el total de la orden se deriva siempre de ellas.
type CreateOrderRequest struct {
	OrderNumber string             `json:"order_number"`
	OrderDate   string             `json:"order_date"` // YYYY-MM-DD
	Supplier    string             `json:"supplier"`
	Status      string             `json:"status"` // vacío = pending
	Notes       string             `json:"notes"`
	Items       []OrderItemRequest `json:"items"`
}

// UpdateOrderRequest body para PUT /api/orders/:id (solo cabecera).
type UpdateOrderRequest struct {
	OrderDate string `json:"order_date"`
	Supplier  string `json:"supplier"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// OrderItemResponse línea de orden en respuestas.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	PartModelID string          `json:"part_model_id"`
	ModelCode   string          `json:"model_code"`
	ModelName   string          `json:"model_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderResponse representación de una orden en respuestas.
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderNumber string              `json:"order_number"`
	OrderDate   time.Time           `json:"order_date"`
	Supplier    string              `json:"supplier"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Notes       string              `json:"notes"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Items       []OrderItemResponse `json:"items,omitempty"`
}

// OrderListResponse página de órdenes.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Meta   PageResponse    `json:"meta"`
}
