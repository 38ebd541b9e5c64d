package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus valida el enum de estado.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order es una orden de compra a proveedor.
// TotalAmount es derivado: siempre igual a la suma de TotalPrice de sus ítems,
// recalculado en la misma transacción que muta los ítems.
type Order struct {
	ID          string
	OrderNumber string // única
	OrderDate   time.Time
	Supplier    string
	Status      string
	TotalAmount decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []*OrderItem
}

// OrderItem es una línea de una orden. Referencia al modelo por ID opaco,
// nunca por nombre; el nombre se resuelve con JOIN al leer.
type OrderItem struct {
	ID          string
	OrderID     string
	PartModelID string
	Quantity    int64 // > 0
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal // Quantity * UnitPrice

	// Campos de presentación resueltos por JOIN en lecturas.
	ModelCode string
	ModelName string
}
