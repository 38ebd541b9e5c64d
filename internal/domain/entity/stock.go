package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockIn es un evento de entrada al almacén (recepción).
// El ID es una secuencia entera: las filas del libro son append-mostly y el
// orden de inserción sirve de desempate determinista en la actividad reciente.
type StockIn struct {
	ID          int64
	PartModelID string
	OrderID     string // opcional, vacío si la entrada no viene de una orden
	Quantity    int64  // > 0
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal // por defecto Quantity * UnitPrice
	StockInDate time.Time
	Operator    string
	Notes       string
	CreatedAt   time.Time

	// Campos de presentación resueltos por JOIN en lecturas.
	ModelCode   string
	ModelName   string
	Unit        string
	OrderNumber string
}

// StockOut es un evento de salida del almacén (entrega).
type StockOut struct {
	ID           int64
	PartModelID  string
	Quantity     int64 // > 0
	UnitPrice    decimal.Decimal
	TotalAmount  decimal.Decimal
	Recipient    string
	Department   string
	StockOutDate time.Time
	Operator     string
	Notes        string
	CreatedAt    time.Time

	// Campos de presentación resueltos por JOIN en lecturas.
	ModelCode string
	ModelName string
	Unit      string
}
