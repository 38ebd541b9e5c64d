package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventorySnapshot es la vista derivada del stock de un modelo: se recalcula
// en cada lectura a partir del libro de entradas y salidas, nunca se persiste.
type InventorySnapshot struct {
	PartModelID   string
	ModelCode     string
	ModelName     string
	Specification string
	Category      string
	Unit          string
	MinThreshold  int64

	CurrentQuantity  int64 // max(0, entradas - salidas)
	TotalInQuantity  int64
	TotalOutQuantity int64
	AverageCost      decimal.Decimal // Σ monto entradas / Σ cantidad entradas; 0 sin entradas
	TotalValue       decimal.Decimal // CurrentQuantity * AverageCost
	LastUpdated      time.Time       // fecha máxima entre entradas y salidas; cero sin filas

	// OverIssued marca que el saldo crudo era negativo antes del piso en cero
	// (se entregó más de lo recibido). No es un error: queda para revisión.
	OverIssued bool
}
