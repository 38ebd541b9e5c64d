// Package inventory contiene los servicios de dominio del inventario derivado:
// agregación del libro de entradas/salidas en una foto de stock, clasificación
// de nivel contra el umbral mínimo y fusión de actividad reciente.
//
// Todas las funciones son puras: operan sobre filas ya consultadas y no tocan
// almacenamiento. Cada lectura del sistema recalcula desde el libro.
package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
)

// Level clasifica el stock actual de un modelo monitoreado frente a su umbral.
type Level string

const (
	LevelNotMonitored Level = "not_monitored" // MinThreshold <= 0: fuera de la clasificación
	LevelCritical     Level = "critical"      // ratio < 0.5
	LevelLow          Level = "low"           // 0.5 <= ratio < 1.0
	LevelNormal       Level = "normal"        // 1.0 <= ratio <= 2.0
	LevelAbundant     Level = "abundant"      // ratio > 2.0
)

// Aggregate deriva la foto de inventario de un modelo a partir de todas sus
// filas de entrada y salida. Nunca falla: sin filas devuelve la foto en cero.
//
//	inQty      = Σ cantidad entradas
//	inAmount   = Σ monto entradas (cantidad*precio si la fila no trae monto)
//	current    = max(0, inQty - Σ cantidad salidas)
//	avgCost    = inAmount / inQty  (0 sin entradas; las salidas no afectan el costo)
//	totalValue = current * avgCost
func Aggregate(part *entity.PartModel, ins []*entity.StockIn, outs []*entity.StockOut) entity.InventorySnapshot {
	snap := entity.InventorySnapshot{
		PartModelID:   part.ID,
		ModelCode:     part.ModelCode,
		ModelName:     part.ModelName,
		Specification: part.Specification,
		Category:      part.Category,
		Unit:          part.Unit,
		MinThreshold:  part.MinThreshold,
		AverageCost:   decimal.Zero,
		TotalValue:    decimal.Zero,
	}

	var inQty, outQty int64
	inAmount := decimal.Zero
	var last time.Time

	for _, row := range ins {
		inQty += row.Quantity
		amount := row.TotalAmount
		if amount.IsZero() {
			amount = decimal.NewFromInt(row.Quantity).Mul(row.UnitPrice)
		}
		inAmount = inAmount.Add(amount)
		if row.StockInDate.After(last) {
			last = row.StockInDate
		}
	}
	for _, row := range outs {
		outQty += row.Quantity
		if row.StockOutDate.After(last) {
			last = row.StockOutDate
		}
	}

	snap.TotalInQuantity = inQty
	snap.TotalOutQuantity = outQty

	current := inQty - outQty
	if current < 0 {
		// Sobre-entrega: el saldo se fija en cero pero queda marcado para revisión.
		snap.OverIssued = true
		current = 0
	}
	snap.CurrentQuantity = current

	if inQty > 0 {
		snap.AverageCost = inAmount.Div(decimal.NewFromInt(inQty))
	}
	snap.TotalValue = snap.AverageCost.Mul(decimal.NewFromInt(current))
	snap.LastUpdated = last

	return snap
}

// ClassifyLevel devuelve el nivel de stock para colorear la vista de inventario.
// Los modelos sin umbral (MinThreshold <= 0) no participan.
func ClassifyLevel(snap entity.InventorySnapshot) Level {
	if snap.MinThreshold <= 0 {
		return LevelNotMonitored
	}
	threshold := snap.MinThreshold
	if threshold < 1 {
		threshold = 1
	}
	ratio := decimal.NewFromInt(snap.CurrentQuantity).Div(decimal.NewFromInt(threshold))

	half := decimal.NewFromFloat(0.5)
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)
	switch {
	case ratio.LessThan(half):
		return LevelCritical
	case ratio.LessThan(one):
		return LevelLow
	case ratio.GreaterThan(two):
		return LevelAbundant
	default:
		return LevelNormal
	}
}

// BelowThreshold decide si el modelo entra en la lista de alertas de stock bajo.
// Es un cruce estricto (current < umbral) sobre modelos monitoreados; no usa
// los niveles de ClassifyLevel, que sirven a otro propósito (coloreado de UI).
func BelowThreshold(snap entity.InventorySnapshot) bool {
	return snap.MinThreshold > 0 && snap.CurrentQuantity < snap.MinThreshold
}

// MonthlyTotals suma las cantidades de entrada y salida cuyo evento cae en el
// mes calendario de ref.
func MonthlyTotals(ins []*entity.StockIn, outs []*entity.StockOut, ref time.Time) (inQty, outQty int64) {
	year, month := ref.Year(), ref.Month()
	for _, row := range ins {
		if row.StockInDate.Year() == year && row.StockInDate.Month() == month {
			inQty += row.Quantity
		}
	}
	for _, row := range outs {
		if row.StockOutDate.Year() == year && row.StockOutDate.Month() == month {
			outQty += row.Quantity
		}
	}
	return inQty, outQty
}

// Tipos de entrada en la actividad reciente.
const (
	ActivityIn  = "in"
	ActivityOut = "out"
)

// ActivityEntry es un evento del libro normalizado para el widget de actividad.
type ActivityEntry struct {
	Type     string // "in" | "out"
	RecordID int64  // id de la fila de origen
	PartName string
	Quantity int64
	Date     time.Time
	Operator string
}

// MergeRecentActivity fusiona entradas y salidas en una sola secuencia ordenada
// por fecha descendente, desempatando por id de registro descendente (estable y
// determinista), y la trunca a limit.
func MergeRecentActivity(ins []*entity.StockIn, outs []*entity.StockOut, limit int) []ActivityEntry {
	entries := make([]ActivityEntry, 0, len(ins)+len(outs))
	for _, row := range ins {
		entries = append(entries, ActivityEntry{
			Type:     ActivityIn,
			RecordID: row.ID,
			PartName: row.ModelName,
			Quantity: row.Quantity,
			Date:     row.StockInDate,
			Operator: row.Operator,
		})
	}
	for _, row := range outs {
		entries = append(entries, ActivityEntry{
			Type:     ActivityOut,
			RecordID: row.ID,
			PartName: row.ModelName,
			Quantity: row.Quantity,
			Date:     row.StockOutDate,
			Operator: row.Operator,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].RecordID > entries[j].RecordID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
