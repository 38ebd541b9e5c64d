package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func datum(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func part(code string, threshold int64) *entity.PartModel {
	return &entity.PartModel{
		ID:           "pm-" + code,
		ModelCode:    code,
		ModelName:    "Modelo " + code,
		Unit:         "unidad",
		MinThreshold: threshold,
	}
}

func stockIn(id, qty int64, unitPrice float64, date string) *entity.StockIn {
	price := decimal.NewFromFloat(unitPrice)
	return &entity.StockIn{
		ID:          id,
		Quantity:    qty,
		UnitPrice:   price,
		TotalAmount: decimal.NewFromInt(qty).Mul(price),
		StockInDate: datum(date),
	}
}

func stockOut(id, qty int64, date string) *entity.StockOut {
	return &entity.StockOut{
		ID:           id,
		Quantity:     qty,
		StockOutDate: datum(date),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Aggregate
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: CPU-001, umbral 5, 10 unidades recibidas a $2500,
// 7 entregadas. current=3, avgCost=2500, totalValue=7500 y entra en alertas.
func TestAggregate_EscenarioCPU001(t *testing.T) {
	p := part("CPU-001", 5)
	ins := []*entity.StockIn{
		stockIn(1, 4, 2500, "2024-01-10"),
		stockIn(2, 6, 2500, "2024-01-12"),
	}
	outs := []*entity.StockOut{
		stockOut(1, 3, "2024-01-14"),
		stockOut(2, 4, "2024-01-15"),
	}

	snap := inventory.Aggregate(p, ins, outs)

	assert.Equal(t, int64(3), snap.CurrentQuantity)
	assert.Equal(t, int64(10), snap.TotalInQuantity)
	assert.Equal(t, int64(7), snap.TotalOutQuantity)
	assert.True(t, snap.AverageCost.Equal(decimal.NewFromInt(2500)),
		"avgCost = 25000/10 = 2500, obtuvo %s", snap.AverageCost)
	assert.True(t, snap.TotalValue.Equal(decimal.NewFromInt(7500)),
		"totalValue = 3*2500 = 7500, obtuvo %s", snap.TotalValue)
	assert.Equal(t, datum("2024-01-15"), snap.LastUpdated)
	assert.False(t, snap.OverIssued)
	assert.True(t, inventory.BelowThreshold(snap), "3 < 5 debe entrar en alertas")
}

// Sin entradas y con salidas: el saldo se fija en cero, costo y valor en cero,
// y la foto queda marcada como sobre-entregada.
func TestAggregate_SoloSalidas(t *testing.T) {
	p := part("SEAL-25", 0)
	outs := []*entity.StockOut{stockOut(1, 5, "2024-02-01")}

	snap := inventory.Aggregate(p, nil, outs)

	assert.Equal(t, int64(0), snap.CurrentQuantity)
	assert.True(t, snap.AverageCost.IsZero())
	assert.True(t, snap.TotalValue.IsZero())
	assert.True(t, snap.OverIssued, "saldo crudo -5 debe marcar OverIssued")
}

// Sin filas de ningún tipo: foto en cero, sin error, LastUpdated cero.
func TestAggregate_SinFilas(t *testing.T) {
	snap := inventory.Aggregate(part("BOLT-M8", 10), nil, nil)

	assert.Equal(t, int64(0), snap.CurrentQuantity)
	assert.True(t, snap.AverageCost.IsZero())
	assert.True(t, snap.TotalValue.IsZero())
	assert.True(t, snap.LastUpdated.IsZero())
	assert.False(t, snap.OverIssued)
}

// La cantidad nunca es negativa aunque las salidas superen a las entradas.
func TestAggregate_PisoEnCero(t *testing.T) {
	p := part("WASH-8", 0)
	ins := []*entity.StockIn{stockIn(1, 3, 1.5, "2024-01-01")}
	outs := []*entity.StockOut{stockOut(1, 10, "2024-01-05")}

	snap := inventory.Aggregate(p, ins, outs)

	assert.Equal(t, int64(0), snap.CurrentQuantity)
	assert.True(t, snap.OverIssued)
	// El costo promedio se calcula solo con entradas: sigue siendo 1.5.
	assert.True(t, snap.AverageCost.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, snap.TotalValue.IsZero(), "0 unidades * costo = 0")
}

// Fila de entrada sin monto total: se usa cantidad*precio unitario.
func TestAggregate_MontoAusenteUsaPrecioUnitario(t *testing.T) {
	p := part("CBL-UTP", 0)
	row := &entity.StockIn{
		ID:          1,
		Quantity:    4,
		UnitPrice:   decimal.NewFromInt(25),
		TotalAmount: decimal.Zero, // ausente
		StockInDate: datum("2024-03-01"),
	}

	snap := inventory.Aggregate(p, []*entity.StockIn{row}, nil)

	assert.True(t, snap.AverageCost.Equal(decimal.NewFromInt(25)))
	assert.True(t, snap.TotalValue.Equal(decimal.NewFromInt(100)))
}

// TotalValue == CurrentQuantity * AverageCost exactamente, y la función es
// idempotente: dos llamadas con el mismo input producen el mismo output.
func TestAggregate_InvarianteValorEIdempotencia(t *testing.T) {
	p := part("BEAR-6205", 20)
	ins := []*entity.StockIn{
		stockIn(1, 7, 15.5, "2024-01-02"),
		stockIn(2, 13, 14.2, "2024-01-20"),
		stockIn(3, 5, 16.0, "2024-02-03"),
	}
	outs := []*entity.StockOut{
		stockOut(1, 9, "2024-02-10"),
		stockOut(2, 4, "2024-02-11"),
	}

	snap1 := inventory.Aggregate(p, ins, outs)
	snap2 := inventory.Aggregate(p, ins, outs)

	require.Equal(t, snap1, snap2, "mismo input debe producir la misma foto")
	expected := snap1.AverageCost.Mul(decimal.NewFromInt(snap1.CurrentQuantity))
	assert.True(t, snap1.TotalValue.Equal(expected),
		"TotalValue debe ser exactamente current*avgCost")
}

// ──────────────────────────────────────────────────────────────────────────────
// BelowThreshold / ClassifyLevel
// ──────────────────────────────────────────────────────────────────────────────

// Umbral 0: excluido de alertas sin importar la cantidad.
func TestBelowThreshold_SinUmbralNoParticipa(t *testing.T) {
	snap := inventory.Aggregate(part("NOMON-1", 0), nil, nil)
	assert.False(t, inventory.BelowThreshold(snap))
	assert.Equal(t, inventory.LevelNotMonitored, inventory.ClassifyLevel(snap))
}

// Frontera estricta: current == umbral queda fuera; current == umbral-1 entra.
func TestBelowThreshold_FronteraEstricta(t *testing.T) {
	exact := inventory.Aggregate(part("EQ-1", 5),
		[]*entity.StockIn{stockIn(1, 5, 1, "2024-01-01")}, nil)
	assert.False(t, inventory.BelowThreshold(exact), "5 < 5 es falso: fuera de alertas")

	below := inventory.Aggregate(part("EQ-2", 5),
		[]*entity.StockIn{stockIn(1, 4, 1, "2024-01-01")}, nil)
	assert.True(t, inventory.BelowThreshold(below), "4 < 5: entra en alertas")
}

func TestClassifyLevel_Niveles(t *testing.T) {
	cases := []struct {
		name      string
		current   int64
		threshold int64
		want      inventory.Level
	}{
		{"critico bajo la mitad", 4, 10, inventory.LevelCritical},
		{"bajo entre 0.5 y 1", 7, 10, inventory.LevelLow},
		{"normal en el umbral", 10, 10, inventory.LevelNormal},
		{"normal hasta el doble", 20, 10, inventory.LevelNormal},
		{"abundante sobre el doble", 21, 10, inventory.LevelAbundant},
		{"critico en cero", 0, 10, inventory.LevelCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := entity.InventorySnapshot{CurrentQuantity: tc.current, MinThreshold: tc.threshold}
			assert.Equal(t, tc.want, inventory.ClassifyLevel(snap))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthlyTotals / MergeRecentActivity
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyTotals_SoloMesDeReferencia(t *testing.T) {
	ins := []*entity.StockIn{
		stockIn(1, 5, 1, "2024-01-15"),
		stockIn(2, 3, 1, "2024-01-31"),
		stockIn(3, 99, 1, "2023-12-31"), // fuera del mes
		stockIn(4, 50, 1, "2024-02-01"), // fuera del mes
	}
	outs := []*entity.StockOut{
		stockOut(1, 2, "2024-01-05"),
		stockOut(2, 40, "2023-01-20"), // mismo mes, otro año
	}

	inQty, outQty := inventory.MonthlyTotals(ins, outs, datum("2024-01-10"))
	assert.Equal(t, int64(8), inQty)
	assert.Equal(t, int64(2), outQty)
}

// Empate de fecha: entrada id=10 y salida id=7 el mismo día; primero id=10
// (desempate por id descendente después de fecha descendente).
func TestMergeRecentActivity_DesempatePorID(t *testing.T) {
	ins := []*entity.StockIn{
		{ID: 10, ModelName: "Modelo A", Quantity: 5, StockInDate: datum("2024-01-16"), Operator: "zhang"},
	}
	outs := []*entity.StockOut{
		{ID: 7, ModelName: "Modelo B", Quantity: 2, StockOutDate: datum("2024-01-16"), Operator: "li"},
	}

	entries := inventory.MergeRecentActivity(ins, outs, 10)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(10), entries[0].RecordID)
	assert.Equal(t, inventory.ActivityIn, entries[0].Type)
	assert.Equal(t, int64(7), entries[1].RecordID)
	assert.Equal(t, inventory.ActivityOut, entries[1].Type)
}

func TestMergeRecentActivity_OrdenYTruncado(t *testing.T) {
	ins := []*entity.StockIn{
		{ID: 1, ModelName: "A", Quantity: 1, StockInDate: datum("2024-01-10")},
		{ID: 2, ModelName: "B", Quantity: 1, StockInDate: datum("2024-01-14")},
	}
	outs := []*entity.StockOut{
		{ID: 3, ModelName: "C", Quantity: 1, StockOutDate: datum("2024-01-12")},
		{ID: 4, ModelName: "D", Quantity: 1, StockOutDate: datum("2024-01-16")},
	}

	entries := inventory.MergeRecentActivity(ins, outs, 3)
	require.Len(t, entries, 3, "debe truncar al límite")
	assert.Equal(t, "D", entries[0].PartName)
	assert.Equal(t, "B", entries[1].PartName)
	assert.Equal(t, "C", entries[2].PartName)
}

func TestMergeRecentActivity_Vacio(t *testing.T) {
	entries := inventory.MergeRecentActivity(nil, nil, 10)
	assert.Empty(t, entries)
}
