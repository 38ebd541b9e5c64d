package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

type fakePartRepo struct{ parts []*entity.PartModel }

func (f *fakePartRepo) Create(*entity.PartModel) error               { return nil }
func (f *fakePartRepo) GetByID(string) (*entity.PartModel, error)    { return nil, nil }
func (f *fakePartRepo) GetByCode(string) (*entity.PartModel, error)  { return nil, nil }
func (f *fakePartRepo) Update(*entity.PartModel) error               { return nil }
func (f *fakePartRepo) Delete(string) error                          { return nil }
func (f *fakePartRepo) List(context.Context, string, string) ([]*entity.PartModel, error) {
	return f.parts, nil
}
func (f *fakePartRepo) CountReferences(context.Context, string) (int64, error) { return 0, nil }
func (f *fakePartRepo) Count(context.Context) (int64, error) {
	return int64(len(f.parts)), nil
}

type fakeOrderRepo struct{ total int64 }

func (f *fakeOrderRepo) Create(*entity.Order) error                { return nil }
func (f *fakeOrderRepo) GetByID(string) (*entity.Order, error)     { return nil, nil }
func (f *fakeOrderRepo) GetByNumber(string) (*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) Update(*entity.Order) error                { return nil }
func (f *fakeOrderRepo) Delete(string) error                       { return nil }
func (f *fakeOrderRepo) List(context.Context, repository.OrderFilter) (int, []*entity.Order, error) {
	return 0, nil, nil
}
func (f *fakeOrderRepo) Count(context.Context) (int64, error)     { return f.total, nil }
func (f *fakeOrderRepo) CreateItem(*entity.OrderItem) error       { return nil }
func (f *fakeOrderRepo) GetItem(string) (*entity.OrderItem, error) {
	return nil, nil
}
func (f *fakeOrderRepo) UpdateItem(*entity.OrderItem) error { return nil }
func (f *fakeOrderRepo) DeleteItem(string) error            { return nil }
func (f *fakeOrderRepo) DeleteItemsByOrder(string) error    { return nil }
func (f *fakeOrderRepo) SumItemsTotal(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (f *fakeOrderRepo) UpdateTotalAmount(string, decimal.Decimal) error { return nil }

type fakeStockInRepo struct{ rows []*entity.StockIn }

func (f *fakeStockInRepo) Create(*entity.StockIn) error           { return nil }
func (f *fakeStockInRepo) GetByID(int64) (*entity.StockIn, error) { return nil, nil }
func (f *fakeStockInRepo) Update(*entity.StockIn) error           { return nil }
func (f *fakeStockInRepo) Delete(int64) error                     { return nil }
func (f *fakeStockInRepo) List(context.Context, repository.StockInFilter) (int, []*entity.StockIn, error) {
	return len(f.rows), f.rows, nil
}
func (f *fakeStockInRepo) ListAll(context.Context) ([]*entity.StockIn, error) { return f.rows, nil }

type fakeStockOutRepo struct{ rows []*entity.StockOut }

func (f *fakeStockOutRepo) Create(*entity.StockOut) error           { return nil }
func (f *fakeStockOutRepo) GetByID(int64) (*entity.StockOut, error) { return nil, nil }
func (f *fakeStockOutRepo) Update(*entity.StockOut) error           { return nil }
func (f *fakeStockOutRepo) Delete(int64) error                      { return nil }
func (f *fakeStockOutRepo) List(context.Context, repository.StockOutFilter) (int, []*entity.StockOut, error) {
	return len(f.rows), f.rows, nil
}
func (f *fakeStockOutRepo) ListAll(context.Context) ([]*entity.StockOut, error) { return f.rows, nil }

func fecha(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestGetStatistics_TotalesDelMesYStockBajo(t *testing.T) {
	now := time.Now()
	esteMes := time.Date(now.Year(), now.Month(), 10, 0, 0, 0, 0, time.UTC)
	mesPasado := esteMes.AddDate(0, -1, 0)

	parts := []*entity.PartModel{
		{ID: "pm-1", ModelCode: "CPU-001", ModelName: "Procesador X1", MinThreshold: 5},
		{ID: "pm-2", ModelCode: "RAM-001", ModelName: "Memoria 16G"},
	}
	ins := []*entity.StockIn{
		{ID: 1, PartModelID: "pm-1", Quantity: 3, UnitPrice: decimal.NewFromInt(100), StockInDate: esteMes},
		{ID: 2, PartModelID: "pm-1", Quantity: 8, UnitPrice: decimal.NewFromInt(100), StockInDate: mesPasado},
	}
	outs := []*entity.StockOut{
		{ID: 1, PartModelID: "pm-1", Quantity: 7, UnitPrice: decimal.NewFromInt(100), StockOutDate: esteMes},
	}

	uc := NewDashboardUseCase(&fakePartRepo{parts: parts}, &fakeOrderRepo{total: 4}, &fakeStockInRepo{rows: ins}, &fakeStockOutRepo{rows: outs})
	stats, err := uc.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalParts)
	assert.Equal(t, int64(4), stats.TotalOrders)
	// Solo las filas de este mes cuentan para las tarjetas mensuales.
	assert.Equal(t, int64(3), stats.TotalStockInThisMonth)
	assert.Equal(t, int64(7), stats.TotalStockOutMonth)
	// pm-1: 11 entradas - 7 salidas = 4 < umbral 5. pm-2 no participa.
	assert.Equal(t, 1, stats.LowStockItems)
}

func TestGetRecentActivity_OrdenYLimite(t *testing.T) {
	ins := []*entity.StockIn{
		{ID: 10, PartModelID: "pm-1", ModelName: "Procesador X1", Quantity: 5, StockInDate: fecha("2024-01-16"), Operator: "ana"},
		{ID: 3, PartModelID: "pm-1", ModelName: "Procesador X1", Quantity: 2, StockInDate: fecha("2024-01-14"), Operator: "ana"},
	}
	outs := []*entity.StockOut{
		{ID: 7, PartModelID: "pm-1", ModelName: "Procesador X1", Quantity: 1, StockOutDate: fecha("2024-01-16"), Operator: "luis"},
	}

	uc := NewDashboardUseCase(&fakePartRepo{}, &fakeOrderRepo{}, &fakeStockInRepo{rows: ins}, &fakeStockOutRepo{rows: outs})
	activity, err := uc.GetRecentActivity(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, activity, 2)

	// Misma fecha: gana el id mayor (entrada 10 antes que salida 7).
	assert.Equal(t, "in", activity[0].Type)
	assert.Equal(t, int64(10), activity[0].RecordID)
	assert.Equal(t, "out", activity[1].Type)
	assert.Equal(t, int64(7), activity[1].RecordID)
}

func TestGetDepartmentStats_AgrupaYFiltraPorRango(t *testing.T) {
	outs := []*entity.StockOut{
		{ID: 1, PartModelID: "pm-1", Quantity: 5, UnitPrice: decimal.NewFromInt(10), TotalAmount: decimal.NewFromInt(50), Department: "IT", StockOutDate: fecha("2024-01-10")},
		{ID: 2, PartModelID: "pm-1", Quantity: 3, UnitPrice: decimal.NewFromInt(10), TotalAmount: decimal.NewFromInt(30), Department: "IT", StockOutDate: fecha("2024-01-20")},
		{ID: 3, PartModelID: "pm-1", Quantity: 9, UnitPrice: decimal.NewFromInt(10), TotalAmount: decimal.NewFromInt(90), Department: "Ventas", StockOutDate: fecha("2023-12-01")},
	}

	from := fecha("2024-01-01")
	to := fecha("2024-01-31")
	uc := NewDashboardUseCase(&fakePartRepo{}, &fakeOrderRepo{}, &fakeStockInRepo{}, &fakeStockOutRepo{rows: outs})
	stats, err := uc.GetDepartmentStats(context.Background(), &from, &to)
	require.NoError(t, err)
	require.Len(t, stats, 1, "la salida de diciembre queda fuera del rango")

	assert.Equal(t, "IT", stats[0].Department)
	assert.Equal(t, int64(8), stats[0].Quantity)
	assert.True(t, stats[0].TotalValue.Equal(decimal.NewFromInt(80)))
}

func TestGetMonthlyTrend_MesesEnOrdenYEtiquetas(t *testing.T) {
	now := time.Now()
	esteMes := time.Date(now.Year(), now.Month(), 5, 0, 0, 0, 0, time.UTC)

	ins := []*entity.StockIn{
		{ID: 1, PartModelID: "pm-1", Quantity: 4, UnitPrice: decimal.NewFromInt(10), StockInDate: esteMes},
	}

	uc := NewDashboardUseCase(&fakePartRepo{}, &fakeOrderRepo{}, &fakeStockInRepo{rows: ins}, &fakeStockOutRepo{})
	trend, err := uc.GetMonthlyTrend(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, trend, 3)

	assert.Equal(t, esteMes.Format("2006-01"), trend[2].Month)
	assert.Equal(t, int64(4), trend[2].InQuantity)
	assert.Equal(t, int64(0), trend[0].InQuantity)
}

func TestGetDepartmentStats_IncluyeHorasDelDiaTope(t *testing.T) {
	// Una salida registrada con hora (RFC3339) el mismo día del tope del
	// rango sigue dentro del rango inclusivo por día.
	conHora := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	outs := []*entity.StockOut{
		{ID: 1, PartModelID: "pm-1", Quantity: 5, UnitPrice: decimal.NewFromInt(10), TotalAmount: decimal.NewFromInt(50), Department: "IT", StockOutDate: conHora},
		{ID: 2, PartModelID: "pm-1", Quantity: 2, UnitPrice: decimal.NewFromInt(10), TotalAmount: decimal.NewFromInt(20), Department: "IT", StockOutDate: fecha("2024-02-01")},
	}

	from := fecha("2024-01-01")
	to := fecha("2024-01-31")
	uc := NewDashboardUseCase(&fakePartRepo{}, &fakeOrderRepo{}, &fakeStockInRepo{}, &fakeStockOutRepo{rows: outs})
	stats, err := uc.GetDepartmentStats(context.Background(), &from, &to)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(5), stats[0].Quantity, "la salida de las 10:00 del día tope cuenta; la de febrero no")
}
