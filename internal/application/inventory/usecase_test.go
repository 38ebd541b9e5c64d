package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
	"github.com/Wesley1888/InvenMate/pkg/logger"
)

type fakePartRepo struct {
	parts []*entity.PartModel
}

func (f *fakePartRepo) Create(p *entity.PartModel) error { f.parts = append(f.parts, p); return nil }
func (f *fakePartRepo) GetByID(id string) (*entity.PartModel, error) {
	for _, p := range f.parts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePartRepo) GetByCode(code string) (*entity.PartModel, error) {
	for _, p := range f.parts {
		if p.ModelCode == code {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePartRepo) Update(*entity.PartModel) error { return nil }
func (f *fakePartRepo) Delete(string) error            { return nil }
func (f *fakePartRepo) List(_ context.Context, _, _ string) ([]*entity.PartModel, error) {
	return f.parts, nil
}
func (f *fakePartRepo) CountReferences(context.Context, string) (int64, error) { return 0, nil }
func (f *fakePartRepo) Count(context.Context) (int64, error) {
	return int64(len(f.parts)), nil
}

type fakeStockInRepo struct {
	rows []*entity.StockIn
}

func (f *fakeStockInRepo) Create(r *entity.StockIn) error        { f.rows = append(f.rows, r); return nil }
func (f *fakeStockInRepo) GetByID(int64) (*entity.StockIn, error) { return nil, nil }
func (f *fakeStockInRepo) Update(*entity.StockIn) error          { return nil }
func (f *fakeStockInRepo) Delete(int64) error                    { return nil }
func (f *fakeStockInRepo) List(_ context.Context, _ repository.StockInFilter) (int, []*entity.StockIn, error) {
	return len(f.rows), f.rows, nil
}
func (f *fakeStockInRepo) ListAll(context.Context) ([]*entity.StockIn, error) { return f.rows, nil }

type fakeStockOutRepo struct {
	rows []*entity.StockOut
}

func (f *fakeStockOutRepo) Create(r *entity.StockOut) error         { f.rows = append(f.rows, r); return nil }
func (f *fakeStockOutRepo) GetByID(int64) (*entity.StockOut, error) { return nil, nil }
func (f *fakeStockOutRepo) Update(*entity.StockOut) error           { return nil }
func (f *fakeStockOutRepo) Delete(int64) error                      { return nil }
func (f *fakeStockOutRepo) List(_ context.Context, _ repository.StockOutFilter) (int, []*entity.StockOut, error) {
	return len(f.rows), f.rows, nil
}
func (f *fakeStockOutRepo) ListAll(context.Context) ([]*entity.StockOut, error) { return f.rows, nil }

func newUseCaseForTest(parts []*entity.PartModel, ins []*entity.StockIn, outs []*entity.StockOut) *UseCase {
	return NewUseCase(
		&fakePartRepo{parts: parts},
		&fakeStockInRepo{rows: ins},
		&fakeStockOutRepo{rows: outs},
		logger.New(logger.Config{Env: "development", Level: "error"}),
	)
}

func fecha(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestGetSnapshots_DerivaDesdeElLibro(t *testing.T) {
	parts := []*entity.PartModel{
		{ID: "pm-1", ModelCode: "CPU-001", ModelName: "Procesador X1", Unit: "pieza", MinThreshold: 5},
	}
	ins := []*entity.StockIn{
		{ID: 1, PartModelID: "pm-1", Quantity: 10, UnitPrice: decimal.NewFromInt(2500), TotalAmount: decimal.NewFromInt(25000), StockInDate: fecha("2024-01-10")},
	}
	outs := []*entity.StockOut{
		{ID: 1, PartModelID: "pm-1", Quantity: 7, UnitPrice: decimal.NewFromInt(2500), TotalAmount: decimal.NewFromInt(17500), StockOutDate: fecha("2024-01-15")},
	}

	uc := newUseCaseForTest(parts, ins, outs)
	resp, err := uc.GetSnapshots(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, resp.Snapshots, 1)

	snap := resp.Snapshots[0]
	assert.Equal(t, int64(3), snap.CurrentQuantity)
	assert.True(t, snap.AverageCost.Equal(decimal.NewFromInt(2500)))
	assert.True(t, snap.TotalValue.Equal(decimal.NewFromInt(7500)))
	assert.Equal(t, "low", snap.Level)
	require.NotNil(t, snap.LastUpdated)
	assert.Equal(t, fecha("2024-01-15"), *snap.LastUpdated)

	assert.Equal(t, 1, resp.Summary.TotalItems)
	assert.Equal(t, 1, resp.Summary.LowStockItems)
	assert.Equal(t, int64(3), resp.Summary.TotalQuantity)
	assert.True(t, resp.Summary.TotalValue.Equal(decimal.NewFromInt(7500)))
}

func TestGetSnapshots_SinMovimientosLastUpdatedNulo(t *testing.T) {
	parts := []*entity.PartModel{
		{ID: "pm-1", ModelCode: "RAM-001", ModelName: "Memoria 16G", Unit: "pieza"},
	}

	uc := newUseCaseForTest(parts, nil, nil)
	resp, err := uc.GetSnapshots(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, resp.Snapshots, 1)
	assert.Nil(t, resp.Snapshots[0].LastUpdated)
	assert.Equal(t, "not_monitored", resp.Snapshots[0].Level)
	assert.Equal(t, int64(0), resp.Snapshots[0].CurrentQuantity)
}

func TestGetLowStockAlerts_ExcluyeNoMonitoreadosYOrdenaPorDeficit(t *testing.T) {
	parts := []*entity.PartModel{
		{ID: "pm-1", ModelCode: "CPU-001", ModelName: "Procesador X1", Unit: "pieza", MinThreshold: 5},
		{ID: "pm-2", ModelCode: "RAM-001", ModelName: "Memoria 16G", Unit: "pieza", MinThreshold: 20},
		{ID: "pm-3", ModelCode: "SSD-001", ModelName: "Disco 1T", Unit: "pieza"}, // sin umbral: nunca alerta
	}
	ins := []*entity.StockIn{
		{ID: 1, PartModelID: "pm-1", Quantity: 3, UnitPrice: decimal.NewFromInt(100), StockInDate: fecha("2024-01-10")},
		{ID: 2, PartModelID: "pm-2", Quantity: 4, UnitPrice: decimal.NewFromInt(50), StockInDate: fecha("2024-01-11")},
	}

	uc := newUseCaseForTest(parts, ins, nil)
	alerts, err := uc.GetLowStockAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	// pm-2 primero: déficit 16 contra 2 de pm-1.
	assert.Equal(t, "RAM-001", alerts[0].ModelCode)
	assert.Equal(t, int64(16), alerts[0].Deficit)
	assert.Equal(t, "CPU-001", alerts[1].ModelCode)
	assert.Equal(t, int64(2), alerts[1].Deficit)
}

func TestGetLowStockAlerts_FronteraEstricta(t *testing.T) {
	parts := []*entity.PartModel{
		{ID: "pm-1", ModelCode: "CPU-001", ModelName: "Procesador X1", Unit: "pieza", MinThreshold: 5},
	}
	ins := []*entity.StockIn{
		{ID: 1, PartModelID: "pm-1", Quantity: 5, UnitPrice: decimal.NewFromInt(100), StockInDate: fecha("2024-01-10")},
	}

	uc := newUseCaseForTest(parts, ins, nil)
	alerts, err := uc.GetLowStockAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts, "current == umbral no dispara alerta")
}

func TestGetSnapshot_ModeloInexistente(t *testing.T) {
	uc := newUseCaseForTest(nil, nil, nil)
	_, err := uc.GetSnapshot(context.Background(), "pm-x")
	assert.Error(t, err)
}
