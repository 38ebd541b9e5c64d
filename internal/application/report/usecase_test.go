package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/application/usecase"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// fakeStockInRepo sintetiza un libro de `total` entradas y respeta la
// paginación pedida, como lo haría el repositorio real.
type fakeStockInRepo struct {
	total int
	pages int // páginas servidas, para verificar el recorrido
}

func (f *fakeStockInRepo) Create(_ *entity.StockIn) error              { return nil }
func (f *fakeStockInRepo) GetByID(_ int64) (*entity.StockIn, error)    { return nil, nil }
func (f *fakeStockInRepo) Update(_ *entity.StockIn) error              { return nil }
func (f *fakeStockInRepo) Delete(_ int64) error                        { return nil }
func (f *fakeStockInRepo) ListAll(_ context.Context) ([]*entity.StockIn, error) {
	return nil, nil
}

func (f *fakeStockInRepo) List(_ context.Context, filter repository.StockInFilter) (int, []*entity.StockIn, error) {
	f.pages++
	start := (filter.Page - 1) * filter.PageSize
	end := start + filter.PageSize
	if end > f.total {
		end = f.total
	}
	var rows []*entity.StockIn
	for i := start; i < end; i++ {
		rows = append(rows, &entity.StockIn{
			ID:          int64(i + 1),
			PartModelID: "pm-1",
			Quantity:    1,
			StockInDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		})
	}
	return f.total, rows, nil
}

// fakeExcel captura cuántas filas recibe cada libro.
type fakeExcel struct {
	stockInRows int
}

func (f *fakeExcel) InventoryWorkbook(_ []dto.InventorySnapshotDTO, _ dto.InventorySummaryDTO) ([]byte, error) {
	return []byte("xlsx"), nil
}
func (f *fakeExcel) StockInWorkbook(rows []dto.StockInResponse) ([]byte, error) {
	f.stockInRows = len(rows)
	return []byte("xlsx"), nil
}
func (f *fakeExcel) StockOutWorkbook(_ []dto.StockOutResponse) ([]byte, error) {
	return []byte("xlsx"), nil
}
func (f *fakeExcel) LowStockWorkbook(_ []dto.LowStockAlertDTO) ([]byte, error) {
	return []byte("xlsx"), nil
}

func TestExportStockInExcel_RecorreTodasLasPaginas(t *testing.T) {
	// El libro supera el tamaño de página de exportación: el archivo debe
	// llevar todas las filas, no solo la primera página.
	repo := &fakeStockInRepo{total: 2*exportPageSize + 5}
	stockInUC := usecase.NewStockInUseCase(repo, nil, nil)
	excel := &fakeExcel{}
	uc := NewUseCase(nil, stockInUC, nil, nil, excel, nil)

	data, name, err := uc.ExportStockInExcel(context.Background(), repository.StockInFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Contains(t, name, "entradas")
	assert.Equal(t, repo.total, excel.stockInRows, "las filas exportadas igualan al total consultado")
	assert.Equal(t, 3, repo.pages)
}
