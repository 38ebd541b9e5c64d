package repository

import (
	"context"
	"time"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
)

// StockInFilter filtros del listado de entradas.
type StockInFilter struct {
	PartName    string // substring sobre código o nombre del modelo
	OrderNumber string // substring sobre el número de orden asociado
	DateFrom    *time.Time
	DateTo      *time.Time // inclusivo
	Page        int        // >= 1
	PageSize    int        // >= 1
}

// Normalize aplica los mínimos de paginación.
func (f *StockInFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
}

// DateToExclusive devuelve el límite superior exclusivo del rango: la
// medianoche del día siguiente a DateTo. Un evento con hora dentro del día
// tope (p. ej. 10:00) sigue incluido en el rango inclusivo por día.
func (f *StockInFilter) DateToExclusive() *time.Time {
	return endOfDayExclusive(f.DateTo)
}

// StockOutFilter filtros del listado de salidas.
type StockOutFilter struct {
	PartName   string
	Department string
	DateFrom   *time.Time
	DateTo     *time.Time // inclusivo
	Page       int
	PageSize   int
}

// Normalize aplica los mínimos de paginación.
func (f *StockOutFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
}

// DateToExclusive devuelve el límite superior exclusivo del rango (ver
// StockInFilter.DateToExclusive).
func (f *StockOutFilter) DateToExclusive() *time.Time {
	return endOfDayExclusive(f.DateTo)
}

// EndOfDayExclusive devuelve la medianoche del día siguiente a t, para usar
// como cota superior exclusiva de un rango de fechas inclusivo por día.
func EndOfDayExclusive(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}

func endOfDayExclusive(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	e := EndOfDayExclusive(*t)
	return &e
}

// StockInRepository puerto del libro de entradas.
type StockInRepository interface {
	Create(row *entity.StockIn) error // asigna row.ID
	GetByID(id int64) (*entity.StockIn, error)
	Update(row *entity.StockIn) error
	Delete(id int64) error

	// List devuelve el total de filas que cumplen el filtro y la página pedida,
	// con código/nombre del modelo y número de orden resueltos por JOIN.
	List(ctx context.Context, filter StockInFilter) (int, []*entity.StockIn, error)

	// ListAll devuelve el libro completo (con etiquetas de modelo) para la
	// agregación de inventario; el sistema recalcula desde aquí en cada lectura.
	ListAll(ctx context.Context) ([]*entity.StockIn, error)
}

// StockOutRepository puerto del libro de salidas.
type StockOutRepository interface {
	Create(row *entity.StockOut) error // asigna row.ID
	GetByID(id int64) (*entity.StockOut, error)
	Update(row *entity.StockOut) error
	Delete(id int64) error

	List(ctx context.Context, filter StockOutFilter) (int, []*entity.StockOut, error)
	ListAll(ctx context.Context) ([]*entity.StockOut, error)
}
