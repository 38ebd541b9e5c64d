package repository

import (
	"context"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
)

// PartModelRepository puerto de persistencia del catálogo de modelos.
type PartModelRepository interface {
	Create(part *entity.PartModel) error
	GetByID(id string) (*entity.PartModel, error)
	GetByCode(code string) (*entity.PartModel, error)
	Update(part *entity.PartModel) error
	Delete(id string) error

	// List filtra por substring (insensible a mayúsculas) sobre código, nombre,
	// especificación y categoría; category filtra por igualdad exacta.
	// Ambos filtros pueden ser vacíos. Ordena por model_code.
	List(ctx context.Context, search, category string) ([]*entity.PartModel, error)

	// CountReferences cuenta filas de stock_in, stock_out y order_items que
	// referencian el modelo. Un modelo con referencias no puede borrarse.
	CountReferences(ctx context.Context, id string) (int64, error)

	Count(ctx context.Context) (int64, error)
}
