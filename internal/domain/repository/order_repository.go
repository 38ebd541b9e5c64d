package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
)

// OrderFilter filtros del listado de órdenes.
type OrderFilter struct {
	Search   string // substring sobre order_number o supplier
	Status   string // igualdad exacta, vacío = todos
	Page     int
	PageSize int
}

// Normalize aplica los mínimos de paginación.
func (f *OrderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}
}

// OrderRepository puerto de órdenes de compra y sus líneas.
//
// La regla de consistencia del total vive en el caso de uso: toda mutación de
// líneas va seguida de SumItemsTotal + UpdateTotalAmount dentro de la misma
// transacción (vía TxRunner con repos atados a la tx).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error) // incluye Items con etiquetas de modelo
	GetByNumber(orderNumber string) (*entity.Order, error)
	Update(order *entity.Order) error // cabecera: fecha, proveedor, estado, notas
	Delete(id string) error
	List(ctx context.Context, filter OrderFilter) (int, []*entity.Order, error)
	Count(ctx context.Context) (int64, error)

	CreateItem(item *entity.OrderItem) error
	GetItem(itemID string) (*entity.OrderItem, error)
	UpdateItem(item *entity.OrderItem) error
	DeleteItem(itemID string) error
	DeleteItemsByOrder(orderID string) error

	// SumItemsTotal devuelve Σ total_price de las líneas vigentes de la orden.
	SumItemsTotal(orderID string) (decimal.Decimal, error)
	UpdateTotalAmount(orderID string, total decimal.Decimal) error
}
