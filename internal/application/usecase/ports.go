package usecase

import (
	"context"

	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// OrderTxRunner ejecuta fn dentro de una transacción de BD con un repositorio
// de órdenes atado a esa transacción. Toda mutación de líneas y el recálculo
// del total de la orden deben ser atómicos.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
