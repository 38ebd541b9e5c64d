package repository

import (
	"context"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
)

// DepartmentRepository puerto de departamentos (destinos de salida).
type DepartmentRepository interface {
	Create(dep *entity.Department) error
	List(ctx context.Context) ([]*entity.Department, error)
	Delete(id string) error
}

// SupplierRepository puerto de proveedores.
type SupplierRepository interface {
	Create(sup *entity.Supplier) error
	List(ctx context.Context) ([]*entity.Supplier, error)
	Update(sup *entity.Supplier) error
	Delete(id string) error
}

// AppDataRepository puerto del almacén clave/valor de datos de aplicación.
type AppDataRepository interface {
	Get(key string) (*entity.AppData, error) // nil si no existe
	Set(row *entity.AppData) error           // upsert
	Delete(key string) error
	List(ctx context.Context) ([]*entity.AppData, error)
}
