package repository

import "github.com/Wesley1888/InvenMate/internal/domain/entity"

// UserRepository puerto de cuentas de operador.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
