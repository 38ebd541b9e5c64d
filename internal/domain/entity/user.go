package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User es una cuenta de operador del sistema.
type User struct {
	ID           string
	Email        string // único
	PasswordHash string
	Name         string
	Role         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
