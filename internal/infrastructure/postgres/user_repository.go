package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de cuentas. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste una cuenta nueva. El email es único.
func (r *UserRepo) Create(user *entity.User) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, name, role, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, email, password_hash, name, role, status, created_at, updated_at
		 FROM users WHERE id = $1`, id))
}

// FindByEmail obtiene una cuenta por email. Devuelve nil si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, email, password_hash, name, role, status, created_at, updated_at
		 FROM users WHERE email = $1`, email))
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
