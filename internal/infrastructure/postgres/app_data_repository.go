package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

var _ repository.AppDataRepository = (*AppDataRepo)(nil)

// AppDataRepo implementación del puerto AppDataRepository sobre PostgreSQL.
type AppDataRepo struct {
	q Querier
}

// NewAppDataRepository construye el adaptador del almacén clave/valor. Pasar pool o tx (Querier).
func NewAppDataRepository(q Querier) *AppDataRepo {
	return &AppDataRepo{q: q}
}

// Get obtiene una clave. Devuelve nil si no existe.
func (r *AppDataRepo) Get(key string) (*entity.AppData, error) {
	var row entity.AppData
	err := r.q.QueryRow(context.Background(),
		`SELECT key, value, updated_at FROM app_data WHERE key = $1`, key,
	).Scan(&row.Key, &row.Value, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get app data: %w", err)
	}
	return &row, nil
}

// Set crea o reemplaza el valor de una clave (upsert).
func (r *AppDataRepo) Set(row *entity.AppData) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO app_data (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		row.Key, row.Value, row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("set app data: %w", err)
	}
	return nil
}

// Delete borra una clave. Borrar una inexistente no es error.
func (r *AppDataRepo) Delete(key string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM app_data WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete app data: %w", err)
	}
	return nil
}

// List devuelve todas las claves ordenadas.
func (r *AppDataRepo) List(ctx context.Context) ([]*entity.AppData, error) {
	rows, err := r.q.Query(ctx, `SELECT key, value, updated_at FROM app_data ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list app data: %w", err)
	}
	defer rows.Close()
	var list []*entity.AppData
	for rows.Next() {
		var row entity.AppData
		if err := rows.Scan(&row.Key, &row.Value, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan app data: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
