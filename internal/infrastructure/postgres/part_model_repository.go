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

var _ repository.PartModelRepository = (*PartModelRepo)(nil)

// PartModelRepo implementación del puerto PartModelRepository sobre PostgreSQL (usable con pool o tx).
type PartModelRepo struct {
	q Querier
}

// NewPartModelRepository construye el adaptador de persistencia del catálogo. Pasar pool o tx (Querier).
func NewPartModelRepository(q Querier) *PartModelRepo {
	return &PartModelRepo{q: q}
}

const partModelColumns = `id, model_code, model_name, specification, unit, category, description, min_threshold, created_at, updated_at`

// Create persiste un modelo nuevo. model_code es único.
func (r *PartModelRepo) Create(part *entity.PartModel) error {
	query := `
		INSERT INTO part_models (id, model_code, model_name, specification, unit, category, description, min_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.ModelCode, part.ModelName, part.Specification, part.Unit,
		part.Category, part.Description, part.MinThreshold, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part model: %w", err)
	}
	return nil
}

// GetByID obtiene un modelo por ID.
func (r *PartModelRepo) GetByID(id string) (*entity.PartModel, error) {
	query := `SELECT ` + partModelColumns + ` FROM part_models WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode obtiene un modelo por su código de negocio.
func (r *PartModelRepo) GetByCode(code string) (*entity.PartModel, error) {
	query := `SELECT ` + partModelColumns + ` FROM part_models WHERE model_code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

// Update actualiza los campos editables. model_code no cambia nunca.
func (r *PartModelRepo) Update(part *entity.PartModel) error {
	query := `
		UPDATE part_models
		SET model_name = $2, specification = $3, unit = $4, category = $5, description = $6, min_threshold = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.ModelName, part.Specification, part.Unit, part.Category,
		part.Description, part.MinThreshold, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part model: %w", err)
	}
	return nil
}

// Delete elimina un modelo por ID.
func (r *PartModelRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM part_models WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part model: %w", err)
	}
	return nil
}

// List filtra por substring (código, nombre, especificación o categoría) y
// categoría exacta. Ordena por model_code.
func (r *PartModelRepo) List(ctx context.Context, search, category string) ([]*entity.PartModel, error) {
	query := `SELECT ` + partModelColumns + ` FROM part_models WHERE 1=1`
	args := []any{}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := fmt.Sprintf("$%d", len(args))
		query += ` AND (model_code ILIKE ` + n + ` OR model_name ILIKE ` + n +
			` OR specification ILIKE ` + n + ` OR category ILIKE ` + n + `)`
	}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	query += ` ORDER BY model_code`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list part models: %w", err)
	}
	defer rows.Close()
	var list []*entity.PartModel
	for rows.Next() {
		var p entity.PartModel
		if err := rows.Scan(&p.ID, &p.ModelCode, &p.ModelName, &p.Specification, &p.Unit,
			&p.Category, &p.Description, &p.MinThreshold, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan part model: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountReferences cuenta filas del libro y líneas de orden que apuntan al modelo.
func (r *PartModelRepo) CountReferences(ctx context.Context, id string) (int64, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM stock_in WHERE part_model_id = $1) +
			(SELECT COUNT(*) FROM stock_out WHERE part_model_id = $1) +
			(SELECT COUNT(*) FROM order_items WHERE part_model_id = $1)`
	var n int64
	if err := r.q.QueryRow(ctx, query, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("count part model references: %w", err)
	}
	return n, nil
}

// Count total de modelos en el catálogo.
func (r *PartModelRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM part_models`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count part models: %w", err)
	}
	return n, nil
}

func (r *PartModelRepo) scanOne(row pgx.Row) (*entity.PartModel, error) {
	var p entity.PartModel
	err := row.Scan(&p.ID, &p.ModelCode, &p.ModelName, &p.Specification, &p.Unit,
		&p.Category, &p.Description, &p.MinThreshold, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part model: %w", err)
	}
	return &p, nil
}
