package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación del puerto StockOutRepository sobre PostgreSQL (usable con pool o tx).
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador del libro de salidas. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

const stockOutSelect = `
	SELECT s.id, s.part_model_id, s.quantity, s.unit_price, s.total_amount,
	       s.recipient, s.department, s.stock_out_date, s.operator, s.notes, s.created_at,
	       p.model_code, p.model_name, p.unit
	FROM stock_out s
	JOIN part_models p ON p.id = s.part_model_id`

// Create persiste una salida y asigna row.ID (BIGSERIAL).
func (r *StockOutRepo) Create(row *entity.StockOut) error {
	query := `
		INSERT INTO stock_out (part_model_id, quantity, unit_price, total_amount, recipient, department, stock_out_date, operator, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		row.PartModelID, row.Quantity, row.UnitPrice, row.TotalAmount, row.Recipient,
		row.Department, row.StockOutDate, row.Operator, row.Notes, row.CreatedAt,
	).Scan(&row.ID)
	if err != nil {
		return fmt.Errorf("insert stock out: %w", err)
	}
	return nil
}

// GetByID obtiene una salida con sus etiquetas.
func (r *StockOutRepo) GetByID(id int64) (*entity.StockOut, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), stockOutSelect+` WHERE s.id = $1`, id))
}

// Update corrige una salida existente.
func (r *StockOutRepo) Update(row *entity.StockOut) error {
	query := `
		UPDATE stock_out
		SET quantity = $2, unit_price = $3, total_amount = $4, recipient = $5, department = $6,
		    stock_out_date = $7, operator = $8, notes = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		row.ID, row.Quantity, row.UnitPrice, row.TotalAmount, row.Recipient, row.Department,
		row.StockOutDate, row.Operator, row.Notes,
	)
	if err != nil {
		return fmt.Errorf("update stock out: %w", err)
	}
	return nil
}

// Delete borra una salida del libro.
func (r *StockOutRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_out WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock out: %w", err)
	}
	return nil
}

// List devuelve el total que cumple el filtro y la página pedida, ordenada por
// fecha descendente con desempate por id descendente.
func (r *StockOutRepo) List(ctx context.Context, filter repository.StockOutFilter) (int, []*entity.StockOut, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if filter.PartName != "" {
		args = append(args, "%"+filter.PartName+"%")
		n := fmt.Sprintf("$%d", len(args))
		where += ` AND (p.model_code ILIKE ` + n + ` OR p.model_name ILIKE ` + n + `)`
	}
	if filter.Department != "" {
		args = append(args, "%"+filter.Department+"%")
		where += fmt.Sprintf(` AND s.department ILIKE $%d`, len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		where += fmt.Sprintf(` AND s.stock_out_date >= $%d`, len(args))
	}
	if filter.DateTo != nil {
		// Cota exclusiva al día siguiente: una salida con hora dentro del
		// día tope queda incluida en el rango inclusivo por día.
		args = append(args, *filter.DateToExclusive())
		where += fmt.Sprintf(` AND s.stock_out_date < $%d`, len(args))
	}

	countQuery := `
		SELECT COUNT(*) FROM stock_out s
		JOIN part_models p ON p.id = s.part_model_id` + where
	var total int
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, nil, fmt.Errorf("count stock out: %w", err)
	}

	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query := stockOutSelect + where +
		fmt.Sprintf(` ORDER BY s.stock_out_date DESC, s.id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("list stock out: %w", err)
	}
	defer rows.Close()
	list, err := r.scanRows(rows)
	if err != nil {
		return 0, nil, err
	}
	return total, list, nil
}

// ListAll devuelve el libro de salidas completo para la agregación de inventario.
func (r *StockOutRepo) ListAll(ctx context.Context) ([]*entity.StockOut, error) {
	rows, err := r.q.Query(ctx, stockOutSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("list all stock out: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *StockOutRepo) scanRows(rows pgx.Rows) ([]*entity.StockOut, error) {
	var list []*entity.StockOut
	for rows.Next() {
		var s entity.StockOut
		if err := rows.Scan(&s.ID, &s.PartModelID, &s.Quantity, &s.UnitPrice, &s.TotalAmount,
			&s.Recipient, &s.Department, &s.StockOutDate, &s.Operator, &s.Notes, &s.CreatedAt,
			&s.ModelCode, &s.ModelName, &s.Unit); err != nil {
			return nil, fmt.Errorf("scan stock out: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *StockOutRepo) scanOne(row pgx.Row) (*entity.StockOut, error) {
	var s entity.StockOut
	err := row.Scan(&s.ID, &s.PartModelID, &s.Quantity, &s.UnitPrice, &s.TotalAmount,
		&s.Recipient, &s.Department, &s.StockOutDate, &s.Operator, &s.Notes, &s.CreatedAt,
		&s.ModelCode, &s.ModelName, &s.Unit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock out: %w", err)
	}
	return &s, nil
}
