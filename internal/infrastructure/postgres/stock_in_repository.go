package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementación del puerto StockInRepository sobre PostgreSQL (usable con pool o tx).
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador del libro de entradas. Pasar pool o tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// stockInSelect columnas de la fila más etiquetas resueltas por JOIN.
const stockInSelect = `
	SELECT s.id, s.part_model_id, COALESCE(s.order_id, ''), s.quantity, s.unit_price, s.total_amount,
	       s.stock_in_date, s.operator, s.notes, s.created_at,
	       p.model_code, p.model_name, p.unit, COALESCE(o.order_number, '')
	FROM stock_in s
	JOIN part_models p ON p.id = s.part_model_id
	LEFT JOIN orders o ON o.id = s.order_id`

// Create persiste una entrada y asigna row.ID (BIGSERIAL).
func (r *StockInRepo) Create(row *entity.StockIn) error {
	query := `
		INSERT INTO stock_in (part_model_id, order_id, quantity, unit_price, total_amount, stock_in_date, operator, notes, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		row.PartModelID, row.OrderID, row.Quantity, row.UnitPrice, row.TotalAmount,
		row.StockInDate, row.Operator, row.Notes, row.CreatedAt,
	).Scan(&row.ID)
	if err != nil {
		return fmt.Errorf("insert stock in: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada con sus etiquetas.
func (r *StockInRepo) GetByID(id int64) (*entity.StockIn, error) {
	row, err := r.scanOne(r.q.QueryRow(context.Background(), stockInSelect+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Update corrige una entrada existente.
func (r *StockInRepo) Update(row *entity.StockIn) error {
	query := `
		UPDATE stock_in
		SET quantity = $2, unit_price = $3, total_amount = $4, stock_in_date = $5, operator = $6, notes = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		row.ID, row.Quantity, row.UnitPrice, row.TotalAmount, row.StockInDate, row.Operator, row.Notes,
	)
	if err != nil {
		return fmt.Errorf("update stock in: %w", err)
	}
	return nil
}

// Delete borra una entrada del libro.
func (r *StockInRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_in WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock in: %w", err)
	}
	return nil
}

// List devuelve el total que cumple el filtro y la página pedida, ordenada por
// fecha descendente con desempate por id descendente.
func (r *StockInRepo) List(ctx context.Context, filter repository.StockInFilter) (int, []*entity.StockIn, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if filter.PartName != "" {
		args = append(args, "%"+filter.PartName+"%")
		n := fmt.Sprintf("$%d", len(args))
		where += ` AND (p.model_code ILIKE ` + n + ` OR p.model_name ILIKE ` + n + `)`
	}
	if filter.OrderNumber != "" {
		args = append(args, "%"+filter.OrderNumber+"%")
		where += fmt.Sprintf(` AND o.order_number ILIKE $%d`, len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		where += fmt.Sprintf(` AND s.stock_in_date >= $%d`, len(args))
	}
	if filter.DateTo != nil {
		// Cota exclusiva al día siguiente: una entrada con hora dentro del
		// día tope queda incluida en el rango inclusivo por día.
		args = append(args, *filter.DateToExclusive())
		where += fmt.Sprintf(` AND s.stock_in_date < $%d`, len(args))
	}

	countQuery := `
		SELECT COUNT(*) FROM stock_in s
		JOIN part_models p ON p.id = s.part_model_id
		LEFT JOIN orders o ON o.id = s.order_id` + where
	var total int
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, nil, fmt.Errorf("count stock in: %w", err)
	}

	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query := stockInSelect + where +
		fmt.Sprintf(` ORDER BY s.stock_in_date DESC, s.id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("list stock in: %w", err)
	}
	defer rows.Close()
	list, err := r.scanRows(rows)
	if err != nil {
		return 0, nil, err
	}
	return total, list, nil
}

// ListAll devuelve el libro de entradas completo para la agregación de inventario.
func (r *StockInRepo) ListAll(ctx context.Context) ([]*entity.StockIn, error) {
	rows, err := r.q.Query(ctx, stockInSelect+` ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("list all stock in: %w", err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *StockInRepo) scanRows(rows pgx.Rows) ([]*entity.StockIn, error) {
	var list []*entity.StockIn
	for rows.Next() {
		var s entity.StockIn
		if err := rows.Scan(&s.ID, &s.PartModelID, &s.OrderID, &s.Quantity, &s.UnitPrice,
			&s.TotalAmount, &s.StockInDate, &s.Operator, &s.Notes, &s.CreatedAt,
			&s.ModelCode, &s.ModelName, &s.Unit, &s.OrderNumber); err != nil {
			return nil, fmt.Errorf("scan stock in: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *StockInRepo) scanOne(row pgx.Row) (*entity.StockIn, error) {
	var s entity.StockIn
	err := row.Scan(&s.ID, &s.PartModelID, &s.OrderID, &s.Quantity, &s.UnitPrice,
		&s.TotalAmount, &s.StockInDate, &s.Operator, &s.Notes, &s.CreatedAt,
		&s.ModelCode, &s.ModelName, &s.Unit, &s.OrderNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock in: %w", err)
	}
	return &s, nil
}
