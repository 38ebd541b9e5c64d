package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, order_number, order_date, supplier, status, total_amount, notes, created_at, updated_at`

// Create persiste la cabecera de una orden. order_number es único.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_number, order_date, supplier, status, total_amount, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.OrderDate, order.Supplier, order.Status,
		order.TotalAmount, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene la orden con sus líneas (etiquetas de modelo resueltas por JOIN).
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	order, err := r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil || order == nil {
		return order, err
	}
	items, err := r.listItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// GetByNumber obtiene la cabecera por número de orden (sin líneas).
func (r *OrderRepo) GetByNumber(orderNumber string) (*entity.Order, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber))
}

// Update actualiza la cabecera. El total se mueve solo vía UpdateTotalAmount.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET order_date = $2, supplier = $3, status = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderDate, order.Supplier, order.Status, order.Notes, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina la cabecera (las líneas se borran antes, en la misma tx).
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// List devuelve el total que cumple el filtro y la página pedida, sin líneas.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter) (int, []*entity.Order, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := fmt.Sprintf("$%d", len(args))
		where += ` AND (order_number ILIKE ` + n + ` OR supplier ILIKE ` + n + `)`
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return 0, nil, fmt.Errorf("count orders: %w", err)
	}

	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query := `SELECT ` + orderColumns + ` FROM orders` + where +
		fmt.Sprintf(` ORDER BY order_date DESC, order_number DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.OrderDate, &o.Supplier, &o.Status,
			&o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return 0, nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return total, list, rows.Err()
}

// Count total de órdenes.
func (r *OrderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// CreateItem persiste una línea de orden.
func (r *OrderRepo) CreateItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, part_model_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.PartModelID, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetItem obtiene una línea por ID.
func (r *OrderRepo) GetItem(itemID string) (*entity.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.part_model_id, i.quantity, i.unit_price, i.total_price,
		       p.model_code, p.model_name
		FROM order_items i
		JOIN part_models p ON p.id = i.part_model_id
		WHERE i.id = $1`
	var it entity.OrderItem
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&it.ID, &it.OrderID, &it.PartModelID, &it.Quantity, &it.UnitPrice, &it.TotalPrice,
		&it.ModelCode, &it.ModelName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &it, nil
}

// UpdateItem reemplaza cantidad y precios de una línea.
func (r *OrderRepo) UpdateItem(item *entity.OrderItem) error {
	query := `
		UPDATE order_items SET part_model_id = $2, quantity = $3, unit_price = $4, total_price = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PartModelID, item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// DeleteItem borra una línea.
func (r *OrderRepo) DeleteItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}

// DeleteItemsByOrder borra todas las líneas de una orden.
func (r *OrderRepo) DeleteItemsByOrder(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}

// SumItemsTotal devuelve Σ total_price de las líneas vigentes de la orden.
func (r *OrderRepo) SumItemsTotal(orderID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total_price), 0) FROM order_items WHERE order_id = $1`, orderID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum order items: %w", err)
	}
	return total, nil
}

// UpdateTotalAmount fija el total de la orden (siempre con el resultado de SumItemsTotal).
func (r *OrderRepo) UpdateTotalAmount(orderID string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET total_amount = $2, updated_at = now() WHERE id = $1`, orderID, total)
	if err != nil {
		return fmt.Errorf("update order total: %w", err)
	}
	return nil
}

func (r *OrderRepo) listItems(orderID string) ([]*entity.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.part_model_id, i.quantity, i.unit_price, i.total_price,
		       p.model_code, p.model_name
		FROM order_items i
		JOIN part_models p ON p.id = i.part_model_id
		WHERE i.order_id = $1
		ORDER BY p.model_code`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.PartModelID, &it.Quantity, &it.UnitPrice,
			&it.TotalPrice, &it.ModelCode, &it.ModelName); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (r *OrderRepo) scanOne(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.OrderDate, &o.Supplier, &o.Status,
		&o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}
