package postgres

import (
	"context"
	"fmt"

	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)
var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador de departamentos. Pasar pool o tx (Querier).
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create persiste un departamento.
func (r *DepartmentRepo) Create(dep *entity.Department) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO departments (id, name, code, created_at) VALUES ($1, $2, $3, $4)`,
		dep.ID, dep.Name, dep.Code, dep.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// List devuelve todos los departamentos ordenados por nombre.
func (r *DepartmentRepo) List(ctx context.Context) ([]*entity.Department, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, code, created_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Code, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un departamento por ID.
func (r *DepartmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(sup *entity.Supplier) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO suppliers (id, name, contact_person, phone, email, address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sup.ID, sup.Name, sup.ContactPerson, sup.Phone, sup.Email, sup.Address, sup.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// List devuelve todos los proveedores ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, contact_person, phone, email, address, created_at FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Phone, &s.Email, &s.Address, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto de un proveedor.
func (r *SupplierRepo) Update(sup *entity.Supplier) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET name = $2, contact_person = $3, phone = $4, email = $5, address = $6
		 WHERE id = $1`,
		sup.ID, sup.Name, sup.ContactPerson, sup.Phone, sup.Email, sup.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
