package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// CatalogUseCase catálogos auxiliares: departamentos y proveedores.
type CatalogUseCase struct {
	deptRepo     repository.DepartmentRepository
	supplierRepo repository.SupplierRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(deptRepo repository.DepartmentRepository, supplierRepo repository.SupplierRepository) *CatalogUseCase {
	return &CatalogUseCase{deptRepo: deptRepo, supplierRepo: supplierRepo}
}

// CreateDepartment crea un departamento.
func (uc *CatalogUseCase) CreateDepartment(in dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	dept := &entity.Department{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Code:      in.Code,
		CreatedAt: time.Now(),
	}
	if err := uc.deptRepo.Create(dept); err != nil {
		return nil, err
	}
	return toDepartmentResponse(dept), nil
}

// ListDepartments lista todos los departamentos.
func (uc *CatalogUseCase) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := uc.deptRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		out = append(out, *toDepartmentResponse(d))
	}
	return out, nil
}

// DeleteDepartment elimina un departamento.
func (uc *CatalogUseCase) DeleteDepartment(id string) error {
	return uc.deptRepo.Delete(id)
}

// CreateSupplier crea un proveedor.
func (uc *CatalogUseCase) CreateSupplier(in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		CreatedAt:     time.Now(),
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// ListSuppliers lista todos los proveedores.
func (uc *CatalogUseCase) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// UpdateSupplier actualiza los datos de contacto de un proveedor.
func (uc *CatalogUseCase) UpdateSupplier(id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:            id,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
	}
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// DeleteSupplier elimina un proveedor.
func (uc *CatalogUseCase) DeleteSupplier(id string) error {
	return uc.supplierRepo.Delete(id)
}

func toDepartmentResponse(d *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{ID: d.ID, Name: d.Name, Code: d.Code, CreatedAt: d.CreatedAt}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
	}
}
