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

// PartModelUseCase casos de uso CRUD del catálogo de modelos.
type PartModelUseCase struct {
	repo repository.PartModelRepository
}

// NewPartModelUseCase construye el caso de uso.
func NewPartModelUseCase(repo repository.PartModelRepository) *PartModelUseCase {
	return &PartModelUseCase{repo: repo}
}

// Create crea un modelo nuevo. El código es la clave de negocio: único y obligatorio.
func (uc *PartModelUseCase) Create(in dto.CreatePartModelRequest) (*dto.PartModelResponse, error) {
	in.ModelCode = strings.TrimSpace(in.ModelCode)
	if in.ModelCode == "" || strings.TrimSpace(in.ModelName) == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.ModelCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	part := &entity.PartModel{
		ID:            uuid.New().String(),
		ModelCode:     in.ModelCode,
		ModelName:     in.ModelName,
		Specification: in.Specification,
		Unit:          in.Unit,
		Category:      in.Category,
		Description:   in.Description,
		MinThreshold:  in.MinThreshold,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(part); err != nil {
		return nil, err
	}
	return toPartModelResponse(part), nil
}

// GetByID obtiene un modelo por ID.
func (uc *PartModelUseCase) GetByID(id string) (*dto.PartModelResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return toPartModelResponse(part), nil
}

// List filtra el catálogo por substring y categoría.
func (uc *PartModelUseCase) List(ctx context.Context, search, category string) ([]dto.PartModelResponse, error) {
	parts, err := uc.repo.List(ctx, search, category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartModelResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, *toPartModelResponse(p))
	}
	return out, nil
}

// Update actualiza los campos editables. El código de modelo no cambia nunca:
// es la identidad de negocio y las referencias viven sobre el ID opaco.
func (uc *PartModelUseCase) Update(id string, in dto.UpdatePartModelRequest) (*dto.PartModelResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.ModelName) == "" || in.Unit == "" || in.MinThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	part.ModelName = in.ModelName
	part.Specification = in.Specification
	part.Unit = in.Unit
	part.Category = in.Category
	part.Description = in.Description
	part.MinThreshold = in.MinThreshold
	part.UpdatedAt = time.Now()
	if err := uc.repo.Update(part); err != nil {
		return nil, err
	}
	return toPartModelResponse(part), nil
}

// Delete elimina un modelo solo si ningún movimiento ni línea de orden lo referencia.
func (uc *PartModelUseCase) Delete(ctx context.Context, id string) error {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.repo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrPartModelInUse
	}
	return uc.repo.Delete(id)
}

func toPartModelResponse(p *entity.PartModel) *dto.PartModelResponse {
	return &dto.PartModelResponse{
		ID:            p.ID,
		ModelCode:     p.ModelCode,
		ModelName:     p.ModelName,
		Specification: p.Specification,
		Unit:          p.Unit,
		Category:      p.Category,
		Description:   p.Description,
		MinThreshold:  p.MinThreshold,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
