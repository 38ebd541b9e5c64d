package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// SettingsUseCase almacén clave/valor de datos de aplicación (preferencias
// de UI, banderas, metadatos del sitio).
type SettingsUseCase struct {
	repo repository.AppDataRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.AppDataRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get obtiene una clave. ErrNotFound si no existe.
func (uc *SettingsUseCase) Get(key string) (*dto.AppDataEntry, error) {
	row, err := uc.repo.Get(key)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return toAppDataEntry(row), nil
}

// Set crea o reemplaza el valor de una clave (upsert).
func (uc *SettingsUseCase) Set(key, value string) (*dto.AppDataEntry, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, domain.ErrInvalidInput
	}
	row := &entity.AppData{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := uc.repo.Set(row); err != nil {
		return nil, err
	}
	return toAppDataEntry(row), nil
}

// Delete borra una clave. Borrar una clave inexistente no es error.
func (uc *SettingsUseCase) Delete(key string) error {
	return uc.repo.Delete(key)
}

// List devuelve todas las claves almacenadas.
func (uc *SettingsUseCase) List(ctx context.Context) ([]dto.AppDataEntry, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppDataEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, *toAppDataEntry(r))
	}
	return out, nil
}

func toAppDataEntry(r *entity.AppData) *dto.AppDataEntry {
	return &dto.AppDataEntry{Key: r.Key, Value: r.Value, UpdatedAt: r.UpdatedAt}
}
