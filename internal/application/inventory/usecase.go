// Package inventory expone las vistas derivadas del inventario: fotos de stock
// por modelo y alertas de stock bajo. No hay tabla de inventario: cada lectura
// recalcula desde el libro de entradas y salidas.
package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	invdomain "github.com/Wesley1888/InvenMate/internal/domain/inventory"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
	"github.com/Wesley1888/InvenMate/pkg/logger"
)

// UseCase consultas del inventario derivado.
type UseCase struct {
	partRepo     repository.PartModelRepository
	stockInRepo  repository.StockInRepository
	stockOutRepo repository.StockOutRepository
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	partRepo repository.PartModelRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{partRepo: partRepo, stockInRepo: stockInRepo, stockOutRepo: stockOutRepo, log: log}
}

// GetSnapshots deriva la foto de cada modelo que pase el filtro, clasifica su
// nivel y acompaña los totales de la vista.
func (uc *UseCase) GetSnapshots(ctx context.Context, search, category string) (*dto.InventoryListResponse, error) {
	parts, err := uc.partRepo.List(ctx, search, category)
	if err != nil {
		return nil, err
	}
	insByPart, outsByPart, err := uc.ledgerByPart(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]dto.InventorySnapshotDTO, 0, len(parts))
	summary := dto.InventorySummaryDTO{TotalValue: decimal.Zero}
	for _, part := range parts {
		snap := invdomain.Aggregate(part, insByPart[part.ID], outsByPart[part.ID])
		if snap.OverIssued {
			// Salidas por encima de las entradas: saldo fijado en cero, se deja rastro.
			uc.log.Warn().
				Str("part_model_id", part.ID).
				Str("model_code", part.ModelCode).
				Int64("total_in", snap.TotalInQuantity).
				Int64("total_out", snap.TotalOutQuantity).
				Msg("modelo con salidas mayores a sus entradas")
		}
		snapshots = append(snapshots, toSnapshotDTO(snap))

		summary.TotalItems++
		summary.TotalQuantity += snap.CurrentQuantity
		summary.TotalValue = summary.TotalValue.Add(snap.TotalValue)
		if invdomain.BelowThreshold(snap) {
			summary.LowStockItems++
		}
	}

	return &dto.InventoryListResponse{Snapshots: snapshots, Summary: summary}, nil
}

// GetSnapshot deriva la foto de un solo modelo.
func (uc *UseCase) GetSnapshot(ctx context.Context, partModelID string) (*dto.InventorySnapshotDTO, error) {
	part, err := uc.partRepo.GetByID(partModelID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	insByPart, outsByPart, err := uc.ledgerByPart(ctx)
	if err != nil {
		return nil, err
	}
	snap := invdomain.Aggregate(part, insByPart[part.ID], outsByPart[part.ID])
	out := toSnapshotDTO(snap)
	return &out, nil
}

// GetLowStockAlerts lista los modelos monitoreados con saldo bajo el umbral,
// ordenados por déficit descendente (el más urgente primero).
func (uc *UseCase) GetLowStockAlerts(ctx context.Context) ([]dto.LowStockAlertDTO, error) {
	parts, err := uc.partRepo.List(ctx, "", "")
	if err != nil {
		return nil, err
	}
	insByPart, outsByPart, err := uc.ledgerByPart(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlertDTO, 0)
	for _, part := range parts {
		snap := invdomain.Aggregate(part, insByPart[part.ID], outsByPart[part.ID])
		if !invdomain.BelowThreshold(snap) {
			continue
		}
		alerts = append(alerts, dto.LowStockAlertDTO{
			PartModelID:     snap.PartModelID,
			ModelCode:       snap.ModelCode,
			ModelName:       snap.ModelName,
			Unit:            snap.Unit,
			CurrentQuantity: snap.CurrentQuantity,
			MinThreshold:    snap.MinThreshold,
			Deficit:         snap.MinThreshold - snap.CurrentQuantity,
			Level:           string(invdomain.ClassifyLevel(snap)),
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Deficit != alerts[j].Deficit {
			return alerts[i].Deficit > alerts[j].Deficit
		}
		return alerts[i].ModelCode < alerts[j].ModelCode
	})
	return alerts, nil
}

// ledgerByPart carga el libro completo y lo agrupa por modelo.
func (uc *UseCase) ledgerByPart(ctx context.Context) (map[string][]*entity.StockIn, map[string][]*entity.StockOut, error) {
	ins, err := uc.stockInRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	outs, err := uc.stockOutRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	insByPart := make(map[string][]*entity.StockIn)
	for _, row := range ins {
		insByPart[row.PartModelID] = append(insByPart[row.PartModelID], row)
	}
	outsByPart := make(map[string][]*entity.StockOut)
	for _, row := range outs {
		outsByPart[row.PartModelID] = append(outsByPart[row.PartModelID], row)
	}
	return insByPart, outsByPart, nil
}

func toSnapshotDTO(snap entity.InventorySnapshot) dto.InventorySnapshotDTO {
	var last *time.Time
	if !snap.LastUpdated.IsZero() {
		t := snap.LastUpdated
		last = &t
	}
	return dto.InventorySnapshotDTO{
		PartModelID:     snap.PartModelID,
		ModelCode:       snap.ModelCode,
		ModelName:       snap.ModelName,
		Specification:   snap.Specification,
		Category:        snap.Category,
		Unit:            snap.Unit,
		MinThreshold:    snap.MinThreshold,
		CurrentQuantity: snap.CurrentQuantity,
		AverageCost:     snap.AverageCost,
		TotalValue:      snap.TotalValue,
		LastUpdated:     last,
		Level:           string(invdomain.ClassifyLevel(snap)),
		OverIssued:      snap.OverIssued,
	}
}
