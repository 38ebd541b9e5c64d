package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// StockInUseCase casos de uso del libro de entradas.
type StockInUseCase struct {
	repo      repository.StockInRepository
	partRepo  repository.PartModelRepository
	orderRepo repository.OrderRepository
}

// NewStockInUseCase construye el caso de uso.
func NewStockInUseCase(repo repository.StockInRepository, partRepo repository.PartModelRepository, orderRepo repository.OrderRepository) *StockInUseCase {
	return &StockInUseCase{repo: repo, partRepo: partRepo, orderRepo: orderRepo}
}

// Create registra una entrada. Si el cliente no manda total_amount se deriva
// como quantity * unit_price. operator viene del body o del token.
func (uc *StockInUseCase) Create(in dto.CreateStockInRequest, operator string) (*dto.StockInResponse, error) {
	if in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.StockInDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	part, err := uc.partRepo.GetByID(in.PartModelID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	if in.OrderID != "" {
		order, err := uc.orderRepo.GetByID(in.OrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, domain.ErrNotFound
		}
	}
	total := decimal.NewFromInt(in.Quantity).Mul(in.UnitPrice)
	if in.TotalAmount != nil {
		if in.TotalAmount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		total = *in.TotalAmount
	}
	if in.Operator != "" {
		operator = in.Operator
	}

	row := &entity.StockIn{
		PartModelID: part.ID,
		OrderID:     in.OrderID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		TotalAmount: total,
		StockInDate: date,
		Operator:    operator,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(row); err != nil {
		return nil, err
	}
	return uc.GetByID(row.ID)
}

// GetByID obtiene una entrada por su ID numérico.
func (uc *StockInUseCase) GetByID(id int64) (*dto.StockInResponse, error) {
	row, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return toStockInResponse(row), nil
}

// List filtra el libro de entradas con paginación.
func (uc *StockInUseCase) List(ctx context.Context, filter repository.StockInFilter) (*dto.StockInListResponse, error) {
	filter.Normalize()
	total, rows, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockInResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, *toStockInResponse(r))
	}
	return &dto.StockInListResponse{
		Rows: out,
		Meta: dto.PageResponse{Page: filter.Page, PageSize: filter.PageSize, Total: total},
	}, nil
}

// Update corrige una entrada existente (cantidad, precio, fecha, notas).
func (uc *StockInUseCase) Update(id int64, in dto.CreateStockInRequest) (*dto.StockInResponse, error) {
	row, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.StockInDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	row.Quantity = in.Quantity
	row.UnitPrice = in.UnitPrice
	row.TotalAmount = decimal.NewFromInt(in.Quantity).Mul(in.UnitPrice)
	if in.TotalAmount != nil && !in.TotalAmount.IsNegative() {
		row.TotalAmount = *in.TotalAmount
	}
	row.StockInDate = date
	if in.Operator != "" {
		row.Operator = in.Operator
	}
	row.Notes = in.Notes
	if err := uc.repo.Update(row); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete borra la entrada. El inventario derivado la deja de contar
// en la siguiente lectura, sin compensaciones.
func (uc *StockInUseCase) Delete(id int64) error {
	row, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if row == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toStockInResponse(r *entity.StockIn) *dto.StockInResponse {
	return &dto.StockInResponse{
		ID:          r.ID,
		PartModelID: r.PartModelID,
		ModelCode:   r.ModelCode,
		ModelName:   r.ModelName,
		Unit:        r.Unit,
		OrderID:     r.OrderID,
		OrderNumber: r.OrderNumber,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TotalAmount: r.TotalAmount,
		StockInDate: r.StockInDate,
		Operator:    r.Operator,
		Notes:       r.Notes,
	}
}
