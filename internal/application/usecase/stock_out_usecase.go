package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// StockOutUseCase casos de uso del libro de salidas.
type StockOutUseCase struct {
	repo     repository.StockOutRepository
	partRepo repository.PartModelRepository
}

// NewStockOutUseCase construye el caso de uso.
func NewStockOutUseCase(repo repository.StockOutRepository, partRepo repository.PartModelRepository) *StockOutUseCase {
	return &StockOutUseCase{repo: repo, partRepo: partRepo}
}

// Create registra una salida. No se valida contra el stock vigente: el
// libro es histórico y el agregado marca los modelos sobregirados al leer.
func (uc *StockOutUseCase) Create(in dto.CreateStockOutRequest, operator string) (*dto.StockOutResponse, error) {
	if in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Recipient) == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.StockOutDate)
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

	row := &entity.StockOut{
		PartModelID:  part.ID,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		TotalAmount:  total,
		Recipient:    in.Recipient,
		Department:   in.Department,
		StockOutDate: date,
		Operator:     operator,
		Notes:        in.Notes,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(row); err != nil {
		return nil, err
	}
	return uc.GetByID(row.ID)
}

// GetByID obtiene una salida por su ID numérico.
func (uc *StockOutUseCase) GetByID(id int64) (*dto.StockOutResponse, error) {
	row, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return toStockOutResponse(row), nil
}

// List filtra el libro de salidas con paginación.
func (uc *StockOutUseCase) List(ctx context.Context, filter repository.StockOutFilter) (*dto.StockOutListResponse, error) {
	filter.Normalize()
	total, rows, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockOutResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, *toStockOutResponse(r))
	}
	return &dto.StockOutListResponse{
		Rows: out,
		Meta: dto.PageResponse{Page: filter.Page, PageSize: filter.PageSize, Total: total},
	}, nil
}

// Update corrige una salida existente.
func (uc *StockOutUseCase) Update(id int64, in dto.CreateStockOutRequest) (*dto.StockOutResponse, error) {
	row, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity <= 0 || in.UnitPrice.IsNegative() || strings.TrimSpace(in.Recipient) == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := parseDate(in.StockOutDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	row.Quantity = in.Quantity
	row.UnitPrice = in.UnitPrice
	row.TotalAmount = decimal.NewFromInt(in.Quantity).Mul(in.UnitPrice)
	if in.TotalAmount != nil && !in.TotalAmount.IsNegative() {
		row.TotalAmount = *in.TotalAmount
	}
	row.Recipient = in.Recipient
	row.Department = in.Department
	row.StockOutDate = date
	if in.Operator != "" {
		row.Operator = in.Operator
	}
	row.Notes = in.Notes
	if err := uc.repo.Update(row); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete borra la salida del libro.
func (uc *StockOutUseCase) Delete(id int64) error {
	row, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if row == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toStockOutResponse(r *entity.StockOut) *dto.StockOutResponse {
	return &dto.StockOutResponse{
		ID:           r.ID,
		PartModelID:  r.PartModelID,
		ModelCode:    r.ModelCode,
		ModelName:    r.ModelName,
		Unit:         r.Unit,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice,
		TotalAmount:  r.TotalAmount,
		Recipient:    r.Recipient,
		Department:   r.Department,
		StockOutDate: r.StockOutDate,
		Operator:     r.Operator,
		Notes:        r.Notes,
	}
}
