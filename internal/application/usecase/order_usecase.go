package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes de compra.
//
// Invariante: total_amount de la orden es siempre Σ total_price de sus líneas
// vigentes. Cada mutación de líneas recalcula el total como suma (nunca
// incremento ad hoc) dentro de la misma transacción.
type OrderUseCase struct {
	txRunner OrderTxRunner
	repo     repository.OrderRepository
	partRepo repository.PartModelRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner OrderTxRunner, repo repository.OrderRepository, partRepo repository.PartModelRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, repo: repo, partRepo: partRepo}
}

// Create crea la orden con sus líneas iniciales en una sola transacción.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	in.OrderNumber = strings.TrimSpace(in.OrderNumber)
	if in.OrderNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	orderDate, err := parseDate(in.OrderDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNumber(in.OrderNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		OrderNumber: in.OrderNumber,
		OrderDate:   orderDate,
		Supplier:    in.Supplier,
		Status:      status,
		TotalAmount: decimal.Zero,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	items := make([]*entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		item, err := uc.buildItem(order.ID, it)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	err = uc.txRunner.Run(ctx, func(orders repository.OrderRepository) error {
		if err := orders.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			if err := orders.CreateItem(item); err != nil {
				return err
			}
		}
		return uc.recalculateTotal(orders, order.ID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(order.ID)
}

// GetByID obtiene la orden con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order, true), nil
}

// List devuelve una página de órdenes (sin líneas).
func (uc *OrderUseCase) List(ctx context.Context, filter repository.OrderFilter) (*dto.OrderListResponse, error) {
	filter.Normalize()
	total, orders, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o, false))
	}
	return &dto.OrderListResponse{
		Orders: out,
		Meta:   dto.PageResponse{Page: filter.Page, PageSize: filter.PageSize, Total: total},
	}, nil
}

// Update actualiza la cabecera (fecha, proveedor, estado, notas). El total no
// se toca aquí: solo lo mueven las líneas.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.OrderDate != "" {
		orderDate, err := parseDate(in.OrderDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		order.OrderDate = orderDate
	}
	if in.Status != "" {
		if !entity.ValidOrderStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = in.Status
	}
	order.Supplier = in.Supplier
	order.Notes = in.Notes
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina la orden y sus líneas atómicamente.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(orders repository.OrderRepository) error {
		if err := orders.DeleteItemsByOrder(id); err != nil {
			return err
		}
		return orders.Delete(id)
	})
}

// AddItem agrega una línea y recalcula el total en la misma transacción.
func (uc *OrderUseCase) AddItem(ctx context.Context, orderID string, in dto.OrderItemRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	item, err := uc.buildItem(orderID, in)
	if err != nil {
		return nil, err
	}
	err = uc.txRunner.Run(ctx, func(orders repository.OrderRepository) error {
		if err := orders.CreateItem(item); err != nil {
			return err
		}
		return uc.recalculateTotal(orders, orderID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(orderID)
}

// UpdateItem reemplaza cantidad/precio de una línea y recalcula el total.
func (uc *OrderUseCase) UpdateItem(ctx context.Context, orderID, itemID string, in dto.OrderItemRequest) (*dto.OrderResponse, error) {
	item, err := uc.repo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrderID != orderID {
		return nil, domain.ErrNotFound
	}
	updated, err := uc.buildItem(orderID, in)
	if err != nil {
		return nil, err
	}
	updated.ID = item.ID
	err = uc.txRunner.Run(ctx, func(orders repository.OrderRepository) error {
		if err := orders.UpdateItem(updated); err != nil {
			return err
		}
		return uc.recalculateTotal(orders, orderID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(orderID)
}

// RemoveItem borra una línea y recalcula el total.
func (uc *OrderUseCase) RemoveItem(ctx context.Context, orderID, itemID string) (*dto.OrderResponse, error) {
	item, err := uc.repo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.OrderID != orderID {
		return nil, domain.ErrNotFound
	}
	err = uc.txRunner.Run(ctx, func(orders repository.OrderRepository) error {
		if err := orders.DeleteItem(itemID); err != nil {
			return err
		}
		return uc.recalculateTotal(orders, orderID)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(orderID)
}

// buildItem valida la línea y calcula total_price = quantity * unit_price.
func (uc *OrderUseCase) buildItem(orderID string, in dto.OrderItemRequest) (*entity.OrderItem, error) {
	if in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	part, err := uc.partRepo.GetByID(in.PartModelID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return &entity.OrderItem{
		ID:          uuid.New().String(),
		OrderID:     orderID,
		PartModelID: part.ID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		TotalPrice:  in.UnitPrice.Mul(decimal.NewFromInt(in.Quantity)),
	}, nil
}

// recalculateTotal persiste total = Σ total_price de las líneas vigentes.
func (uc *OrderUseCase) recalculateTotal(orders repository.OrderRepository, orderID string) error {
	total, err := orders.SumItemsTotal(orderID)
	if err != nil {
		return err
	}
	return orders.UpdateTotalAmount(orderID, total)
}

func toOrderResponse(o *entity.Order, withItems bool) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		OrderDate:   o.OrderDate,
		Supplier:    o.Supplier,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if withItems {
		resp.Items = make([]dto.OrderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			resp.Items = append(resp.Items, dto.OrderItemResponse{
				ID:          it.ID,
				PartModelID: it.PartModelID,
				ModelCode:   it.ModelCode,
				ModelName:   it.ModelName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				TotalPrice:  it.TotalPrice,
			})
		}
	}
	return resp
}
