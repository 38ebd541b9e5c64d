package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/domain"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// fakeOrderRepo repositorio de órdenes en memoria para pruebas.
type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  map[string]*entity.OrderItem

	getByNumberErr error // si está definido, GetByNumber lo devuelve
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[string]*entity.Order),
		items:  make(map[string]*entity.OrderItem),
	}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Items = nil
	for _, it := range f.items {
		if it.OrderID == id {
			itCp := *it
			cp.Items = append(cp.Items, &itCp)
		}
	}
	return &cp, nil
}

func (f *fakeOrderRepo) GetByNumber(number string) (*entity.Order, error) {
	if f.getByNumberErr != nil {
		return nil, f.getByNumberErr
	}
	for _, o := range f.orders {
		if o.OrderNumber == number {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) Update(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) Delete(id string) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context, _ repository.OrderFilter) (int, []*entity.Order, error) {
	out := make([]*entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		cp := *o
		out = append(out, &cp)
	}
	return len(out), out, nil
}

func (f *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) CreateItem(it *entity.OrderItem) error {
	cp := *it
	f.items[it.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetItem(id string) (*entity.OrderItem, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (f *fakeOrderRepo) UpdateItem(it *entity.OrderItem) error {
	cp := *it
	f.items[it.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) DeleteItem(id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeOrderRepo) DeleteItemsByOrder(orderID string) error {
	for id, it := range f.items {
		if it.OrderID == orderID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeOrderRepo) SumItemsTotal(orderID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, it := range f.items {
		if it.OrderID == orderID {
			total = total.Add(it.TotalPrice)
		}
	}
	return total, nil
}

func (f *fakeOrderRepo) UpdateTotalAmount(orderID string, total decimal.Decimal) error {
	o, ok := f.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	o.TotalAmount = total
	return nil
}

// fakePartRepo catálogo mínimo en memoria.
type fakePartRepo struct {
	parts map[string]*entity.PartModel

	getByCodeErr error // si está definido, GetByCode lo devuelve
}

func newFakePartRepo(parts ...*entity.PartModel) *fakePartRepo {
	f := &fakePartRepo{parts: make(map[string]*entity.PartModel)}
	for _, p := range parts {
		f.parts[p.ID] = p
	}
	return f
}

func (f *fakePartRepo) Create(p *entity.PartModel) error { f.parts[p.ID] = p; return nil }
func (f *fakePartRepo) GetByID(id string) (*entity.PartModel, error) {
	p, ok := f.parts[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (f *fakePartRepo) GetByCode(code string) (*entity.PartModel, error) {
	if f.getByCodeErr != nil {
		return nil, f.getByCodeErr
	}
	for _, p := range f.parts {
		if p.ModelCode == code {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakePartRepo) Update(p *entity.PartModel) error { f.parts[p.ID] = p; return nil }
func (f *fakePartRepo) Delete(id string) error           { delete(f.parts, id); return nil }
func (f *fakePartRepo) List(_ context.Context, _, _ string) ([]*entity.PartModel, error) {
	out := make([]*entity.PartModel, 0, len(f.parts))
	for _, p := range f.parts {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakePartRepo) CountReferences(_ context.Context, _ string) (int64, error) { return 0, nil }
func (f *fakePartRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.parts)), nil
}

// fakeTxRunner ejecuta fn sin transacción real, sobre el mismo repo en memoria.
type fakeTxRunner struct {
	repo repository.OrderRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(orders repository.OrderRepository) error) error {
	return fn(f.repo)
}

func newOrderUseCaseForTest() (*OrderUseCase, *fakeOrderRepo) {
	repo := newFakeOrderRepo()
	parts := newFakePartRepo(&entity.PartModel{ID: "pm-1", ModelCode: "CPU-001", ModelName: "Procesador X1", Unit: "pieza"})
	return NewOrderUseCase(&fakeTxRunner{repo: repo}, repo, parts), repo
}

func TestOrderCreate_TotalEsSumaDeLineas(t *testing.T) {
	uc, _ := newOrderUseCaseForTest()

	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderNumber: "PO-2024-001",
		OrderDate:   "2024-01-15",
		Supplier:    "Proveedor Norte",
		Items: []dto.OrderItemRequest{
			{PartModelID: "pm-1", Quantity: 5, UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(500)),
		"total esperado 500, got %s", resp.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
}

func TestOrderAddItem_RecalculaTotalComoSuma(t *testing.T) {
	uc, _ := newOrderUseCaseForTest()

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderNumber: "PO-2024-002",
		OrderDate:   "2024-01-15",
		Items: []dto.OrderItemRequest{
			{PartModelID: "pm-1", Quantity: 5, UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)

	resp, err := uc.AddItem(context.Background(), created.ID, dto.OrderItemRequest{
		PartModelID: "pm-1", Quantity: 2, UnitPrice: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(700)),
		"500 + 200 = 700, got %s", resp.TotalAmount)
}

func TestOrderRemoveItem_TotalVuelveASumaVigente(t *testing.T) {
	uc, _ := newOrderUseCaseForTest()

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderNumber: "PO-2024-003",
		OrderDate:   "2024-01-15",
		Items: []dto.OrderItemRequest{
			{PartModelID: "pm-1", Quantity: 5, UnitPrice: decimal.NewFromInt(100)},
			{PartModelID: "pm-1", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Items, 2)

	var removeID string
	for _, it := range created.Items {
		if it.Quantity == 2 {
			removeID = it.ID
		}
	}
	require.NotEmpty(t, removeID)

	resp, err := uc.RemoveItem(context.Background(), created.ID, removeID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(500)))
}

func TestOrderCreate_NumeroDuplicado(t *testing.T) {
	uc, _ := newOrderUseCaseForTest()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderNumber: "PO-2024-010",
		OrderDate:   "2024-01-15",
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderNumber: "PO-2024-010",
		OrderDate:   "2024-01-16",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestOrderCreate_EstadoInvalido(t *testing.T) {
	uc, _ := newOrderUseCaseForTest()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderNumber: "PO-2024-011",
		OrderDate:   "2024-01-15",
		Status:      "archived",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdateItem_CantidadInvalida(t *testing.T) {
	uc, _ := newOrderUseCaseForTest()

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderNumber: "PO-2024-012",
		OrderDate:   "2024-01-15",
		Items: []dto.OrderItemRequest{
			{PartModelID: "pm-1", Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)

	_, err = uc.UpdateItem(context.Background(), created.ID, created.Items[0].ID, dto.OrderItemRequest{
		PartModelID: "pm-1", Quantity: 0, UnitPrice: decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderDelete_BorraLineas(t *testing.T) {
	uc, repo := newOrderUseCaseForTest()

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderNumber: "PO-2024-013",
		OrderDate:   "2024-01-15",
		Items: []dto.OrderItemRequest{
			{PartModelID: "pm-1", Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.orders)
	assert.Empty(t, repo.items)
}

func TestOrderCreate_ErrorDeConsultaSePropaga(t *testing.T) {
	uc, repo := newOrderUseCaseForTest()
	repo.getByNumberErr = errors.New("conexión perdida")

	// Una falla transitoria al verificar el número no debe caer al insert.
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderNumber: "PO-2024-014",
		OrderDate:   "2024-01-15",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, repo.orders)
}
