// Package analytics arma las vistas del tablero: tarjetas de totales,
// actividad reciente, consumo por departamento y tendencia mensual.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/domain/entity"
	invdomain "github.com/Wesley1888/InvenMate/internal/domain/inventory"
	"github.com/Wesley1888/InvenMate/internal/domain/repository"
)

// DefaultActivityLimit tope del widget de actividad cuando el cliente no pide otro.
const DefaultActivityLimit = 10

// DashboardUseCase consultas agregadas del tablero.
type DashboardUseCase struct {
	partRepo     repository.PartModelRepository
	orderRepo    repository.OrderRepository
	stockInRepo  repository.StockInRepository
	stockOutRepo repository.StockOutRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	partRepo repository.PartModelRepository,
	orderRepo repository.OrderRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		partRepo:     partRepo,
		orderRepo:    orderRepo,
		stockInRepo:  stockInRepo,
		stockOutRepo: stockOutRepo,
	}
}

// GetStatistics arma las tarjetas del tablero. Los conteos y la carga del
// libro corren en paralelo; el primero que falle aborta la respuesta.
func (uc *DashboardUseCase) GetStatistics(ctx context.Context) (*dto.StatisticsDTO, error) {
	type countResult struct {
		n   int64
		err error
	}
	type ledgerResult struct {
		parts []*entity.PartModel
		ins   []*entity.StockIn
		outs  []*entity.StockOut
		err   error
	}

	partCh := make(chan countResult, 1)
	orderCh := make(chan countResult, 1)
	ledgerCh := make(chan ledgerResult, 1)

	go func() {
		n, err := uc.partRepo.Count(ctx)
		partCh <- countResult{n: n, err: err}
	}()
	go func() {
		n, err := uc.orderRepo.Count(ctx)
		orderCh <- countResult{n: n, err: err}
	}()
	go func() {
		parts, err := uc.partRepo.List(ctx, "", "")
		if err != nil {
			ledgerCh <- ledgerResult{err: err}
			return
		}
		ins, err := uc.stockInRepo.ListAll(ctx)
		if err != nil {
			ledgerCh <- ledgerResult{err: err}
			return
		}
		outs, err := uc.stockOutRepo.ListAll(ctx)
		ledgerCh <- ledgerResult{parts: parts, ins: ins, outs: outs, err: err}
	}()

	partRes := <-partCh
	orderRes := <-orderCh
	ledgerRes := <-ledgerCh
	if partRes.err != nil {
		return nil, partRes.err
	}
	if orderRes.err != nil {
		return nil, orderRes.err
	}
	if ledgerRes.err != nil {
		return nil, ledgerRes.err
	}

	inMonth, outMonth := invdomain.MonthlyTotals(ledgerRes.ins, ledgerRes.outs, time.Now())

	insByPart := make(map[string][]*entity.StockIn)
	for _, row := range ledgerRes.ins {
		insByPart[row.PartModelID] = append(insByPart[row.PartModelID], row)
	}
	outsByPart := make(map[string][]*entity.StockOut)
	for _, row := range ledgerRes.outs {
		outsByPart[row.PartModelID] = append(outsByPart[row.PartModelID], row)
	}
	lowStock := 0
	for _, part := range ledgerRes.parts {
		snap := invdomain.Aggregate(part, insByPart[part.ID], outsByPart[part.ID])
		if invdomain.BelowThreshold(snap) {
			lowStock++
		}
	}

	return &dto.StatisticsDTO{
		TotalParts:            partRes.n,
		TotalOrders:           orderRes.n,
		TotalStockInThisMonth: inMonth,
		TotalStockOutMonth:    outMonth,
		LowStockItems:         lowStock,
	}, nil
}

// GetRecentActivity fusiona entradas y salidas en orden de fecha descendente.
func (uc *DashboardUseCase) GetRecentActivity(ctx context.Context, limit int) ([]dto.ActivityEntryDTO, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	ins, err := uc.stockInRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	outs, err := uc.stockOutRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := invdomain.MergeRecentActivity(ins, outs, limit)
	out := make([]dto.ActivityEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ActivityEntryDTO{
			Type:     e.Type,
			RecordID: e.RecordID,
			PartName: e.PartName,
			Quantity: e.Quantity,
			Date:     e.Date,
			Operator: e.Operator,
		})
	}
	return out, nil
}

// GetDepartmentStats agrupa las salidas por departamento dentro del rango
// [from, to] (los extremos nulos no acotan). Ordena por cantidad descendente.
func (uc *DashboardUseCase) GetDepartmentStats(ctx context.Context, from, to *time.Time) ([]dto.DepartmentStatDTO, error) {
	outs, err := uc.stockOutRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type acc struct {
		qty   int64
		value decimal.Decimal
	}
	byDept := make(map[string]*acc)
	for _, row := range outs {
		if from != nil && row.StockOutDate.Before(*from) {
			continue
		}
		// Tope inclusivo por día: una salida con hora dentro del día de
		// `to` sigue dentro del rango.
		if to != nil && !row.StockOutDate.Before(repository.EndOfDayExclusive(*to)) {
			continue
		}
		dept := row.Department
		if dept == "" {
			dept = "sin departamento"
		}
		a, ok := byDept[dept]
		if !ok {
			a = &acc{value: decimal.Zero}
			byDept[dept] = a
		}
		a.qty += row.Quantity
		amount := row.TotalAmount
		if amount.IsZero() {
			amount = decimal.NewFromInt(row.Quantity).Mul(row.UnitPrice)
		}
		a.value = a.value.Add(amount)
	}

	stats := make([]dto.DepartmentStatDTO, 0, len(byDept))
	for dept, a := range byDept {
		stats = append(stats, dto.DepartmentStatDTO{
			Department: dept,
			Quantity:   a.qty,
			TotalValue: a.value,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Quantity != stats[j].Quantity {
			return stats[i].Quantity > stats[j].Quantity
		}
		return stats[i].Department < stats[j].Department
	})
	return stats, nil
}

// GetMonthlyTrend totales de entrada/salida de los últimos months meses
// calendario, el más antiguo primero.
func (uc *DashboardUseCase) GetMonthlyTrend(ctx context.Context, months int) ([]dto.MonthlyTrendDTO, error) {
	if months <= 0 {
		months = 6
	}
	ins, err := uc.stockInRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	outs, err := uc.stockOutRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trend := make([]dto.MonthlyTrendDTO, 0, months)
	for i := months - 1; i >= 0; i-- {
		ref := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		inQty, outQty := invdomain.MonthlyTotals(ins, outs, ref)
		trend = append(trend, dto.MonthlyTrendDTO{
			Month:       ref.Format("2006-01"),
			InQuantity:  inQty,
			OutQuantity: outQty,
		})
	}
	return trend, nil
}
