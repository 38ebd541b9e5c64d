package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wesley1888/InvenMate/internal/application/analytics"
)

// DashboardHandler expone las consultas del tablero (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Statistics godoc
// @Summary      Tarjetas del tablero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatisticsDTO
// @Router       /api/dashboard/statistics [get]
func (h *DashboardHandler) Statistics(c *fiber.Ctx) error {
	out, err := h.uc.GetStatistics(c.Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// RecentActivity godoc
// @Summary      Actividad reciente del libro (entradas y salidas fusionadas)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de eventos"  default(10)
// @Success      200  {array}  dto.ActivityEntryDTO
// @Router       /api/dashboard/recent-activity [get]
func (h *DashboardHandler) RecentActivity(c *fiber.Ctx) error {
	out, err := h.uc.GetRecentActivity(c.Context(), c.QueryInt("limit", analytics.DefaultActivityLimit))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// DepartmentStats godoc
// @Summary      Salidas agrupadas por departamento en un rango de fechas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        date_from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to    query  string  false  "Hasta inclusive (YYYY-MM-DD)"
// @Success      200  {array}  dto.DepartmentStatDTO
// @Router       /api/dashboard/department-stats [get]
func (h *DashboardHandler) DepartmentStats(c *fiber.Ctx) error {
	out, err := h.uc.GetDepartmentStats(c.Context(), queryDate(c, "date_from"), queryDate(c, "date_to"))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}

// MonthlyTrend godoc
// @Summary      Totales mensuales de entrada/salida, el más antiguo primero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "Cantidad de meses"  default(6)
// @Success      200  {array}  dto.MonthlyTrendDTO
// @Router       /api/dashboard/monthly-trend [get]
func (h *DashboardHandler) MonthlyTrend(c *fiber.Ctx) error {
	out, err := h.uc.GetMonthlyTrend(c.Context(), c.QueryInt("months", 6))
	if err != nil {
		return handleDomainError(c, err)
	}
	return c.JSON(out)
}
