package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/erp-api/internal/application/analytics"
	"github.com/jhoicas/erp-api/internal/application/dto"
)

// AnalyticsHandler maneja los reportes de desempeño de ventas.
type AnalyticsHandler struct {
	uc *analytics.SalesPerformanceUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.SalesPerformanceUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// SalesPerformance godoc
// @Summary      Reporte de desempeño de ventas
// @Description  Agregación por tienda y por (tienda, producto), opcionalmente acotada
// @Description  por rango de fechas inclusivo.
// @Tags         analytics
// @Produce      json
// @Param        start_date  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200    {object}  dto.SalesPerformanceDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /sales-performance-graph [get]
func (h *AnalyticsHandler) SalesPerformance(c *fiber.Ctx) error {
	start, bad := parseDateQuery(c, "start_date")
	if bad {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválido (YYYY-MM-DD)"})
	}
	end, bad := parseDateQuery(c, "end_date")
	if bad {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválido (YYYY-MM-DD)"})
	}
	out, err := h.uc.ViewSalesPerformance(c.UserContext(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByDay godoc
// @Summary      Serie diaria de ventas
// @Tags         analytics
// @Produce      json
// @Param        start_date  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200    {array}  dto.DailySalesDTO
// @Router       /api/analytics/sales-by-day [get]
func (h *AnalyticsHandler) SalesByDay(c *fiber.Ctx) error {
	start, bad := parseDateQuery(c, "start_date")
	if bad {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválido (YYYY-MM-DD)"})
	}
	end, bad := parseDateQuery(c, "end_date")
	if bad {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválido (YYYY-MM-DD)"})
	}
	out, err := h.uc.SalesByDay(c.UserContext(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TotalSales godoc
// @Summary      Total vendido en la ventana
// @Tags         analytics
// @Produce      json
// @Param        start_date  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200    {object}  map[string]any
// @Router       /api/analytics/total-sales [get]
func (h *AnalyticsHandler) TotalSales(c *fiber.Ctx) error {
	start, bad := parseDateQuery(c, "start_date")
	if bad {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date inválido (YYYY-MM-DD)"})
	}
	end, bad := parseDateQuery(c, "end_date")
	if bad {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date inválido (YYYY-MM-DD)"})
	}
	total, err := h.uc.TotalSales(c.UserContext(), start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total_sales": total})
}
