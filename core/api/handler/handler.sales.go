package handler

import (
	"github.com/shrijitmore/demand-forecasting/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// SalesHandler xử lý các endpoint KPI và breakdown bán hàng
type SalesHandler struct {
	service *services.SalesService
}

// NewSalesHandler tạo mới SalesHandler
func NewSalesHandler(service *services.SalesService) *SalesHandler {
	return &SalesHandler{service: service}
}

// HandleKPIs trả về snapshot KPI bán hàng.
//
// Endpoint: GET /api/sales/kpis
//
// Endpoint legacy: lỗi calculator trả về HTTP 200 với body {"error": ...}
// (dashboard cũ đọc lỗi từ body, không đọc status code).
func (h *SalesHandler) HandleKPIs(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		kpi, err := h.service.KPIs()
		if err != nil {
			return err
		}
		return c.JSON(kpi)
	})
}

// HandleMetric trả về một breakdown bán hàng theo tên metric.
//
// Endpoint: GET /api/sales/:metric
// Metric ∈ {city-sales, category-distribution, monthly-sales, shipping-mode,
// region-sales, top-products}; tên khác → 400.
func (h *SalesHandler) HandleMetric(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		result, err := h.service.Metric(c.Params("metric"))
		if err != nil {
			return err
		}
		return c.JSON(result)
	})
}
