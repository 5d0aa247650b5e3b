package handler

import (
	"github.com/shrijitmore/demand-forecasting/core/api/dto"
	"github.com/shrijitmore/demand-forecasting/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// InsightHandler xử lý các endpoint AI insight lịch sử
type InsightHandler struct {
	service *services.InsightService
}

// NewInsightHandler tạo mới InsightHandler
func NewInsightHandler(service *services.InsightService) *InsightHandler {
	return &InsightHandler{service: service}
}

// HandleHistorical trả về dump insight theo chu kỳ.
//
// Endpoint: GET /api/insights/:period
// period ∈ {monthly, quarterly, yearly}; giá trị khác → 400.
func (h *InsightHandler) HandleHistorical(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		var p dto.HistoricalPath
		if err := parseParams(c, &p); err != nil {
			return err
		}
		records, err := h.service.Historical(p.Period)
		if err != nil {
			return err
		}
		return c.JSON(records)
	})
}
