package handler

import (
	"github.com/shrijitmore/demand-forecasting/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// ProcurementHandler xử lý các endpoint đơn mua hàng
type ProcurementHandler struct {
	service *services.ProcurementService
}

// NewProcurementHandler tạo mới ProcurementHandler
func NewProcurementHandler(service *services.ProcurementService) *ProcurementHandler {
	return &ProcurementHandler{service: service}
}

// HandleAll trả về toàn bộ bản ghi procurement theo thứ tự file gốc.
//
// Endpoint: GET /api/procurement/insights
func (h *ProcurementHandler) HandleAll(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.All())
	})
}

// HandleInsight trả về các bản ghi procurement khớp chính xác SKU.
//
// Endpoint: GET /api/procurement/insight/:sku_id
// Không có bản ghi nào khớp → 404 echo lại SKU.
func (h *ProcurementHandler) HandleInsight(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		records, err := h.service.InsightBySKU(c.Params("sku_id"))
		if err != nil {
			return err
		}
		return c.JSON(records)
	})
}
