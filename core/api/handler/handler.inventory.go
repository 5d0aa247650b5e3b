package handler

import (
	"github.com/shrijitmore/demand-forecasting/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// InventoryHandler xử lý các endpoint tồn kho
type InventoryHandler struct {
	service *services.InventoryService
}

// NewInventoryHandler tạo mới InventoryHandler
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// HandleKPIs trả về snapshot KPI tồn kho.
//
// Endpoint: GET /api/inventory/kpis
// Endpoint legacy: lỗi calculator trả về HTTP 200 với body {"error": ...}.
func (h *InventoryHandler) HandleKPIs(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		kpi, err := h.service.KPIs()
		if err != nil {
			return err
		}
		return c.JSON(kpi)
	})
}

// HandleReorderChart trả về dữ liệu biểu đồ reorder (Available vs Reorder_Point).
//
// Endpoint: GET /api/inventory/reorder_chart
func (h *InventoryHandler) HandleReorderChart(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.ReorderChart())
	})
}

// HandleLeadTimes trả về lead time theo SKU.
//
// Endpoint: GET /api/inventory/lead_times
func (h *InventoryHandler) HandleLeadTimes(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.LeadTimes())
	})
}

// HandleSuppliers trả về danh sách nhà cung cấp distinct từ stock_levels.
//
// Endpoint: GET /api/inventory/suppliers
func (h *InventoryHandler) HandleSuppliers(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.SupplierNames())
	})
}

// HandleDataset dump nguyên trạng một dataset tồn kho.
//
// Endpoint: GET /api/inventory/:dataset
// Dataset ∈ {stock_levels, alerts, bom, mrp_plan, production_orders,
// schedule, station_schedule}; tên khác → 400.
func (h *InventoryHandler) HandleDataset(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		records, err := h.service.RawDataset(c.Params("dataset"))
		if err != nil {
			return err
		}
		return c.JSON(records)
	})
}
