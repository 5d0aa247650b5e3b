package handler

import (
	"fmt"

	"github.com/shrijitmore/demand-forecasting/core/api/services"
	"github.com/shrijitmore/demand-forecasting/core/common"

	"github.com/gofiber/fiber/v3"
)

// SupplierHandler xử lý các endpoint KPI và cross-dataset join của nhà cung cấp
type SupplierHandler struct {
	service *services.SupplierService
}

// NewSupplierHandler tạo mới SupplierHandler
func NewSupplierHandler(service *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

// HandleEndpoint trả về một variant KPI của nhà cung cấp.
//
// Endpoint: GET /api/suppliers/:endpoint/:supplier
// endpoint ∈ {kpis, metrics, delivery-stats}; tên khác → 400.
// Supplier không tồn tại → 404 {"error": "<name> not found"}.
func (h *SupplierHandler) HandleEndpoint(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		endpoint := c.Params("endpoint")
		supplier := c.Params("supplier")

		var result interface{}
		var err error
		switch endpoint {
		case "kpis":
			result, err = h.service.KPIs(supplier)
		case "metrics":
			result, err = h.service.Metrics(supplier)
		case "delivery-stats":
			result, err = h.service.DeliveryStats(supplier)
		default:
			return common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Unknown supplier endpoint '%s'. Supported: kpis, metrics, delivery-stats", endpoint),
				common.StatusBadRequest,
				nil,
			)
		}
		if err != nil {
			return err
		}
		return c.JSON(result)
	})
}

// HandleList trả về tên các nhà cung cấp distinct đã sort.
//
// Endpoint: GET /api/suppliers/list
func (h *SupplierHandler) HandleList(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.List())
	})
}

// HandleAlternates resolve supplier → SKU → các nhà cung cấp thay thế.
//
// Endpoint: GET /api/suppliers/alternates/:supplier
// Supplier không tồn tại → 404 {"error": "<name> not found"}.
func (h *SupplierHandler) HandleAlternates(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		alternates, err := h.service.Alternates(c.Params("supplier"))
		if err != nil {
			return err
		}
		return c.JSON(alternates)
	})
}

// HandleInsight resolve identifier (tên supplier hoặc SKU) → insight text.
//
// Endpoint: GET /api/suppliers/insight/:identifier
func (h *SupplierHandler) HandleInsight(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		insight, err := h.service.Insight(c.Params("identifier"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"insight": insight})
	})
}
