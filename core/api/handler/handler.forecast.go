package handler

import (
	"github.com/shrijitmore/demand-forecasting/core/api/dto"
	"github.com/shrijitmore/demand-forecasting/core/api/services"
	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/dataset"

	"github.com/gofiber/fiber/v3"
)

// ForecastHandler xử lý các endpoint forecast và bullet insight theo tháng
type ForecastHandler struct {
	service *services.ForecastService
}

// NewForecastHandler tạo mới ForecastHandler
func NewForecastHandler(service *services.ForecastService) *ForecastHandler {
	return &ForecastHandler{service: service}
}

// HandleForecasts trả về các record forecast đã lọc.
//
// Endpoint: GET /api/forecasts?PRODUCT_CARD_ID=...&PRODUCT_NAME=...
func (h *ForecastHandler) HandleForecasts(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		var q dto.ForecastQuery
		if err := parseQuery(c, &q); err != nil {
			return err
		}
		return c.JSON(h.service.Forecasts(q))
	})
}

// HandleAggregate trả về forecast gom theo kỳ lịch.
//
// Endpoint: GET /api/forecasts/:granularity (weekly|monthly|quarterly)
func (h *ForecastHandler) HandleAggregate(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		var p dto.AggregatePath
		if err := parseParams(c, &p); err != nil {
			return err
		}
		granularity, ok := dataset.ParseGranularity(p.Granularity)
		if !ok {
			return common.NewError(
				common.ErrCodeValidationInput,
				"Unknown granularity. Supported: weekly, monthly, quarterly",
				common.StatusBadRequest,
				nil,
			)
		}

		var q dto.ForecastQuery
		if err := parseQuery(c, &q); err != nil {
			return err
		}
		return c.JSON(h.service.Aggregate(granularity, q))
	})
}

// HandleInsights trả về bullet insights theo tháng, lọc theo query.
//
// Endpoint: GET /api/insights?Month=...&PRODUCT_CARD_ID=...&PRODUCT_NAME=...
//
// Route gốc từng đăng ký /api/insights hai lần (bullet insights và operator
// insights) — chỉ handler đăng ký sau là reachable. Ở đây mỗi concern có path
// riêng: bullet insights giữ /api/insights, operator insights nằm ở
// /api/insights1/:operator_id.
func (h *ForecastHandler) HandleInsights(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		var q dto.ForecastQuery
		if err := parseQuery(c, &q); err != nil {
			return err
		}
		return c.JSON(h.service.Insights(q))
	})
}

// HandleProducts trả về các cặp sản phẩm distinct cho dropdown.
//
// Endpoint: GET /api/products
func (h *ForecastHandler) HandleProducts(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.Products())
	})
}
