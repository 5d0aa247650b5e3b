package handler

import (
	"github.com/shrijitmore/demand-forecasting/core/api/services"
	"github.com/shrijitmore/demand-forecasting/core/common"

	"github.com/gofiber/fiber/v3"
)

// ProductionHandler xử lý các endpoint KPI sản xuất, lịch trạm,
// chuyên cần và insight operator
type ProductionHandler struct {
	service *services.ProductionService
}

// NewProductionHandler tạo mới ProductionHandler
func NewProductionHandler(service *services.ProductionService) *ProductionHandler {
	return &ProductionHandler{service: service}
}

// HandleKPIs trả về snapshot KPI sản xuất / vận hành.
//
// Endpoint: GET /api/kpis
// Endpoint legacy: lỗi calculator trả về HTTP 200 với body {"error": ...}.
func (h *ProductionHandler) HandleKPIs(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		kpi, err := h.service.KPIs()
		if err != nil {
			return err
		}
		return c.JSON(kpi)
	})
}

// HandleSchedule trả về toàn bộ lịch trạm.
//
// Endpoint: GET /api/schedule
func (h *ProductionHandler) HandleSchedule(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.ScheduleAll())
	})
}

// HandleScheduleChart trả về tổng units theo trạm.
//
// Endpoint: GET /api/schedule/chart
func (h *ProductionHandler) HandleScheduleChart(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.ScheduleChart())
	})
}

// HandleOperatorWorkload trả về tổng units theo operator.
//
// Endpoint: GET /api/schedule/operator_workload
func (h *ProductionHandler) HandleOperatorWorkload(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.OperatorWorkload())
	})
}

// HandleAttendance trả về attendance sắp xếp theo ngày tăng dần.
//
// Endpoint: GET /api/attendance
func (h *ProductionHandler) HandleAttendance(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.AttendanceSorted())
	})
}

// HandleAttendanceTable trả về attendance dạng bảng cho dashboard.
//
// Endpoint: GET /api/attendance/table
func (h *ProductionHandler) HandleAttendanceTable(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		records := h.service.AttendanceSorted()
		return c.JSON(fiber.Map{
			"rows":  records,
			"count": len(records),
		})
	})
}

// HandleLeaves trả về toàn bộ đơn nghỉ phép.
//
// Endpoint: GET /api/leaves
func (h *ProductionHandler) HandleLeaves(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.Leaves())
	})
}

// HandleOperatorInsight tra cứu insight AI của một operator.
//
// Endpoint: GET /api/insights1/:operator_id
//
// Endpoint legacy: không tìm thấy trả về HTTP 200 với message trong body
// (khác với các lookup 404 khác — client cũ phụ thuộc, giữ nguyên).
func (h *ProductionHandler) HandleOperatorInsight(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		matches, err := h.service.OperatorInsight(c.Params("operator_id"))
		if err != nil {
			return c.Status(common.StatusOK).JSON(fiber.Map{
				"message": err.Error(),
				"data":    []interface{}{},
			})
		}
		return c.JSON(matches)
	})
}

// HandleOperatorsDropdown trả về danh sách operator id distinct đã sort.
//
// Endpoint: GET /api/operators/dropdown
func (h *ProductionHandler) HandleOperatorsDropdown(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(h.service.OperatorsDropdown())
	})
}
