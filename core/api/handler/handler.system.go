package handler

import (
	"fmt"

	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/dataset"

	"github.com/gofiber/fiber/v3"
)

// SystemHandler xử lý health check và fallback
type SystemHandler struct {
	store *dataset.Store
}

// NewSystemHandler tạo mới SystemHandler
func NewSystemHandler(store *dataset.Store) *SystemHandler {
	return &SystemHandler{store: store}
}

// HandleHealth trả về trạng thái server và danh sách dataset đã nạp.
//
// Endpoint: GET /
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"datasets": h.store.Names(),
		})
	})
}

// HandleNotFound là fallback cho mọi route chưa đăng ký, echo lại path.
func (h *SystemHandler) HandleNotFound(c fiber.Ctx) error {
	return SafeHandlerWrapper(c, func() error {
		return common.NewError(
			common.ErrCodeQueryNotFound,
			fmt.Sprintf("Cannot %s %s", c.Method(), c.Path()),
			common.StatusNotFound,
			nil,
		)
	})
}
