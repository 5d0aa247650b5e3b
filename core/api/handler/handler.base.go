// Package handler chứa các handler xử lý request HTTP của API phân tích.
// Handler chỉ parse request, gọi service tương ứng và serialize kết quả —
// toàn bộ logic tổng hợp nằm ở tầng service / dataset engine.
package handler

import (
	"errors"

	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/global"
	"github.com/shrijitmore/demand-forecasting/core/logger"

	"github.com/gofiber/fiber/v3"
)

// SafeHandlerWrapper bọc handler function để không lỗi tính toán nào
// thoát qua request boundary dưới dạng unhandled fault.
// Lỗi trả về được chuyển thành JSON error payload qua respondError.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	if err := fn(); err != nil {
		return respondError(c, err)
	}
	return nil
}

// respondError chuyển error thành JSON response {"error": message}.
// *common.Error mang sẵn HTTP status của nó — kể cả status 200 cho các
// endpoint legacy trả lỗi trong body (hành vi client đang phụ thuộc,
// không unify). Error lạ → 500, log đầy đủ.
func respondError(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		if appErr.StatusCode >= common.StatusInternalServerError {
			logger.WithRequest(c).WithError(err).Error("Request failed")
		}
		return c.Status(appErr.StatusCode).JSON(fiber.Map{
			"error": appErr.Message,
		})
	}

	logger.WithRequest(c).WithError(err).Error("Unexpected handler error")
	return c.Status(common.StatusInternalServerError).JSON(fiber.Map{
		"error": common.MsgInternalError,
	})
}

// parseQuery bind query string vào struct và validate.
// Lỗi bind/validate → lỗi 400 theo format chung.
func parseQuery(c fiber.Ctx, out interface{}) error {
	if err := c.Bind().Query(out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	if err := global.Validate.Struct(out); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// parseParams bind URI params vào struct và validate.
// Lỗi bind/validate → lỗi 400 theo format chung.
func parseParams(c fiber.Ctx, out interface{}) error {
	if err := c.Bind().URI(out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	if err := global.Validate.Struct(out); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}
