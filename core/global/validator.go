package global

import (
	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("granularity", validateGranularity)
	_ = Validate.RegisterValidation("insight_period", validateInsightPeriod)
}

// validateGranularity kiểm tra granularity hợp lệ cho Period Aggregator
func validateGranularity(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "weekly", "monthly", "quarterly":
		return true
	}
	return false
}

// validateInsightPeriod kiểm tra period hợp lệ cho historical insights
func validateInsightPeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "monthly", "quarterly", "yearly":
		return true
	}
	return false
}
