package services

import (
	"fmt"

	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
)

// historicalDatasets map period → dataset chứa historical insight tương ứng.
// Monthly dùng chung dataset với bullet insights theo tháng (một nguồn duy nhất).
var historicalDatasets = map[string]string{
	"monthly":   dataset.Insights,
	"quarterly": dataset.QuarterlyInsights,
	"yearly":    dataset.YearlyInsights,
}

// InsightService phục vụ các historical insight dump theo kỳ
type InsightService struct {
	store *dataset.Store
}

// NewInsightService tạo mới InsightService
func NewInsightService(store *dataset.Store) *InsightService {
	return &InsightService{store: store}
}

// Historical trả về toàn bộ insight của một kỳ (monthly/quarterly/yearly).
// Period không hợp lệ → lỗi 400.
func (s *InsightService) Historical(period string) ([]dataset.Record, error) {
	name, ok := historicalDatasets[period]
	if !ok {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown insight period '%s'. Supported: monthly, quarterly, yearly", period),
			common.StatusBadRequest,
			nil,
		)
	}
	return s.store.MustGet(name).Records, nil
}
