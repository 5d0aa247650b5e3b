package services

import (
	"github.com/shrijitmore/demand-forecasting/core/api/dto"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
)

// Tên field trong dataset forecasts / insights
const (
	fieldProductCardID = "PRODUCT_CARD_ID"
	fieldProductName   = "PRODUCT_NAME"
	fieldForecastDate  = "DATE"
	fieldForecastQty   = "FORECAST"
	fieldMonth         = "Month"
)

// ForecastService phục vụ các view forecast và bullet insight theo tháng.
// Service giữ tham chiếu đến store bất biến; mọi method đều stateless.
type ForecastService struct {
	store *dataset.Store
}

// NewForecastService tạo mới ForecastService
func NewForecastService(store *dataset.Store) *ForecastService {
	return &ForecastService{store: store}
}

// Forecasts trả về các record forecast đã lọc theo query
func (s *ForecastService) Forecasts(q dto.ForecastQuery) []dataset.Record {
	ds := s.store.MustGet(dataset.Forecasts)
	return dataset.Filter(ds.Records, map[string]string{
		fieldProductCardID: q.ProductCardID,
		fieldProductName:   q.ProductName,
	})
}

// Aggregate gom forecast đã lọc vào các bucket lịch theo granularity
func (s *ForecastService) Aggregate(granularity dataset.Granularity, q dto.ForecastQuery) []dataset.PeriodBucket {
	records := s.Forecasts(q)
	return dataset.AggregateByPeriod(records, granularity, fieldForecastDate, fieldForecastQty)
}

// Insights trả về các bullet insight theo tháng, lọc theo query.
// Month đi cùng các filter sản phẩm và compose bằng AND.
func (s *ForecastService) Insights(q dto.ForecastQuery) []dataset.Record {
	ds := s.store.MustGet(dataset.Insights)
	return dataset.Filter(ds.Records, map[string]string{
		fieldMonth:         q.Month,
		fieldProductCardID: q.ProductCardID,
		fieldProductName:   q.ProductName,
	})
}

// Products trả về các cặp {PRODUCT_CARD_ID, PRODUCT_NAME} distinct.
// Với mỗi ID, tên gặp đầu tiên thắng (first-seen wins).
func (s *ForecastService) Products() []dto.ProductOption {
	ds := s.store.MustGet(dataset.Forecasts)

	seen := make(map[string]bool)
	options := make([]dto.ProductOption, 0)
	for _, rec := range ds.Records {
		id := rec.Get(fieldProductCardID)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		options = append(options, dto.ProductOption{
			ProductCardID: id,
			ProductName:   rec.Get(fieldProductName),
		})
	}
	return options
}
