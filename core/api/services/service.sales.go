package services

import (
	"fmt"
	"sort"

	"github.com/shrijitmore/demand-forecasting/core/api/dto"
	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
	"github.com/shrijitmore/demand-forecasting/core/utility"
)

// Tên field trong dataset sales (giữ nguyên tên cột của nguồn)
const (
	fieldOrderItemID  = "Order Item Id"
	fieldSales        = "Sales"
	fieldDiscountRate = "Order Item Discount Rate"
	fieldLateRisk     = "Late_delivery_risk"
	fieldCustomerCity = "Customer City"
	fieldCategoryName = "Category Name"
	fieldOrderDate    = "order date (DateOrders)"
	fieldShippingMode = "Shipping Mode"
	fieldOrderRegion  = "Order Region"
	fieldSaleProduct  = "Product Name"
)

// lateDeliverySentinel là giá trị cờ đánh dấu đơn giao trễ trong nguồn
const lateDeliverySentinel = "1"

// Các metric breakdown được hỗ trợ bởi /api/sales/:metric
var salesMetrics = []string{
	"city-sales",
	"category-distribution",
	"monthly-sales",
	"shipping-mode",
	"region-sales",
	"top-products",
}

// SalesService tính KPI và các breakdown bán hàng
type SalesService struct {
	store *dataset.Store
}

// NewSalesService tạo mới SalesService
func NewSalesService(store *dataset.Store) *SalesService {
	return &SalesService{store: store}
}

// KPIs tính snapshot KPI bán hàng trên toàn bộ dataset sales.
// Dataset rỗng → lỗi "data not available" (không bao giờ panic/chia 0).
func (s *SalesService) KPIs() (*dto.SalesKPI, error) {
	ds := s.store.MustGet(dataset.Sales)
	if ds.Empty() {
		return nil, common.NewError(common.ErrCodeDataEmpty, "Sales data not available", common.StatusOK, nil)
	}

	kpi := &dto.SalesKPI{
		TotalOrders: ds.DistinctCount(fieldOrderItemID),
	}

	var totalSales, totalDiscount float64
	for _, rec := range ds.Records {
		totalSales += rec.Float(fieldSales)
		totalDiscount += rec.Float(fieldDiscountRate)
		if rec.Get(fieldLateRisk) == lateDeliverySentinel {
			kpi.LateDeliveries++
		}
	}

	kpi.TotalSales = utility.Round2(totalSales)
	// Discount rate trong nguồn là tỷ lệ (0.1 = 10%) — quy về % trước khi làm tròn
	kpi.AvgDiscount = utility.Round2(totalDiscount / float64(ds.Len()) * 100)

	return kpi, nil
}

// Metric trả về một breakdown bán hàng theo tên metric.
// Tên không hợp lệ → lỗi 400 liệt kê các metric được hỗ trợ.
func (s *SalesService) Metric(name string) (interface{}, error) {
	ds := s.store.MustGet(dataset.Sales)
	records := ds.Records

	switch name {
	case "city-sales":
		return dataset.GroupSum(records, fieldCustomerCity, fieldSales, dataset.GroupOptions{TopN: 10, SortDesc: true}), nil
	case "category-distribution":
		return dataset.GroupSum(records, fieldCategoryName, fieldSales, dataset.GroupOptions{}), nil
	case "monthly-sales":
		return s.monthlySales(records), nil
	case "shipping-mode":
		// Degenerate case: đếm số đơn theo phương thức giao, không cộng measure
		return dataset.GroupSum(records, fieldShippingMode, "", dataset.GroupOptions{CountMode: true}), nil
	case "region-sales":
		return dataset.GroupSum(records, fieldOrderRegion, fieldSales, dataset.GroupOptions{SortDesc: true}), nil
	case "top-products":
		return dataset.GroupSum(records, fieldSaleProduct, fieldSales, dataset.GroupOptions{TopN: 5, SortDesc: true}), nil
	default:
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown sales metric '%s'. Supported: %v", name, salesMetrics),
			common.StatusBadRequest,
			nil,
		)
	}
}

// monthlySales gom doanh số theo tháng, sort tăng dần theo khóa kỳ.
// Khác các breakdown còn lại: sort theo chuỗi thời gian chứ không theo giá trị.
func (s *SalesService) monthlySales(records []dataset.Record) []dataset.PeriodBucket {
	buckets := dataset.AggregateByPeriod(records, dataset.Monthly, fieldOrderDate, fieldSales)
	sort.SliceStable(buckets, func(i, j int) bool {
		yi, mi := parsePeriodKey(buckets[i].Period)
		yj, mj := parsePeriodKey(buckets[j].Period)
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})
	return buckets
}

// parsePeriodKey tách khóa kỳ "YYYY-Mn" thành (năm, số kỳ) để sort đúng số học
func parsePeriodKey(key string) (year, n int) {
	fmt.Sscanf(key, "%d-M%d", &year, &n)
	return year, n
}
