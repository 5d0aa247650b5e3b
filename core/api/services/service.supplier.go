package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shrijitmore/demand-forecasting/core/api/dto"
	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
	"github.com/shrijitmore/demand-forecasting/core/utility"
)

// Tên field trong các dataset nhà cung cấp
const (
	fieldSupplier        = "Supplier"
	fieldSupplierSKU     = "SKU_ID"
	fieldSupLeadTime     = "Lead_Time_Days"
	fieldFulfillmentRate = "Fulfillment_Rate"
	fieldOnTimeDelivery  = "On_Time_Delivery"
	fieldLateDeliveries  = "Late_Deliveries"
	fieldTotalOrders     = "Total_Orders"
	fieldAltCostPerUnit  = "Cost_Per_Unit"
	fieldAltReliability  = "Reliability"
	fieldInsightText     = "Insight"
)

// SupplierService là Cross-Dataset Resolver cho domain nhà cung cấp:
// tra cứu theo tên trong suppliers rồi join sang alternate_suppliers /
// supplier_insights qua SKU dùng chung.
type SupplierService struct {
	store *dataset.Store
}

// NewSupplierService tạo mới SupplierService
func NewSupplierService(store *dataset.Store) *SupplierService {
	return &SupplierService{store: store}
}

// findSupplier tìm record supplier theo tên, không phân biệt hoa thường.
// Trả về record đầu tiên khớp (thứ tự nguồn).
func (s *SupplierService) findSupplier(name string) (dataset.Record, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	for _, rec := range s.store.MustGet(dataset.Suppliers).Records {
		if strings.ToLower(rec.Get(fieldSupplier)) == target {
			return rec, true
		}
	}
	return nil, false
}

// notFoundErr tạo lỗi 404 theo format "<name> not found" mà client đang parse
func notFoundErr(name string) error {
	return common.NewError(
		common.ErrCodeQueryNotFound,
		fmt.Sprintf("%s not found", name),
		common.StatusNotFound,
		nil,
	)
}

// KPIs tính snapshot KPI đầy đủ của một nhà cung cấp.
// Các field phần trăm trong nguồn có hậu tố "%" — được strip khi ép kiểu.
func (s *SupplierService) KPIs(name string) (*dto.SupplierKPI, error) {
	rec, found := s.findSupplier(name)
	if !found {
		return nil, notFoundErr(name)
	}

	total := rec.Int(fieldTotalOrders)
	late := rec.Int(fieldLateDeliveries)

	return &dto.SupplierKPI{
		Supplier:        rec.Get(fieldSupplier),
		SKU:             rec.Get(fieldSupplierSKU),
		LeadTime:        rec.Float(fieldSupLeadTime),
		FulfillmentRate: rec.Float(fieldFulfillmentRate),
		OnTimeDelivery:  rec.Float(fieldOnTimeDelivery),
		LateDeliveries:  late,
		TotalOrders:     total,
		OnTimeCount:     total - late,
	}, nil
}

// Metrics trả về variant rút gọn cho endpoint /metrics
func (s *SupplierService) Metrics(name string) (*dto.SupplierMetrics, error) {
	rec, found := s.findSupplier(name)
	if !found {
		return nil, notFoundErr(name)
	}

	return &dto.SupplierMetrics{
		Supplier:        rec.Get(fieldSupplier),
		LeadTime:        rec.Float(fieldSupLeadTime),
		FulfillmentRate: rec.Float(fieldFulfillmentRate),
		OnTimeDelivery:  rec.Float(fieldOnTimeDelivery),
	}, nil
}

// DeliveryStats trả về variant thống kê giao hàng cho endpoint /delivery-stats
func (s *SupplierService) DeliveryStats(name string) (*dto.SupplierDeliveryStats, error) {
	rec, found := s.findSupplier(name)
	if !found {
		return nil, notFoundErr(name)
	}

	total := rec.Int(fieldTotalOrders)
	late := rec.Int(fieldLateDeliveries)
	stats := &dto.SupplierDeliveryStats{
		Supplier:       rec.Get(fieldSupplier),
		TotalOrders:    total,
		LateDeliveries: late,
		OnTimeCount:    total - late,
	}
	// Guard chia 0: supplier chưa có đơn nào → 0%
	if total > 0 {
		stats.OnTimePercent = utility.Round2(float64(total-late) / float64(total) * 100)
	}
	return stats, nil
}

// Alternates resolve supplier name → SKU rồi trả về các nhà cung cấp thay thế
// cho SKU đó. Bước tra tên không phân biệt hoa thường; bước lọc theo SKU so
// sánh exact case-sensitive (client hiện tại gửi SKU đúng chuẩn hoa thường,
// nới lỏng sẽ đổi kết quả join). Các dòng join thiếu SKU hoặc tên supplier bị loại.
func (s *SupplierService) Alternates(name string) ([]dto.AlternateSupplier, error) {
	rec, found := s.findSupplier(name)
	if !found {
		return nil, notFoundErr(name)
	}
	sku := rec.Get(fieldSupplierSKU)

	out := make([]dto.AlternateSupplier, 0)
	for _, alt := range s.store.MustGet(dataset.AlternateSuppliers).Records {
		if alt.Get(fieldSupplierSKU) != sku {
			continue
		}
		if alt.Get(fieldSupplierSKU) == "" || alt.Get(fieldSupplier) == "" {
			continue
		}
		out = append(out, dto.AlternateSupplier{
			SKU:         alt.Get(fieldSupplierSKU),
			Supplier:    alt.Get(fieldSupplier),
			LeadTime:    alt.Float(fieldSupLeadTime),
			CostPerUnit: alt.Float(fieldAltCostPerUnit),
			Reliability: alt.Float(fieldAltReliability),
		})
	}
	return out, nil
}

// Insight resolve một identifier thành insight text:
//  1. thử như tên supplier (không phân biệt hoa thường) → lấy SKU của nó
//     → dòng insight đầu tiên có SKU khớp (không phân biệt hoa thường);
//  2. không phải tên supplier → coi identifier là SKU và tra trực tiếp.
//
// Cả hai nhánh đều không khớp → lỗi not-found.
func (s *SupplierService) Insight(identifier string) (string, error) {
	insights := s.store.MustGet(dataset.SupplierInsights)

	lookupSKU := identifier
	if rec, found := s.findSupplier(identifier); found {
		lookupSKU = rec.Get(fieldSupplierSKU)
	}

	target := strings.ToLower(strings.TrimSpace(lookupSKU))
	for _, rec := range insights.Records {
		if strings.ToLower(rec.Get(fieldSupplierSKU)) == target {
			return rec.Get(fieldInsightText), nil
		}
	}
	return "", notFoundErr(identifier)
}

// List trả về tên các nhà cung cấp distinct, sắp xếp tăng dần
func (s *SupplierService) List() []string {
	names := s.store.MustGet(dataset.Suppliers).Distinct(fieldSupplier)
	sort.Strings(names)
	return names
}
