package services

import (
	"fmt"
	"sort"

	"github.com/shrijitmore/demand-forecasting/core/api/dto"
	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
	"github.com/shrijitmore/demand-forecasting/core/utility"
)

// Tên field trong các dataset tồn kho
const (
	fieldSKUNo         = "SKU_No"
	fieldOnHand        = "On_Hand"
	fieldInTransit     = "In_Transit"
	fieldLeadTimeDays  = "Lead_Time_Days"
	fieldStockSupplier = "Supplier"
	fieldAvailable     = "Available"
	fieldReorderPoint  = "Reorder_Point"
	fieldScheduledQty  = "Scheduled_Qty"
)

// rawInventoryDatasets là các dataset được phép dump nguyên trạng
// qua /api/inventory/:dataset
var rawInventoryDatasets = []string{
	dataset.StockLevels,
	dataset.Alerts,
	dataset.BOM,
	dataset.MRPPlan,
	dataset.ProductionOrders,
	dataset.Schedule,
	dataset.StationSchedule,
}

// InventoryService tính KPI tồn kho và các view phái sinh
type InventoryService struct {
	store *dataset.Store
}

// NewInventoryService tạo mới InventoryService
func NewInventoryService(store *dataset.Store) *InventoryService {
	return &InventoryService{store: store}
}

// KPIs tính snapshot KPI tồn kho từ stock_levels, alerts và schedule.
// stock_levels rỗng → lỗi "data not available".
func (s *InventoryService) KPIs() (*dto.InventoryKPI, error) {
	stock := s.store.MustGet(dataset.StockLevels)
	if stock.Empty() {
		return nil, common.NewError(common.ErrCodeDataEmpty, "Inventory data not available", common.StatusOK, nil)
	}

	kpi := &dto.InventoryKPI{
		TotalSKUs: stock.DistinctCount(fieldSKUNo),
	}

	var totalLeadTime float64
	for _, rec := range stock.Records {
		kpi.TotalOnHand += rec.Float(fieldOnHand)
		kpi.TotalInTransit += rec.Float(fieldInTransit)
		totalLeadTime += rec.Float(fieldLeadTimeDays)
	}
	// stock không rỗng nên phép chia an toàn; vẫn giữ guard cho rõ hợp đồng
	if stock.Len() > 0 {
		kpi.AvgLeadTime = utility.Round2(totalLeadTime / float64(stock.Len()))
	}

	for _, rec := range s.store.MustGet(dataset.Alerts).Records {
		if rec.Float(fieldAvailable) < rec.Float(fieldReorderPoint) {
			kpi.BelowReorderPoint++
		}
	}

	for _, rec := range s.store.MustGet(dataset.Schedule).Records {
		kpi.TotalScheduledQty += rec.Float(fieldScheduledQty)
	}

	return kpi, nil
}

// ReorderChart trả về dữ liệu biểu đồ reorder: mỗi dòng alert với
// Available và Reorder_Point đã ép về số nguyên, giữ nguyên tên cột nguồn.
func (s *InventoryService) ReorderChart() []dto.ReorderRow {
	alerts := s.store.MustGet(dataset.Alerts)
	rows := make([]dto.ReorderRow, 0, alerts.Len())
	for _, rec := range alerts.Records {
		rows = append(rows, dto.ReorderRow{
			SKUNo:        rec.Get(fieldSKUNo),
			Available:    rec.Int(fieldAvailable),
			ReorderPoint: rec.Int(fieldReorderPoint),
		})
	}
	return rows
}

// LeadTimes trả về lead time theo SKU từ stock_levels
func (s *InventoryService) LeadTimes() []dto.LeadTimeRow {
	stock := s.store.MustGet(dataset.StockLevels)
	rows := make([]dto.LeadTimeRow, 0, stock.Len())
	for _, rec := range stock.Records {
		rows = append(rows, dto.LeadTimeRow{
			SKUNo:        rec.Get(fieldSKUNo),
			LeadTimeDays: rec.Float(fieldLeadTimeDays),
		})
	}
	return rows
}

// SupplierNames trả về danh sách nhà cung cấp distinct từ stock_levels, sắp xếp tăng dần
func (s *InventoryService) SupplierNames() []string {
	names := s.store.MustGet(dataset.StockLevels).Distinct(fieldStockSupplier)
	sort.Strings(names)
	return names
}

// RawDataset dump nguyên trạng một dataset tồn kho theo tên.
// Tên ngoài whitelist → lỗi 400.
func (s *InventoryService) RawDataset(name string) ([]dataset.Record, error) {
	if !utility.Contains(rawInventoryDatasets, name) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Unknown inventory dataset '%s'. Supported: %v", name, rawInventoryDatasets),
			common.StatusBadRequest,
			nil,
		)
	}
	return s.store.MustGet(name).Records, nil
}
