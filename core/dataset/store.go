package dataset

import (
	"context"
	"path/filepath"

	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/logger"
	"github.com/shrijitmore/demand-forecasting/core/registry"

	"golang.org/x/sync/errgroup"
)

// Tên các dataset được serve bởi API.
// Mỗi tên tương ứng với một file CSV trong DataDir (xem sourceFiles).
const (
	Forecasts          = "forecasts"
	Insights           = "insights" // bullet insights theo tháng (cũng là historical monthly)
	Sales              = "sales"
	StockLevels        = "stock_levels"
	Alerts             = "alerts"
	Schedule           = "schedule"
	BOM                = "bom"
	MRPPlan            = "mrp_plan"
	ProductionOrders   = "production_orders"
	StationSchedule    = "station_schedule"
	Procurement        = "procurement"
	Attendance         = "attendance"
	LeaveRequests      = "leave_requests"
	OperatorInsights   = "operator_insights"
	Suppliers          = "suppliers"
	AlternateSuppliers = "alternate_suppliers"
	SupplierInsights   = "supplier_insights"
	QuarterlyInsights  = "quarterly_insights"
	YearlyInsights     = "yearly_insights"
)

// sourceFiles map tên dataset sang file CSV nguồn trong DataDir
var sourceFiles = map[string]string{
	Forecasts:          "forecasts.csv",
	Insights:           "insights.csv",
	Sales:              "sales.csv",
	StockLevels:        "stock_levels.csv",
	Alerts:             "alerts.csv",
	Schedule:           "schedule.csv",
	BOM:                "bom.csv",
	MRPPlan:            "mrp_plan.csv",
	ProductionOrders:   "production_orders.csv",
	StationSchedule:    "station_schedule.csv",
	Procurement:        "procurement_insights.csv",
	Attendance:         "attendance.csv",
	LeaveRequests:      "leave_requests.csv",
	OperatorInsights:   "operator_insights.csv",
	Suppliers:          "suppliers.csv",
	AlternateSuppliers: "alternate_suppliers.csv",
	SupplierInsights:   "supplier_insights.csv",
	QuarterlyInsights:  "quarterly_insights.csv",
	YearlyInsights:     "yearly_insights.csv",
}

// Store giữ toàn bộ các dataset đã load trong bộ nhớ.
// Store được khởi tạo MỘT LẦN lúc startup và truyền tường minh vào các
// service/handler; sau khi LoadAll thành công, mọi truy cập chỉ đọc nên
// không cần locking ở tầng request.
type Store struct {
	datasets *registry.Registry[*Dataset]
}

// NewStore tạo store rỗng (dataset được nạp qua LoadAll hoặc Register)
func NewStore() *Store {
	return &Store{
		datasets: registry.NewRegistry[*Dataset](),
	}
}

// Register đăng ký trực tiếp một dataset vào store.
// Dùng cho LoadAll và cho test (seed dữ liệu in-memory không cần file CSV).
func (s *Store) Register(ds *Dataset) error {
	_, err := s.datasets.Register(ds.Name, ds)
	return err
}

// Get trả về dataset theo tên.
// Tên không tồn tại → ErrDatasetNotFound (lỗi tham số, không phải lỗi dữ liệu).
func (s *Store) Get(name string) (*Dataset, error) {
	ds, exists := s.datasets.Get(name)
	if !exists {
		return nil, common.ErrDatasetNotFound
	}
	return ds, nil
}

// MustGet trả về dataset theo tên, hoặc dataset rỗng nếu chưa được load.
// Dùng trong các KPI calculator nơi dataset thiếu được xử lý như dataset rỗng
// (trả về snapshot "data not available" thay vì lỗi).
func (s *Store) MustGet(name string) *Dataset {
	ds, exists := s.datasets.Get(name)
	if !exists {
		return &Dataset{Name: name}
	}
	return ds
}

// Names trả về tên các dataset đã load, sắp xếp tăng dần
func (s *Store) Names() []string {
	return s.datasets.Names()
}

// LoadAll load song song toàn bộ dataset từ DataDir.
// Các load độc lập về I/O và ghi vào slot riêng nên chạy concurrent;
// bất kỳ load nào lỗi → trả về lỗi ngay (startup phải abort, không retry).
// Server chỉ được phép nhận request sau khi LoadAll trả về nil.
func (s *Store) LoadAll(ctx context.Context, dataDir string) error {
	log := logger.WithModule("dataset")

	g, ctx := errgroup.WithContext(ctx)
	for name, file := range sourceFiles {
		name, file := name, file
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			ds, err := LoadCSVFile(name, filepath.Join(dataDir, file))
			if err != nil {
				return err
			}
			if err := s.Register(ds); err != nil {
				return err
			}
			logger.WithDataset(name).WithField("records", ds.Len()).Debug("Đã load dataset")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.WithField("datasets", s.datasets.Len()).Info("Đã load toàn bộ dataset vào bộ nhớ")
	return nil
}
