package services

import (
	"fmt"
	"sort"

	"github.com/shrijitmore/demand-forecasting/config"
	"github.com/shrijitmore/demand-forecasting/core/api/dto"
	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
)

// Tên field trong các dataset vận hành
const (
	fieldOperatorID     = "Operator_ID"
	fieldAttendanceDate = "Date"
	fieldPresent        = "Present"
	fieldStation        = "Station"
	fieldStationProduct = "Product_Name"
	fieldScheduledDate  = "Scheduled_Date"
	fieldScheduledUnits = "Scheduled_Units"
)

// ProductionService tính KPI sản xuất và các view lịch trạm / chuyên cần.
// Ngày tham chiếu của các KPI lấy từ cấu hình và so sánh theo CHUỖI —
// nguồn dữ liệu so khớp string literal, không phải phép so sánh lịch.
type ProductionService struct {
	store *dataset.Store
	cfg   *config.Configuration
}

// NewProductionService tạo mới ProductionService
func NewProductionService(store *dataset.Store, cfg *config.Configuration) *ProductionService {
	return &ProductionService{store: store, cfg: cfg}
}

// KPIs tính snapshot KPI sản xuất / vận hành.
// Attendance rỗng → lỗi "data not available".
func (s *ProductionService) KPIs() (*dto.ProductionKPI, error) {
	attendance := s.store.MustGet(dataset.Attendance)
	if attendance.Empty() {
		return nil, common.NewError(common.ErrCodeDataEmpty, "Attendance data not available", common.StatusOK, nil)
	}

	kpi := &dto.ProductionKPI{
		TotalOperators: attendance.DistinctCount(fieldOperatorID),
	}

	for _, rec := range attendance.Records {
		if rec.Get(fieldAttendanceDate) == s.cfg.KPI_AttendanceDate &&
			rec.Get(fieldPresent) == s.cfg.KPI_AbsentFlag {
			kpi.AbsentToday++
		}
	}

	station := s.store.MustGet(dataset.StationSchedule)
	for _, rec := range station.Records {
		// Exact string match với ngày tham chiếu — không parse thành ngày
		if rec.Get(fieldScheduledDate) == s.cfg.KPI_ScheduleDate {
			kpi.ScheduledUnits += rec.Float(fieldScheduledUnits)
		}
	}
	kpi.DistinctProducts = station.DistinctCount(fieldStationProduct)

	return kpi, nil
}

// ScheduleAll trả về toàn bộ lịch trạm nguyên trạng
func (s *ProductionService) ScheduleAll() []dataset.Record {
	return s.store.MustGet(dataset.StationSchedule).Records
}

// ScheduleChart gom tổng units theo trạm cho biểu đồ lịch sản xuất
func (s *ProductionService) ScheduleChart() []dataset.GroupTotal {
	records := s.store.MustGet(dataset.StationSchedule).Records
	return dataset.GroupSum(records, fieldStation, fieldScheduledUnits, dataset.GroupOptions{})
}

// OperatorWorkload gom tổng units theo operator
func (s *ProductionService) OperatorWorkload() []dataset.GroupTotal {
	records := s.store.MustGet(dataset.StationSchedule).Records
	return dataset.GroupSum(records, fieldOperatorID, fieldScheduledUnits, dataset.GroupOptions{})
}

// AttendanceSorted trả về attendance sắp xếp theo ngày tăng dần.
// Sort stable: các dòng cùng ngày (hoặc ngày không parse được) giữ nguyên
// thứ tự nguồn; ngày không hợp lệ (zero time) nổi lên đầu.
func (s *ProductionService) AttendanceSorted() []dataset.Record {
	source := s.store.MustGet(dataset.Attendance).Records
	records := make([]dataset.Record, len(source))
	copy(records, source)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date(fieldAttendanceDate).Before(records[j].Date(fieldAttendanceDate))
	})
	return records
}

// Leaves trả về toàn bộ đơn nghỉ phép nguyên trạng
func (s *ProductionService) Leaves() []dataset.Record {
	return s.store.MustGet(dataset.LeaveRequests).Records
}

// OperatorInsight tra cứu insight AI của một operator theo id (exact match).
// Không có dòng nào khớp → lỗi not-found kèm id đã truy vấn.
func (s *ProductionService) OperatorInsight(operatorID string) ([]dataset.Record, error) {
	ds := s.store.MustGet(dataset.OperatorInsights)
	matches := dataset.Filter(ds.Records, map[string]string{fieldOperatorID: operatorID})
	if len(matches) == 0 {
		return nil, common.NewError(
			common.ErrCodeQueryNotFound,
			fmt.Sprintf("No insights found for operator %s", operatorID),
			common.StatusNotFound,
			nil,
		)
	}
	return matches, nil
}

// OperatorsDropdown trả về danh sách operator id distinct, sắp xếp tăng dần
func (s *ProductionService) OperatorsDropdown() []string {
	ids := s.store.MustGet(dataset.Attendance).Distinct(fieldOperatorID)
	sort.Strings(ids)
	return ids
}
