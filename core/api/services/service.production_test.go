package services

import (
	"testing"

	"github.com/shrijitmore/demand-forecasting/config"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
)

func productionConfig() *config.Configuration {
	return &config.Configuration{
		KPI_AttendanceDate: "2023-01-01",
		KPI_ScheduleDate:   "01-01-2018",
		KPI_AbsentFlag:     "0",
	}
}

func productionStore(t *testing.T) *dataset.Store {
	t.Helper()
	store := dataset.NewStore()
	datasets := []*dataset.Dataset{
		{Name: dataset.Attendance, Records: []dataset.Record{
			{"Operator_ID": "OP-01", "Date": "2023-01-01", "Present": "1"},
			{"Operator_ID": "OP-02", "Date": "2023-01-01", "Present": "0"},
			{"Operator_ID": "OP-01", "Date": "2023-01-02", "Present": "1"},
			// Present=0 nhưng khác ngày tham chiếu → không tính absent
			{"Operator_ID": "OP-02", "Date": "2023-01-02", "Present": "0"},
		}},
		{Name: dataset.StationSchedule, Records: []dataset.Record{
			{"Station": "Assembly-1", "Operator_ID": "OP-01", "Product_Name": "Rip Deck", "Scheduled_Units": "40", "Scheduled_Date": "01-01-2018"},
			{"Station": "Assembly-2", "Operator_ID": "OP-02", "Product_Name": "Dri-FIT Shirt", "Scheduled_Units": "60", "Scheduled_Date": "01-01-2018"},
			// Ngày khác literal tham chiếu → bị loại khỏi ScheduledUnits
			{"Station": "Packing-1", "Operator_ID": "OP-01", "Product_Name": "Rip Deck", "Scheduled_Units": "35", "Scheduled_Date": "02-01-2018"},
		}},
		{Name: dataset.OperatorInsights, Records: []dataset.Record{
			{"Operator_ID": "OP-01", "Insight": "Exceeds output target"},
		}},
		{Name: dataset.LeaveRequests, Records: []dataset.Record{
			{"Operator_ID": "OP-02", "Status": "Approved"},
		}},
	}
	for _, ds := range datasets {
		if err := store.Register(ds); err != nil {
			t.Fatal(err)
		}
	}
	return store
}

func TestProductionKPIs_SoSanhNgayThamChieuTheoChuoi(t *testing.T) {
	svc := NewProductionService(productionStore(t), productionConfig())

	kpi, err := svc.KPIs()
	if err != nil {
		t.Fatalf("KPIs lỗi: %v", err)
	}
	if kpi.TotalOperators != 2 {
		t.Errorf("TotalOperators = %d, muốn 2", kpi.TotalOperators)
	}
	// Chỉ OP-02 vắng đúng ngày tham chiếu 2023-01-01
	if kpi.AbsentToday != 1 {
		t.Errorf("AbsentToday = %d, muốn 1", kpi.AbsentToday)
	}
	// 40 + 60; dòng 02-01-2018 không khớp literal nên bị loại
	if kpi.ScheduledUnits != 100 {
		t.Errorf("ScheduledUnits = %v, muốn 100", kpi.ScheduledUnits)
	}
	if kpi.DistinctProducts != 2 {
		t.Errorf("DistinctProducts = %d, muốn 2", kpi.DistinctProducts)
	}
}

func TestProductionKPIs_AttendanceRong_Loi200(t *testing.T) {
	svc := NewProductionService(dataset.NewStore(), productionConfig())
	if _, err := svc.KPIs(); err == nil {
		t.Fatal("attendance rỗng phải trả về lỗi data-not-available")
	}
}

func TestScheduleChart_GomTheoTram(t *testing.T) {
	svc := NewProductionService(productionStore(t), productionConfig())

	chart := svc.ScheduleChart()
	if len(chart) != 3 {
		t.Fatalf("chart có %d bucket, muốn 3", len(chart))
	}
	if chart[0].Key != "Assembly-1" || chart[0].Total != 40 {
		t.Errorf("bucket đầu = %+v", chart[0])
	}
}

func TestOperatorWorkload_GomTheoOperator(t *testing.T) {
	svc := NewProductionService(productionStore(t), productionConfig())

	workload := svc.OperatorWorkload()
	for _, b := range workload {
		if b.Key == "OP-01" && b.Total != 75 {
			t.Errorf("OP-01 workload = %v, muốn 40+35=75", b.Total)
		}
	}
}

func TestAttendanceSorted_TangDanTheoNgay_KhongMutateNguon(t *testing.T) {
	store := productionStore(t)
	svc := NewProductionService(store, productionConfig())

	source := store.MustGet(dataset.Attendance).Records
	firstBefore := source[0].Get("Operator_ID")

	sorted := svc.AttendanceSorted()
	for i := 1; i < len(sorted); i++ {
		prev := sorted[i-1].Date("Date")
		cur := sorted[i].Date("Date")
		if cur.Before(prev) {
			t.Fatalf("attendance không sort tăng dần tại index %d", i)
		}
	}

	if source[0].Get("Operator_ID") != firstBefore {
		t.Error("AttendanceSorted không được mutate dataset nguồn")
	}
}

func TestOperatorInsight_ExactMatchVaNotFound(t *testing.T) {
	svc := NewProductionService(productionStore(t), productionConfig())

	matches, err := svc.OperatorInsight("OP-01")
	if err != nil || len(matches) != 1 {
		t.Fatalf("OperatorInsight(OP-01) = (%d, %v), muốn 1 dòng", len(matches), err)
	}

	if _, err := svc.OperatorInsight("op-01"); err == nil {
		t.Error("tra cứu operator phải exact match (case-sensitive)")
	}
}

func TestOperatorsDropdown_DistinctSapXep(t *testing.T) {
	svc := NewProductionService(productionStore(t), productionConfig())
	ids := svc.OperatorsDropdown()
	if len(ids) != 2 || ids[0] != "OP-01" || ids[1] != "OP-02" {
		t.Errorf("OperatorsDropdown = %v, muốn [OP-01 OP-02]", ids)
	}
}
