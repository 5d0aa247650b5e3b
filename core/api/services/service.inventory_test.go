package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
)

func TestInventoryKPIs_ViDuTinhTay(t *testing.T) {
	store := seedStore(t, dataset.StockLevels, []dataset.Record{
		{"SKU_No": "A1", "On_Hand": "10", "In_Transit": "5", "Lead_Time_Days": "4"},
		{"SKU_No": "A2", "On_Hand": "20", "In_Transit": "0", "Lead_Time_Days": "6"},
	})
	if err := store.Register(&dataset.Dataset{Name: dataset.Alerts, Records: []dataset.Record{
		{"SKU_No": "A1", "Available": "5", "Reorder_Point": "10"},
		{"SKU_No": "A2", "Available": "10", "Reorder_Point": "10"}, // bằng nhau → không tính
	}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Register(&dataset.Dataset{Name: dataset.Schedule, Records: []dataset.Record{
		{"Scheduled_Qty": "100"},
		{"Scheduled_Qty": "50"},
	}}); err != nil {
		t.Fatal(err)
	}

	kpi, err := NewInventoryService(store).KPIs()
	if err != nil {
		t.Fatalf("KPIs lỗi: %v", err)
	}
	if kpi.TotalSKUs != 2 {
		t.Errorf("TotalSKUs = %d, muốn 2", kpi.TotalSKUs)
	}
	if kpi.TotalOnHand != 30 {
		t.Errorf("TotalOnHand = %v, muốn 30", kpi.TotalOnHand)
	}
	if kpi.TotalInTransit != 5 {
		t.Errorf("TotalInTransit = %v, muốn 5", kpi.TotalInTransit)
	}
	// (4 + 6) / 2 = 5.00
	if kpi.AvgLeadTime != 5.00 {
		t.Errorf("AvgLeadTime = %v, muốn 5.00", kpi.AvgLeadTime)
	}
	// Chỉ đếm Available < Reorder_Point (so sánh chặt, bằng nhau không tính)
	if kpi.BelowReorderPoint != 1 {
		t.Errorf("BelowReorderPoint = %d, muốn 1", kpi.BelowReorderPoint)
	}
	if kpi.TotalScheduledQty != 150 {
		t.Errorf("TotalScheduledQty = %v, muốn 150", kpi.TotalScheduledQty)
	}
}

func TestInventoryKPIs_DatasetRong_Loi200(t *testing.T) {
	store := dataset.NewStore()
	_, err := NewInventoryService(store).KPIs()
	if err == nil {
		t.Fatal("stock_levels rỗng phải trả về lỗi")
	}

	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi không phải *common.Error: %v", err)
	}
	// Endpoint legacy: lỗi dữ liệu trả về HTTP 200 với body {"error": ...}
	if appErr.StatusCode != common.StatusOK {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusOK)
	}
	if appErr.Message != "Inventory data not available" {
		t.Errorf("Message = %q", appErr.Message)
	}
}

func TestInventoryReorderChart_EpKieuVaGiuTenCot(t *testing.T) {
	store := seedStore(t, dataset.Alerts, []dataset.Record{
		{"SKU_No": "A1", "Available": "5", "Reorder_Point": "10"},
	})

	rows := NewInventoryService(store).ReorderChart()
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, muốn 1", len(rows))
	}
	if rows[0].SKUNo != "A1" || rows[0].Available != 5 || rows[0].ReorderPoint != 10 {
		t.Errorf("row = %+v, muốn {A1 5 10}", rows[0])
	}

	// Serialize giữ nguyên tên cột nguồn
	raw, err := json.Marshal(rows[0])
	if err != nil {
		t.Fatal(err)
	}
	var keys map[string]interface{}
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatal(err)
	}
	for _, col := range []string{"SKU_No", "Available", "Reorder_Point"} {
		if _, ok := keys[col]; !ok {
			t.Errorf("thiếu cột %q trong JSON: %s", col, raw)
		}
	}
}

func TestInventoryRawDataset_Whitelist(t *testing.T) {
	store := seedStore(t, dataset.BOM, []dataset.Record{
		{"SKU_No": "A1", "Component": "C1"},
	})
	svc := NewInventoryService(store)

	records, err := svc.RawDataset(dataset.BOM)
	if err != nil {
		t.Fatalf("RawDataset(%s) lỗi: %v", dataset.BOM, err)
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, muốn 1", len(records))
	}

	// Tên ngoài whitelist → 400, kể cả khi dataset tồn tại trong store
	_, err = svc.RawDataset(dataset.Sales)
	if err == nil {
		t.Fatal("dataset ngoài whitelist phải trả về lỗi")
	}
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi không phải *common.Error: %v", err)
	}
	if appErr.StatusCode != common.StatusBadRequest {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusBadRequest)
	}
}

func TestInventorySupplierNames_DistinctSapXep(t *testing.T) {
	store := seedStore(t, dataset.StockLevels, []dataset.Record{
		{"SKU_No": "A1", "Supplier": "Zeta Corp"},
		{"SKU_No": "A2", "Supplier": "Acme Ltd"},
		{"SKU_No": "A3", "Supplier": "Zeta Corp"},
	})

	names := NewInventoryService(store).SupplierNames()
	if len(names) != 2 || names[0] != "Acme Ltd" || names[1] != "Zeta Corp" {
		t.Errorf("SupplierNames = %v, muốn [Acme Ltd Zeta Corp]", names)
	}
}
