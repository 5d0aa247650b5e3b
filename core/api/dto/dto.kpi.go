package dto

// Các snapshot KPI trả về từ KPI calculator.
// JSON tag giữ đúng tên field mà client dashboard đang đọc.

// SalesKPI là snapshot KPI bán hàng
type SalesKPI struct {
	TotalOrders    int     `json:"total_orders"`    // Số order item id khác nhau
	TotalSales     float64 `json:"total_sales"`     // Tổng doanh số, làm tròn 2 số lẻ
	AvgDiscount    float64 `json:"avg_discount"`    // Chiết khấu trung bình theo %, làm tròn 2 số lẻ
	LateDeliveries int     `json:"late_deliveries"` // Số dòng có cờ giao trễ = "1"
}

// InventoryKPI là snapshot KPI tồn kho
type InventoryKPI struct {
	TotalSKUs         int     `json:"total_skus"`          // Số SKU khác nhau trong stock_levels
	TotalOnHand       float64 `json:"total_on_hand"`       // Tổng tồn tại kho
	TotalInTransit    float64 `json:"total_in_transit"`    // Tổng hàng đang về
	BelowReorderPoint int     `json:"below_reorder_point"` // Số dòng alert có Available < Reorder_Point
	AvgLeadTime       float64 `json:"avg_lead_time"`       // Lead time trung bình, làm tròn 2 số lẻ
	TotalScheduledQty float64 `json:"total_scheduled_qty"` // Tổng số lượng theo lịch sản xuất
}

// ProductionKPI là snapshot KPI sản xuất / vận hành
type ProductionKPI struct {
	TotalOperators   int     `json:"total_operators"`   // Số operator khác nhau
	AbsentToday      int     `json:"absent_today"`      // Số dòng attendance vắng mặt tại ngày tham chiếu
	ScheduledUnits   float64 `json:"scheduled_units"`   // Tổng units theo lịch trạm tại ngày tham chiếu
	DistinctProducts int     `json:"distinct_products"` // Số product name khác nhau trong lịch trạm
}

// SupplierKPI là snapshot KPI của một nhà cung cấp
type SupplierKPI struct {
	Supplier        string  `json:"supplier"`          // Tên nhà cung cấp như trong dataset
	SKU             string  `json:"sku_id"`            // SKU gắn với nhà cung cấp
	LeadTime        float64 `json:"lead_time"`         // Lead time (ngày)
	FulfillmentRate float64 `json:"fulfillment_rate"`  // Tỷ lệ đáp ứng (%) — đã strip "%"
	OnTimeDelivery  float64 `json:"on_time_delivery"`  // Tỷ lệ giao đúng hạn (%) — đã strip "%"
	LateDeliveries  int     `json:"late_deliveries"`   // Số lần giao trễ
	TotalOrders     int     `json:"total_orders"`      // Tổng số đơn
	OnTimeCount     int     `json:"on_time_count"`     // Suy diễn: total - late
}

// SupplierMetrics là variant rút gọn cho endpoint /metrics
type SupplierMetrics struct {
	Supplier        string  `json:"supplier"`
	LeadTime        float64 `json:"lead_time"`
	FulfillmentRate float64 `json:"fulfillment_rate"`
	OnTimeDelivery  float64 `json:"on_time_delivery"`
}

// SupplierDeliveryStats là variant cho endpoint /delivery-stats
type SupplierDeliveryStats struct {
	Supplier       string  `json:"supplier"`
	TotalOrders    int     `json:"total_orders"`
	LateDeliveries int     `json:"late_deliveries"`
	OnTimeCount    int     `json:"on_time_count"`
	OnTimePercent  float64 `json:"on_time_percent"`
}
