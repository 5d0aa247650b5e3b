package dto

// Các cấu trúc view phái sinh cho các endpoint dashboard.
// Một số struct giữ nguyên tên field của dữ liệu nguồn trong JSON tag
// (client đọc trực tiếp tên cột CSV).

// ForecastQuery là bộ lọc query cho các endpoint forecast/insight
type ForecastQuery struct {
	ProductCardID string `query:"PRODUCT_CARD_ID" validate:"omitempty,max=100"` // Lọc theo mã sản phẩm (optional)
	ProductName   string `query:"PRODUCT_NAME" validate:"omitempty,max=200"`    // Lọc theo tên sản phẩm (optional)
	Month         string `query:"Month" validate:"omitempty,max=50"`            // Chỉ dùng cho insights (optional)
}

// AggregatePath là path param của endpoint forecast tổng hợp theo kỳ
type AggregatePath struct {
	Granularity string `uri:"granularity" validate:"required,granularity"` // weekly|monthly|quarterly
}

// HistoricalPath là path param của endpoint historical insight
type HistoricalPath struct {
	Period string `uri:"period" validate:"required,insight_period"` // monthly|quarterly|yearly
}

// ProductOption là một cặp sản phẩm distinct cho dropdown
type ProductOption struct {
	ProductCardID string `json:"PRODUCT_CARD_ID"`
	ProductName   string `json:"PRODUCT_NAME"`
}

// ReorderRow là một dòng của reorder chart (đã ép kiểu số, giữ tên cột nguồn)
type ReorderRow struct {
	SKUNo        string `json:"SKU_No"`
	Available    int    `json:"Available"`
	ReorderPoint int    `json:"Reorder_Point"`
}

// LeadTimeRow là một dòng của biểu đồ lead time
type LeadTimeRow struct {
	SKUNo        string  `json:"SKU_No"`
	LeadTimeDays float64 `json:"Lead_Time_Days"`
}

// AlternateSupplier là một dòng kết quả của join supplier → alternates
type AlternateSupplier struct {
	SKU          string  `json:"sku_id"`
	Supplier     string  `json:"supplier"`
	LeadTime     float64 `json:"lead_time"`
	CostPerUnit  float64 `json:"cost_per_unit"`
	Reliability  float64 `json:"reliability"`
}
