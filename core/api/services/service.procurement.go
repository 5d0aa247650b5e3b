package services

import (
	"fmt"

	"github.com/shrijitmore/demand-forecasting/core/common"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
)

// ProcurementService phục vụ các insight mua hàng theo SKU
type ProcurementService struct {
	store *dataset.Store
}

// NewProcurementService tạo mới ProcurementService
func NewProcurementService(store *dataset.Store) *ProcurementService {
	return &ProcurementService{store: store}
}

// All trả về toàn bộ dataset procurement insights nguyên trạng
func (s *ProcurementService) All() []dataset.Record {
	return s.store.MustGet(dataset.Procurement).Records
}

// InsightBySKU trả về mọi dòng insight khớp SKU (exact match).
// Zero match → lỗi not-found kèm SKU đã truy vấn.
func (s *ProcurementService) InsightBySKU(sku string) ([]dataset.Record, error) {
	matches := dataset.Filter(s.All(), map[string]string{fieldSupplierSKU: sku})
	if len(matches) == 0 {
		return nil, common.NewError(
			common.ErrCodeQueryNotFound,
			fmt.Sprintf("No procurement insight found for SKU %s", sku),
			common.StatusNotFound,
			nil,
		)
	}
	return matches, nil
}
