package dataset

import (
	"sort"

	"github.com/shrijitmore/demand-forecasting/core/utility"
)

// GroupTotal là một bucket kết quả của Group-By Reducer
type GroupTotal struct {
	Key   string  `json:"key"`   // Giá trị của group field
	Total float64 `json:"total"` // Tổng measure (hoặc số record khi CountMode)
}

// GroupOptions cấu hình cho GroupSum
type GroupOptions struct {
	TopN      int  // > 0: cắt còn N bucket đầu SAU khi sort
	SortDesc  bool // Sort giảm dần theo Total (stable — tie giữ thứ tự xuất hiện)
	SortByKey bool // Sort tăng dần theo Key (dùng cho chuỗi kỳ theo tháng)
	CountMode bool // Đếm record thay vì cộng measure (measure = 1 mỗi record)
}

// GroupSum gom record theo giá trị của groupField và cộng dồn measureField.
// Record thiếu groupField được gom vào bucket khóa rỗng "", không bị drop.
// Thứ tự mặc định là thứ tự xuất hiện lần đầu của từng khóa.
func GroupSum(records []Record, groupField, measureField string, opts GroupOptions) []GroupTotal {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, rec := range records {
		key := rec.Get(groupField)
		if _, exists := totals[key]; !exists {
			order = append(order, key)
		}
		if opts.CountMode {
			totals[key]++
		} else {
			totals[key] += rec.Float(measureField)
		}
	}

	out := make([]GroupTotal, 0, len(order))
	for _, key := range order {
		out = append(out, GroupTotal{Key: key, Total: utility.Round2(totals[key])})
	}

	if opts.SortDesc {
		// Stable: tie giữ nguyên thứ tự xuất hiện lần đầu
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Total > out[j].Total
		})
	} else if opts.SortByKey {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Key < out[j].Key
		})
	}

	if opts.TopN > 0 && len(out) > opts.TopN {
		out = out[:opts.TopN]
	}

	return out
}
