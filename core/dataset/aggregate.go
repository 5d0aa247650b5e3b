package dataset

import (
	"fmt"

	"github.com/shrijitmore/demand-forecasting/core/utility"
)

// Granularity xác định cách gom record vào các bucket lịch
type Granularity string

const (
	Weekly    Granularity = "weekly"    // Tuần ISO-8601 (bắt đầu thứ Hai)
	Monthly   Granularity = "monthly"   // Tháng 1–12
	Quarterly Granularity = "quarterly" // Quý 1–4
)

// ParseGranularity chuyển string thành Granularity, báo ok=false nếu không hợp lệ
func ParseGranularity(raw string) (Granularity, bool) {
	switch Granularity(raw) {
	case Weekly, Monthly, Quarterly:
		return Granularity(raw), true
	}
	return "", false
}

// PeriodBucket là một bucket kết quả của Period Aggregator.
// AverageDemand = TotalDemand / Count; Count >= 1 với mọi bucket được emit
// (bucket chỉ được tạo khi có record đầu tiên đóng góp).
type PeriodBucket struct {
	Period        string  `json:"period"`         // Khóa kỳ, dạng YYYY-Wn / YYYY-Mn / YYYY-Qn
	TotalDemand   float64 `json:"total_demand"`   // Tổng measure trong kỳ
	AverageDemand float64 `json:"average_demand"` // Trung bình measure trong kỳ
	Count         int     `json:"count"`          // Số record đóng góp vào bucket
}

// AggregateByPeriod gom record vào các bucket lịch theo granularity.
//
// Thuật toán: một pass duy nhất — với mỗi record, ép kiểu date và measure,
// tính Period Key theo quy tắc lịch, cộng dồn vào bucket tương ứng.
// Tuần dùng chuẩn ISO-8601 (time.ISOWeek, tuần bắt đầu thứ Hai; năm trong khóa
// là năm ISO, có thể lệch năm dương lịch ở các ngày giáp ranh).
//
// Record có date không parse được bị loại khỏi mọi bucket (không gom vào
// bucket "unknown", tổng các bucket vì vậy có thể nhỏ hơn tổng dữ liệu thô).
// Bucket được emit theo thứ tự xuất hiện lần đầu; zero record → slice rỗng.
func AggregateByPeriod(records []Record, granularity Granularity, dateField, measureField string) []PeriodBucket {
	type accumulator struct {
		total float64
		count int
	}

	buckets := make(map[string]*accumulator)
	order := make([]string, 0)

	for _, rec := range records {
		date := rec.Date(dateField)
		if date.IsZero() {
			continue
		}

		var key string
		switch granularity {
		case Weekly:
			year, week := date.ISOWeek()
			key = fmt.Sprintf("%d-W%d", year, week)
		case Monthly:
			key = fmt.Sprintf("%d-M%d", date.Year(), int(date.Month()))
		case Quarterly:
			quarter := (int(date.Month())-1)/3 + 1
			key = fmt.Sprintf("%d-Q%d", date.Year(), quarter)
		default:
			continue
		}

		acc, exists := buckets[key]
		if !exists {
			acc = &accumulator{}
			buckets[key] = acc
			order = append(order, key)
		}
		acc.total += rec.Float(measureField)
		acc.count++
	}

	out := make([]PeriodBucket, 0, len(order))
	for _, key := range order {
		acc := buckets[key]
		out = append(out, PeriodBucket{
			Period:        key,
			TotalDemand:   utility.Round2(acc.total),
			AverageDemand: utility.Round2(acc.total / float64(acc.count)),
			Count:         acc.count,
		})
	}
	return out
}
