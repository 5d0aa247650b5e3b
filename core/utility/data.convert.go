package utility

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Các hàm chuyển đổi giá trị raw string từ CSV sang kiểu có nghĩa.
// Nguyên tắc chung: không bao giờ trả về lỗi — giá trị rỗng hoặc không parse
// được sẽ fallback về zero value, để các phép tính tổng hợp không bị gián đoạn
// bởi một vài field bẩn trong dữ liệu nguồn.

// dateLayouts là các định dạng ngày xuất hiện trong các dataset nguồn
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04",
}

// S2Float64 chuyển raw string thành float64, fallback về 0.
// Hậu tố "%" được cắt trước khi parse (ví dụ "92.5%" → 92.5).
func S2Float64(raw string) float64 {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "%")
	if raw == "" {
		return 0
	}
	number, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return number
}

// S2Int chuyển raw string thành int, fallback về 0.
// Giá trị dạng thập phân ("12.0") được chấp nhận và truncate về phần nguyên.
func S2Int(raw string) int {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "%")
	if raw == "" {
		return 0
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

// S2Date chuyển raw string thành time.Time.
// Không parse được → trả về zero time (sentinel "invalid date");
// consumer phải kiểm tra IsZero() và loại record khỏi nhóm tương ứng.
func S2Date(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Round2 làm tròn về 2 chữ số thập phân
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
