// Package dataset chứa engine tổng hợp dữ liệu in-memory: record store,
// filter engine, period aggregator và group-by reducer.
// Mọi dataset đều bất biến sau khi load — các phép tính chỉ đọc.
package dataset

import (
	"time"

	"github.com/shrijitmore/demand-forecasting/core/utility"
)

// Record là một dòng dữ liệu: map từ tên field sang raw string value.
// Field được giữ nguyên dạng string từ nguồn; việc ép kiểu diễn ra on-demand
// tại call site thông qua các method Float/Int/Date.
type Record map[string]string

// Get trả về raw value của field ("" nếu field không tồn tại)
func (r Record) Get(field string) string {
	return r[field]
}

// Float trả về giá trị số của field, fallback về 0.
// Hậu tố "%" được cắt trước khi parse.
func (r Record) Float(field string) float64 {
	return utility.S2Float64(r[field])
}

// Int trả về giá trị nguyên của field, fallback về 0
func (r Record) Int(field string) int {
	return utility.S2Int(r[field])
}

// Date trả về giá trị ngày của field.
// Không parse được → zero time; caller phải kiểm tra IsZero().
func (r Record) Date(field string) time.Time {
	return utility.S2Date(r[field])
}

// Dataset là một bảng dữ liệu có tên: chuỗi Record có thứ tự, cùng schema
// (schema ngầm định từ nguồn, không enforce).
type Dataset struct {
	Name    string   // Tên dataset (ví dụ "stock_levels")
	Records []Record // Các dòng theo đúng thứ tự trong nguồn
}

// Len trả về số record trong dataset
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Empty kiểm tra dataset rỗng hoặc nil
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// Distinct trả về các giá trị khác nhau của một field, theo thứ tự xuất hiện.
// Giá trị rỗng bị bỏ qua.
func (d *Dataset) Distinct(field string) []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]bool, len(d.Records))
	values := make([]string, 0)
	for _, rec := range d.Records {
		v := rec.Get(field)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// DistinctCount trả về số giá trị khác nhau (khác rỗng) của một field
func (d *Dataset) DistinctCount(field string) int {
	return len(d.Distinct(field))
}
