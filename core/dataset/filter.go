package dataset

// Filter áp dụng các predicate bình đẳng (equality) lên một chuỗi record.
// Các predicate compose bằng AND; so sánh exact string, case-sensitive.
// Predicate có value rỗng coi như vắng mặt (query param không truyền).
// Không predicate nào có hiệu lực → trả về đúng slice gốc, không copy.
// Hàm không bao giờ mutate dữ liệu nguồn.
func Filter(records []Record, predicates map[string]string) []Record {
	// Loại các predicate vắng mặt
	active := make(map[string]string, len(predicates))
	for field, expected := range predicates {
		if expected != "" {
			active[field] = expected
		}
	}
	if len(active) == 0 {
		return records
	}

	// Một pass duy nhất: record đạt khi khớp TẤT CẢ predicate
	out := make([]Record, 0)
	for _, rec := range records {
		pass := true
		for field, expected := range active {
			if rec.Get(field) != expected {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, rec)
		}
	}
	return out
}
