package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shrijitmore/demand-forecasting/core/common"
)

// LoadCSVFile đọc toàn bộ một file CSV thành Dataset.
// Dòng đầu tiên là header (tên field). Giá trị được giữ nguyên dạng raw string,
// không suy luận kiểu ở tầng này — việc ép kiểu thuộc về Field Coercion.
// Đọc trọn vẹn trước khi trả về: không bao giờ expose dataset load dở dang.
func LoadCSVFile(name, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeDataLoad,
			fmt.Sprintf("không mở được file nguồn của dataset '%s': %v", name, err),
			common.StatusServiceUnavailable,
			err,
		)
	}
	defer f.Close()

	ds, err := readCSV(name, f)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// readCSV parse nội dung CSV từ reader thành Dataset
func readCSV(name string, r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	// Một số file nguồn có dòng thiếu/thừa cột; xử lý thủ công theo header
	reader.FieldsPerRecord = -1

	// Đọc header
	headers, err := reader.Read()
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeDataLoad,
			fmt.Sprintf("không đọc được header của dataset '%s': %v", name, err),
			common.StatusServiceUnavailable,
			err,
		)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	records := make([]Record, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Dòng hỏng cú pháp CSV: bỏ qua, giữ nguyên thứ tự các dòng còn lại
			continue
		}

		rec := make(Record, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}

	return &Dataset{Name: name, Records: records}, nil
}
