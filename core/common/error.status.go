package common

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK = 200 // Thành công

	// Client Error Codes (4xx)
	StatusBadRequest      = 400 // Yêu cầu không hợp lệ
	StatusNotFound        = 404 // Không tìm thấy tài nguyên
	StatusTooManyRequests = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
)

// Response Messages
const (
	MsgSuccess = "Thao tác thành công"

	MsgBadRequest      = "Yêu cầu không hợp lệ"
	MsgNotFound        = "Không tìm thấy tài nguyên"
	MsgTooManyRequests = "Quá nhiều yêu cầu"
	MsgInternalError   = "Lỗi hệ thống"

	// Validation Messages
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"

	// Dataset Messages
	MsgDataLoadError     = "Lỗi đọc dữ liệu nguồn"
	MsgDataNotAvailable  = "Dữ liệu chưa sẵn sàng"
	MsgDatasetNotFound   = "Không tìm thấy dataset"
	MsgRecordNotFound    = "Không tìm thấy dữ liệu"
	MsgComputationFailed = "Lỗi tính toán chỉ số"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: DATA_001)
	Category    string // Phân loại lỗi (ví dụ: Dataset)
	SubCategory string // Phân loại con (ví dụ: Load)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Dataset Errors (DATA_xxx)
	ErrCodeDataLoad = ErrorCode{
		Code:        "DATA_001",
		Category:    "Dataset",
		SubCategory: "Load",
		Description: "Lỗi load dataset từ nguồn CSV",
	}

	ErrCodeDataEmpty = ErrorCode{
		Code:        "DATA_002",
		Category:    "Dataset",
		SubCategory: "Empty",
		Description: "Dataset rỗng hoặc chưa được load",
	}

	// Query Errors (QUERY_xxx)
	ErrCodeQueryNotFound = ErrorCode{
		Code:        "QUERY_001",
		Category:    "Query",
		SubCategory: "NotFound",
		Description: "Lookup/join không có kết quả",
	}

	ErrCodeQueryCompute = ErrorCode{
		Code:        "QUERY_002",
		Category:    "Query",
		SubCategory: "Compute",
		Description: "Lỗi tính toán trong KPI calculator",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}

	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)

	// Dataset Errors
	ErrDatasetNotFound  = NewError(ErrCodeDataEmpty, MsgDatasetNotFound, StatusBadRequest, nil)
	ErrDataNotAvailable = NewError(ErrCodeDataEmpty, MsgDataNotAvailable, StatusOK, nil)

	// Query Errors
	ErrNotFound = NewError(ErrCodeQueryNotFound, MsgRecordNotFound, StatusNotFound, nil)
)
