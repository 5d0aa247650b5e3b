package global

import (
	"github.com/shrijitmore/demand-forecasting/config"

	"github.com/go-playground/validator/v10"
)

// Các biến toàn cục của ứng dụng.
// Lưu ý: dữ liệu phân tích KHÔNG nằm ở đây — các dataset được giữ trong
// dataset.Store và truyền tường minh vào handler/service khi khởi tạo,
// để handler là pure function của (store, request).
var (
	Validate     *validator.Validate   // Biến để xác thực dữ liệu
	ServerConfig *config.Configuration // Cấu hình của server
)
