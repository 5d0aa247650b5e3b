package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Toàn bộ dữ liệu phân tích được load từ các file CSV trong DataDir khi khởi động,
// sau đó giữ nguyên trong bộ nhớ suốt vòng đời của process (read-only).
type Configuration struct {
	Address string `env:"ADDRESS" envDefault:":8080"`   // Địa chỉ server
	DataDir string `env:"DATA_DIR" envDefault:"./data"` // Thư mục chứa các file CSV nguồn

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Thời gian window (giây)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting

	// Ngày tham chiếu cho các KPI sản xuất/vận hành.
	// Nguồn dữ liệu so sánh các giá trị này theo CHUỖI, không parse thành ngày lịch,
	// nên ở đây giữ nguyên dạng string và so sánh exact-match.
	KPI_AttendanceDate string `env:"KPI_ATTENDANCE_DATE" envDefault:"2023-01-01"` // Ngày tham chiếu cho thống kê chuyên cần
	KPI_ScheduleDate   string `env:"KPI_SCHEDULE_DATE" envDefault:"01-01-2018"`   // Ngày tham chiếu cho lịch sản xuất theo trạm
	KPI_AbsentFlag     string `env:"KPI_ABSENT_FLAG" envDefault:"0"`              // Giá trị sentinel đánh dấu vắng mặt trong cột Present
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	envName := os.Getenv("GO_ENV")
	if envName == "" {
		envName = "development"
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", envName))
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env tương ứng với môi trường.
// Nếu không tìm thấy file env thì vẫn tiếp tục với environment variables hiện có,
// vì mọi field đều có default hợp lệ.
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Không fatal: cho phép chạy hoàn toàn bằng environment variables
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Không thể parse cấu hình từ environment: %v\n", err)
		return nil
	}

	return cfg
}
