package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// loggers map lưu các logger instances
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex

	// config chứa cấu hình logging
	config *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình.
// Truyền nil để dùng cấu hình mặc định (đọc từ environment variables).
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	// Tạo thư mục logs nếu chưa tồn tại
	if config.Output != "stdout" {
		if err := os.MkdirAll(config.LogPath, 0755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
	}

	return nil
}

// GetLogger trả về logger theo tên (app, error)
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Nếu chưa init, init với config mặc định
	if config == nil {
		if err := Init(nil); err != nil {
			panic(fmt.Sprintf("Failed to initialize logger: %v", err))
		}
	}

	if logger, exists := loggers[name]; exists {
		return logger
	}

	logger := newLogger(name)
	loggers[name] = logger
	return logger
}

// GetAppLogger trả về logger chính của ứng dụng
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

// GetErrorLogger trả về logger dành riêng cho error
func GetErrorLogger() *logrus.Logger {
	return GetLogger("error")
}

// newLogger tạo logger instance mới theo cấu hình hiện tại
func newLogger(name string) *logrus.Logger {
	logger := logrus.New()

	// Level
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Format
	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	// Output
	logger.SetOutput(buildWriter(name))

	return logger
}

// buildWriter tạo writer cho logger theo cấu hình output.
// File output dùng lumberjack để rotate theo size/tuổi.
func buildWriter(name string) io.Writer {
	fileName := config.AppFile
	if name == "error" {
		fileName = config.ErrorFile
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(config.LogPath, fileName),
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}

	switch config.Output {
	case "file":
		return fileWriter
	case "stdout":
		return os.Stdout
	default:
		// "both" - ghi song song ra stdout và file
		return io.MultiWriter(os.Stdout, fileWriter)
	}
}
