package logger

import (
	"os"
	"strconv"
	"strings"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	// Log Level: trace, debug, info, warn, error, fatal
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Log Format: json, text
	Format string `env:"LOG_FORMAT" envDefault:"text"`

	// Log Output: file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"both"`

	// Log Rotation
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"`  // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"` // Số file cũ giữ lại
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"`     // Số ngày giữ lại
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"` // Nén file cũ

	// Log Paths
	LogPath   string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile   string `env:"LOG_APP_FILE" envDefault:"app.log"`
	ErrorFile string `env:"LOG_ERROR_FILE" envDefault:"error.log"`
}

// DefaultConfig trả về cấu hình mặc định, có điều chỉnh theo môi trường
func DefaultConfig() *LogConfig {
	envName := os.Getenv("GO_ENV")
	if envName == "" {
		envName = "development"
	}

	config := &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		MaxSize:    100,
		MaxBackups: 7,
		MaxAge:     7,
		Compress:   true,
		LogPath:    "./logs",
		AppFile:    "app.log",
		ErrorFile:  "error.log",
	}

	// Điều chỉnh theo môi trường
	if envName == "development" {
		config.Level = "debug"
		config.Format = "text"
	} else {
		config.Level = "info"
		config.Format = "json"
	}

	// Override từ environment variables nếu có
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = strings.ToLower(level)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		config.Format = strings.ToLower(format)
	}
	if output := os.Getenv("LOG_OUTPUT"); output != "" {
		config.Output = strings.ToLower(output)
	}
	if path := os.Getenv("LOG_PATH"); path != "" {
		config.LogPath = path
	}
	if maxSize := os.Getenv("LOG_MAX_SIZE"); maxSize != "" {
		if n, err := strconv.Atoi(maxSize); err == nil && n > 0 {
			config.MaxSize = n
		}
	}
	if maxBackups := os.Getenv("LOG_MAX_BACKUPS"); maxBackups != "" {
		if n, err := strconv.Atoi(maxBackups); err == nil && n >= 0 {
			config.MaxBackups = n
		}
	}
	if maxAge := os.Getenv("LOG_MAX_AGE"); maxAge != "" {
		if n, err := strconv.Atoi(maxAge); err == nil && n >= 0 {
			config.MaxAge = n
		}
	}
	if compress := os.Getenv("LOG_COMPRESS"); compress != "" {
		config.Compress = compress == "true" || compress == "1"
	}

	return config
}
