package main

import (
	"github.com/shrijitmore/demand-forecasting/config"
	"github.com/shrijitmore/demand-forecasting/core/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator() // Khởi tạo validator
	initConfig()    // Khởi tạo cấu hình server
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: granularity, insight_period)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}
