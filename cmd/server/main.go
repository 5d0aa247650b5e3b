package main

import (
	"fmt"

	"github.com/shrijitmore/demand-forecasting/core/dataset"
	"github.com/shrijitmore/demand-forecasting/core/global"
	"github.com/shrijitmore/demand-forecasting/core/logger"

	"github.com/gofiber/fiber/v3"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger sẽ tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread(store *dataset.Store) {
	// Khởi tạo app với cấu hình, store được truyền tường minh xuống router
	app := InitFiberApp(store)

	cfg := global.ServerConfig
	address := cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"datasets": len(store.Names()),
	}).Info("Starting Fiber server...")

	listenConfig := fiber.ListenConfig{}
	if err := app.Listen(address, listenConfig); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Nạp toàn bộ dataset CSV vào bộ nhớ (fatal nếu bất kỳ file nào lỗi)
	store := InitDatasets()

	// Chạy Fiber server trên main thread
	main_thread(store)
}
