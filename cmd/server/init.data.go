package main

import (
	"context"

	"github.com/shrijitmore/demand-forecasting/core/dataset"
	"github.com/shrijitmore/demand-forecasting/core/global"
	"github.com/shrijitmore/demand-forecasting/core/logger"
)

// InitDatasets nạp toàn bộ các file CSV trong DataDir vào bộ nhớ.
// Các dataset được nạp song song; bất kỳ file nào lỗi (I/O hoặc parse)
// thì server không được phép khởi động — dữ liệu thiếu sẽ làm sai mọi KPI.
func InitDatasets() *dataset.Store {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	log.WithFields(map[string]interface{}{
		"data_dir": cfg.DataDir,
	}).Info("🔄 [INIT] Loading CSV datasets...")

	store := dataset.NewStore()
	if err := store.LoadAll(context.Background(), cfg.DataDir); err != nil {
		log.Fatalf("Failed to load datasets from %s: %v", cfg.DataDir, err)
	}

	log.WithFields(map[string]interface{}{
		"datasets": len(store.Names()),
	}).Info("✅ [INIT] All datasets loaded into memory")

	return store
}
