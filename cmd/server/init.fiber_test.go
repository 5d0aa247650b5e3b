package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shrijitmore/demand-forecasting/config"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
	"github.com/shrijitmore/demand-forecasting/core/global"
	"github.com/shrijitmore/demand-forecasting/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFiberApp_SecurityHeaders(t *testing.T) {
	// Logger ra stdout để test không tạo thư mục logs
	require.NoError(t, logger.Init(&logger.LogConfig{
		Level:  "error",
		Format: "text",
		Output: "stdout",
	}))
	global.InitValidator()
	global.ServerConfig = &config.Configuration{
		CORS_Origins:       "*",
		RateLimit_Enabled:  false,
		KPI_AttendanceDate: "2023-01-01",
		KPI_ScheduleDate:   "01-01-2018",
		KPI_AbsentFlag:     "0",
	}

	store := dataset.NewStore()
	require.NoError(t, store.Register(&dataset.Dataset{Name: dataset.Sales}))

	app := InitFiberApp(store)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", resp.Header.Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", resp.Header.Get("Referrer-Policy"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
