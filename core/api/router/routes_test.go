package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shrijitmore/demand-forecasting/config"
	"github.com/shrijitmore/demand-forecasting/core/dataset"
	"github.com/shrijitmore/demand-forecasting/core/global"
	"github.com/shrijitmore/demand-forecasting/core/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp dựng Fiber app đầy đủ route trên store in-memory
func newTestApp(t *testing.T, datasets ...*dataset.Dataset) *fiber.App {
	t.Helper()

	// Logger ra stdout để test không tạo thư mục logs
	require.NoError(t, logger.Init(&logger.LogConfig{
		Level:  "error",
		Format: "text",
		Output: "stdout",
	}))
	global.InitValidator()

	store := dataset.NewStore()
	for _, ds := range datasets {
		require.NoError(t, store.Register(ds))
	}

	cfg := &config.Configuration{
		KPI_AttendanceDate: "2023-01-01",
		KPI_ScheduleDate:   "01-01-2018",
		KPI_AbsentFlag:     "0",
	}

	app := fiber.New()
	require.NoError(t, SetupRoutes(app, store, cfg))
	return app
}

// doGET gửi request qua app.Test và decode JSON body
func doGET(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	// Một số endpoint trả về array — caller tự decode lại khi cần
	_ = json.Unmarshal(body, &decoded)
	return resp.StatusCode, decoded
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t, &dataset.Dataset{Name: dataset.Sales})

	status, body := doGET(t, app, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["datasets"])
}

func TestNotFoundFallback_EchoPath(t *testing.T) {
	app := newTestApp(t)

	status, body := doGET(t, app, "/api/does-not-exist")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body["error"], "/api/does-not-exist")
}

func TestSalesKPIs_LegacyLoi200(t *testing.T) {
	// Sales dataset rỗng → HTTP 200 với error trong body (hành vi legacy)
	app := newTestApp(t)

	status, body := doGET(t, app, "/api/sales/kpis")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Sales data not available", body["error"])
}

func TestSalesMetric_KhongHopLe_400(t *testing.T) {
	app := newTestApp(t, &dataset.Dataset{Name: dataset.Sales})

	status, body := doGET(t, app, "/api/sales/bogus-metric")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "bogus-metric")
}

func TestSalesKPIRoute_ThangThamSoMetric(t *testing.T) {
	// /api/sales/kpis phải match route static, không rơi vào /api/sales/:metric
	app := newTestApp(t, &dataset.Dataset{Name: dataset.Sales, Records: []dataset.Record{
		{"Order Item Id": "1", "Sales": "100", "Order Item Discount Rate": "0.1", "Late_delivery_risk": "0"},
	}})

	status, body := doGET(t, app, "/api/sales/kpis")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["total_orders"])
}

func TestSupplierEndpoint_KhongHopLe_400(t *testing.T) {
	app := newTestApp(t, &dataset.Dataset{Name: dataset.Suppliers, Records: []dataset.Record{
		{"Supplier": "Acme", "SKU_ID": "SKU-001"},
	}})

	status, _ := doGET(t, app, "/api/suppliers/bogus/Acme")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSupplierKhongTonTai_404(t *testing.T) {
	app := newTestApp(t, &dataset.Dataset{Name: dataset.Suppliers})

	status, body := doGET(t, app, "/api/suppliers/kpis/Ghost")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Ghost not found", body["error"])
}

func TestSupplierList_ThangRouteThamSo(t *testing.T) {
	// /api/suppliers/list phải match trước /api/suppliers/:endpoint/:supplier
	app := newTestApp(t, &dataset.Dataset{Name: dataset.Suppliers, Records: []dataset.Record{
		{"Supplier": "Globex"},
		{"Supplier": "Acme"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/suppliers/list", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var names []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
	assert.Equal(t, []string{"Acme", "Globex"}, names)
}

func TestOperatorInsight_KhongCo_200VoiMessage(t *testing.T) {
	app := newTestApp(t, &dataset.Dataset{Name: dataset.OperatorInsights})

	status, body := doGET(t, app, "/api/insights1/OP-404")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body["message"], "OP-404")
	assert.Empty(t, body["data"])
}

func TestHistoricalInsights_PeriodKhongHopLe_400(t *testing.T) {
	app := newTestApp(t)

	status, _ := doGET(t, app, "/api/insights/daily")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestInsights_RouteStaticThangPeriod(t *testing.T) {
	// /api/insights (bullet) và /api/insights/:period (historical) phải tách bạch
	app := newTestApp(t,
		&dataset.Dataset{Name: dataset.Insights, Records: []dataset.Record{
			{"Month": "2023-01", "PRODUCT_CARD_ID": "1001", "Insight": "Trending up"},
		}},
		&dataset.Dataset{Name: dataset.QuarterlyInsights, Records: []dataset.Record{
			{"Quarter": "2023-Q1", "Insight": "Q1 demand above forecast"},
		}},
	)

	// Static: bullet insights, filter theo Month
	req := httptest.NewRequest(http.MethodGet, "/api/insights?Month=2023-01", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var bullets []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bullets))
	require.Len(t, bullets, 1)
	assert.Equal(t, "Trending up", bullets[0]["Insight"])

	// Tham số: historical quarterly
	req = httptest.NewRequest(http.MethodGet, "/api/insights/quarterly", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var quarterly []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&quarterly))
	require.Len(t, quarterly, 1)
}

func TestForecastAggregate_GranularityKhongHopLe_400(t *testing.T) {
	app := newTestApp(t, &dataset.Dataset{Name: dataset.Forecasts})

	status, _ := doGET(t, app, "/api/forecasts/daily")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestInventoryDataset_NgoaiWhitelist_400(t *testing.T) {
	app := newTestApp(t, &dataset.Dataset{Name: dataset.StockLevels})

	status, _ := doGET(t, app, "/api/inventory/secret_dataset")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProcurementInsight_KhongCoSKU_404(t *testing.T) {
	app := newTestApp(t, &dataset.Dataset{Name: dataset.Procurement})

	status, body := doGET(t, app, "/api/procurement/insight/SKU-404")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body["error"], "SKU-404")
}
