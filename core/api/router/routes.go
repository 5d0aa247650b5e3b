package router

import (
	"github.com/shrijitmore/demand-forecasting/config"
	"github.com/shrijitmore/demand-forecasting/core/api/handler"
	"github.com/shrijitmore/demand-forecasting/core/api/services"
	"github.com/shrijitmore/demand-forecasting/core/dataset"

	"github.com/gofiber/fiber/v3"
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Base: "/api",
	}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app   *fiber.App
	store *dataset.Store
	cfg   *config.Configuration
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App, store *dataset.Store, cfg *config.Configuration) *Router {
	return &Router{
		app:   app,
		store: store,
		cfg:   cfg,
	}
}

// registerForecastRoutes đăng ký các route cho forecast và bullet insight.
//
// LƯU Ý thứ tự: /forecasts/:granularity là route tham số, Fiber match
// static route trước nên không cần đăng ký thủ công trước, nhưng
// /insights (bullet) PHẢI đứng trước /insights/:period (historical)
// để static route thắng khi path khớp cả hai.
func (r *Router) registerForecastRoutes(router fiber.Router) {
	forecastHandler := handler.NewForecastHandler(services.NewForecastService(r.store))

	router.Get("/forecasts", forecastHandler.HandleForecasts)
	router.Get("/forecasts/:granularity", forecastHandler.HandleAggregate)
	router.Get("/insights", forecastHandler.HandleInsights)
	router.Get("/products", forecastHandler.HandleProducts)
}

// registerSalesRoutes đăng ký các route cho sales KPI và metric
func (r *Router) registerSalesRoutes(router fiber.Router) {
	salesHandler := handler.NewSalesHandler(services.NewSalesService(r.store))

	// /sales/kpis phải đứng trước /sales/:metric
	router.Get("/sales/kpis", salesHandler.HandleKPIs)
	router.Get("/sales/:metric", salesHandler.HandleMetric)
}

// registerInventoryRoutes đăng ký các route cho inventory
func (r *Router) registerInventoryRoutes(router fiber.Router) {
	inventoryHandler := handler.NewInventoryHandler(services.NewInventoryService(r.store))

	// Các route static phải đứng trước /inventory/:dataset
	router.Get("/inventory/kpis", inventoryHandler.HandleKPIs)
	router.Get("/inventory/reorder_chart", inventoryHandler.HandleReorderChart)
	router.Get("/inventory/lead_times", inventoryHandler.HandleLeadTimes)
	router.Get("/inventory/suppliers", inventoryHandler.HandleSuppliers)
	router.Get("/inventory/:dataset", inventoryHandler.HandleDataset)
}

// registerProcurementRoutes đăng ký các route cho đơn mua hàng
func (r *Router) registerProcurementRoutes(router fiber.Router) {
	procurementHandler := handler.NewProcurementHandler(services.NewProcurementService(r.store))

	router.Get("/procurement/insights", procurementHandler.HandleAll)
	router.Get("/procurement/insight/:sku_id", procurementHandler.HandleInsight)
}

// registerProductionRoutes đăng ký các route cho sản xuất và chuyên cần
func (r *Router) registerProductionRoutes(router fiber.Router) {
	productionHandler := handler.NewProductionHandler(services.NewProductionService(r.store, r.cfg))

	router.Get("/kpis", productionHandler.HandleKPIs)
	router.Get("/schedule", productionHandler.HandleSchedule)
	router.Get("/schedule/chart", productionHandler.HandleScheduleChart)
	router.Get("/schedule/operator_workload", productionHandler.HandleOperatorWorkload)
	router.Get("/attendance", productionHandler.HandleAttendance)
	router.Get("/attendance/table", productionHandler.HandleAttendanceTable)
	router.Get("/leaves", productionHandler.HandleLeaves)
	router.Get("/insights1/:operator_id", productionHandler.HandleOperatorInsight)
	router.Get("/operators/dropdown", productionHandler.HandleOperatorsDropdown)
}

// registerSupplierRoutes đăng ký các route cho nhà cung cấp
func (r *Router) registerSupplierRoutes(router fiber.Router) {
	supplierHandler := handler.NewSupplierHandler(services.NewSupplierService(r.store))

	// Các route static và prefix dài phải đứng trước /suppliers/:endpoint/:supplier
	router.Get("/suppliers/list", supplierHandler.HandleList)
	router.Get("/suppliers/alternates/:supplier", supplierHandler.HandleAlternates)
	router.Get("/suppliers/insight/:identifier", supplierHandler.HandleInsight)
	router.Get("/suppliers/:endpoint/:supplier", supplierHandler.HandleEndpoint)
}

// registerInsightRoutes đăng ký các route cho AI insight lịch sử
func (r *Router) registerInsightRoutes(router fiber.Router) {
	insightHandler := handler.NewInsightHandler(services.NewInsightService(r.store))

	// /insights (bullet) đã đăng ký trong registerForecastRoutes
	router.Get("/insights/:period", insightHandler.HandleHistorical)
}

// SetupRoutes thiết lập tất cả các route cho ứng dụng
func SetupRoutes(app *fiber.App, store *dataset.Store, cfg *config.Configuration) error {
	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)

	router := NewRouter(app, store, cfg)
	systemHandler := handler.NewSystemHandler(store)

	// Health check ở root, ngoài prefix /api
	app.Get("/", systemHandler.HandleHealth)

	// 1. Forecast Routes
	router.registerForecastRoutes(api)

	// 2. Sales Routes
	router.registerSalesRoutes(api)

	// 3. Inventory Routes
	router.registerInventoryRoutes(api)

	// 4. Procurement Routes
	router.registerProcurementRoutes(api)

	// 5. Production Routes
	router.registerProductionRoutes(api)

	// 6. Supplier Routes
	router.registerSupplierRoutes(api)

	// 7. Historical Insight Routes (phải sau forecast để /insights static thắng)
	router.registerInsightRoutes(api)

	// Fallback 404 cho mọi route chưa đăng ký
	app.Use(systemHandler.HandleNotFound)

	return nil
}
