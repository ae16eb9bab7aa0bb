package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tommeech/ecommerce-dashboard/internal/web"
	"github.com/tommeech/ecommerce-dashboard/pkg/middleware"
	"go.uber.org/zap"
)

// NewRouter wires every dashboard route. A nil registry disables metrics.
func NewRouter(h *DashboardHandler, logger *zap.Logger, registry *prometheus.Registry) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, h.Recover))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	if registry != nil {
		router.Use(middleware.NewMetrics(registry).Handler())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	router.SetHTMLTemplate(web.Templates())
	router.StaticFileFS("/static/dashboard-script.js", "dashboard-script.js", http.FS(web.Static()))
	router.NoRoute(h.NotFound)

	router.GET("/", h.Index)
	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.GET("/temperature_over_time", h.TemperatureOverTime)
		api.GET("/orders_over_time", h.OrdersOverTime)
		api.GET("/low_stock_levels", h.LowStockLevels)
		api.GET("/most_popular_products", h.MostPopularProducts)
		api.GET("/revenue_generation", h.RevenueGeneration)
		api.GET("/product_category_popularity", h.ProductCategoryPopularity)
		api.GET("/payment_method_popularity", h.PaymentMethodPopularity)
	}

	return router
}
