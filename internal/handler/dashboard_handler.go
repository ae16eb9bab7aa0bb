package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tommeech/ecommerce-dashboard/internal/domain"
	"github.com/tommeech/ecommerce-dashboard/internal/service"
	"github.com/tommeech/ecommerce-dashboard/internal/web"
	"github.com/tommeech/ecommerce-dashboard/pkg/middleware"
	"go.uber.org/zap"
)

const (
	serviceName = "ecommerce-dashboard"

	msgNotFound       = "Not found"
	msgInternalServer = "Internal server error"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type DashboardHandler struct {
	reports     *service.ReportService
	temperature *service.TemperatureService
	db          Pinger
	title       string
	logger      *zap.Logger
}

func NewDashboardHandler(
	reports *service.ReportService,
	temperature *service.TemperatureService,
	db Pinger,
	title string,
	logger *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		reports:     reports,
		temperature: temperature,
		db:          db,
		title:       title,
		logger:      logger,
	}
}

func (h *DashboardHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.DashboardTemplate, web.Dashboard{Title: h.title})
}

func (h *DashboardHandler) TemperatureOverTime(c *gin.Context) {
	data, err := h.temperature.TemperatureOverTime(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *DashboardHandler) OrdersOverTime(c *gin.Context) {
	resp, err := h.reports.OrdersOverTime(c.Request.Context())
	h.respond(c, resp, err)
}

func (h *DashboardHandler) LowStockLevels(c *gin.Context) {
	resp, err := h.reports.LowStockLevels(c.Request.Context())
	h.respond(c, resp, err)
}

func (h *DashboardHandler) MostPopularProducts(c *gin.Context) {
	resp, err := h.reports.MostPopularProducts(c.Request.Context())
	h.respond(c, resp, err)
}

func (h *DashboardHandler) RevenueGeneration(c *gin.Context) {
	resp, err := h.reports.RevenueGeneration(c.Request.Context())
	h.respond(c, resp, err)
}

func (h *DashboardHandler) ProductCategoryPopularity(c *gin.Context) {
	resp, err := h.reports.ProductCategoryPopularity(c.Request.Context())
	h.respond(c, resp, err)
}

func (h *DashboardHandler) PaymentMethodPopularity(c *gin.Context) {
	resp, err := h.reports.PaymentMethodPopularity(c.Request.Context())
	h.respond(c, resp, err)
}

func (h *DashboardHandler) Health(c *gin.Context) {
	status := gin.H{
		"status":  "healthy",
		"service": serviceName,
	}
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Database health check failed",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err))
		status["status"] = "unhealthy"
		status["database"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	status["database"] = "healthy"
	c.JSON(http.StatusOK, status)
}

func (h *DashboardHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, domain.ErrorResponse{Error: msgNotFound})
}

// Recover turns a panic into the generic 500 body.
func (h *DashboardHandler) Recover(c *gin.Context, recovered any) {
	h.logger.Error("Panic recovered",
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.String("path", c.Request.URL.Path),
		zap.Any("panic", recovered))
	c.AbortWithStatusJSON(http.StatusInternalServerError, domain.ErrorResponse{Error: msgInternalServer})
}

func (h *DashboardHandler) respond(c *gin.Context, data any, err error) {
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// internalError logs the cause and answers with the fixed 500 body; the
// cause never reaches the client.
func (h *DashboardHandler) internalError(c *gin.Context, err error) {
	h.logger.Error("Error in "+c.FullPath(),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, domain.ErrorResponse{Error: msgInternalServer})
}
