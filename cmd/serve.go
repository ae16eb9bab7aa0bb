package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/tommeech/ecommerce-dashboard/internal/database"
	"github.com/tommeech/ecommerce-dashboard/internal/handler"
	"github.com/tommeech/ecommerce-dashboard/internal/repository"
	"github.com/tommeech/ecommerce-dashboard/internal/service"
	"github.com/tommeech/ecommerce-dashboard/internal/weather"
	"go.uber.org/zap"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the dashboard HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			logger.Info("Service configuration",
				zap.String("port", cfg.Port),
				zap.String("database_path", cfg.DatabasePath),
				zap.String("weather_api_url", cfg.APIURL),
				zap.Bool("metrics_enabled", cfg.MetricsEnabled))

			db, err := database.Open(cmd.Context(), cfg.DatabasePath)
			if err != nil {
				logger.Error("Failed to open database", zap.Error(err))
				return err
			}
			defer db.Close()

			// Initialize components
			reportRepo := repository.NewReportRepository(db, logger)
			reportService := service.NewReportService(reportRepo, logger)
			temperatureService := service.NewTemperatureService(reportRepo, weather.NewClient(cfg.WeatherConfig), logger)
			dashboardHandler := handler.NewDashboardHandler(reportService, temperatureService, reportRepo, cfg.DashboardTitle, logger)

			var registry *prometheus.Registry
			if cfg.MetricsEnabled {
				registry = prometheus.NewRegistry()
				registry.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
			}

			gin.SetMode(cfg.GinMode)
			router := handler.NewRouter(dashboardHandler, logger, registry)

			httpServer := &http.Server{
				Addr:    ":" + cfg.Port,
				Handler: router,
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			// Graceful Shutdown
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-quit:
			case err, ok := <-serverErr:
				if ok {
					logger.Error("HTTP server failed", zap.Error(err))
					return err
				}
			}

			logger.Info("Shutting down server...")
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				logger.Error("Server shutdown failed", zap.Error(err))
				return err
			}

			logger.Info("Server stopped")
			return nil
		},
	}
}
