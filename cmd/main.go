package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tommeech/ecommerce-dashboard/pkg/config"
	"github.com/tommeech/ecommerce-dashboard/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	serve := serveCommand()
	rootCmd := &cobra.Command{
		Use:          "dashboard",
		Short:        "E-commerce analytics dashboard",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	rootCmd.AddCommand(serve, migrateCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// setup loads configuration and builds the logger shared by every command.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogOutputs())
	if err != nil {
		return nil, nil, err
	}
	return cfg, zapLogger, nil
}
