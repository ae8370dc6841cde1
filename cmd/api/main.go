package main

import (
	"context"
	"log"

	"bookshop_billing/internal/adapter/http/routes"
	"bookshop_billing/internal/infrastructure/config"
	"bookshop_billing/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Bookshop Billing API
// @version         1.0
// @description     Bookshop billing: customers, item catalog, cart, bills, payments and reports.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := routes.Run(context.Background(), cfg, logger); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}
