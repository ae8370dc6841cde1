package routes

import (
	"context"
	"net/http"
	"strconv"
	"time"

	_ "bookshop_billing/docs" // swagger docs
	"bookshop_billing/internal/adapter/http/handlers"
	"bookshop_billing/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the application for cfg and serves it until the listener fails.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	app, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	router := NewRouter(app, logger)
	logger.Info("http server starting",
		zap.Int("port", cfg.Port),
		zap.String("storage_backend", cfg.StorageBackend),
		zap.String("sequence_backend", cfg.SequenceBackend),
	)
	return router.Run(":" + strconv.Itoa(cfg.Port))
}

// NewRouter registers every route of the API on a fresh engine.
func NewRouter(app *App, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	customerHandler := handlers.NewCustomerHandler(app.Customers)
	itemHandler := handlers.NewItemHandler(app.Items)
	cartHandler := handlers.NewCartHandler(app.Cart)
	reportHandler := handlers.NewReportHandler(app.Reports)
	paymentHandler := handlers.NewBillingPaymentHandler(app.Payments, app.PaymentMockMode, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCustomerRoutes(v1, customerHandler)
	addItemRoutes(v1, itemHandler)
	addCartRoutes(v1, cartHandler)
	addBillRoutes(v1, reportHandler, paymentHandler)
	addReportRoutes(v1, reportHandler)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
