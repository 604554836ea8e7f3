package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gomonto/payments/internal/pkg/config"
	"github.com/gomonto/payments/internal/pkg/database"
	"github.com/gomonto/payments/internal/pkg/health"
	"github.com/gomonto/payments/internal/pkg/logger"
	"github.com/gomonto/payments/internal/pkg/middleware"
	nsqpkg "github.com/gomonto/payments/internal/pkg/nsq"
	"github.com/gomonto/payments/internal/pkg/server"
	"github.com/gomonto/payments/internal/utils"
	"github.com/gomonto/payments/services/payments/gateway"
	"github.com/gomonto/payments/services/payments/handler"
	httpHandler "github.com/gomonto/payments/services/payments/handler/http"
	"github.com/gomonto/payments/services/payments/repository"
	"github.com/gomonto/payments/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/payments.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Shutdown manager closes backing components once the HTTP server
	// has drained
	shutdownManager := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	shutdownManager.Register(func(context.Context) error {
		return postgresClient.Close()
	})

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	shutdownManager.Register(func(context.Context) error {
		return redisClient.Close()
	})

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}
	shutdownManager.Register(func(context.Context) error {
		producer.Stop()
		return nil
	})

	// Initialize repository
	paymentRepo := repository.NewPaymentRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	paymentGW := gateway.NewPaymentGW(configs, producer)

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(paymentRepo, paymentGW, configs)

	// Initialize handlers
	paymentHandler := httpHandler.NewPaymentHandler(paymentUC)
	Handler := handler.NewHandler(paymentHandler, redisClient, configs)

	// Initialize Echo router
	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, postgresClient.GetDB(), redisClient.GetClient())

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownManager)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
