package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/config"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/internal/infrastructure/cache"
	"github.com/TemiKayode/wumikay-ventures/internal/infrastructure/database"
	"github.com/TemiKayode/wumikay-ventures/internal/infrastructure/events"
	infraRepo "github.com/TemiKayode/wumikay-ventures/internal/infrastructure/repository"
	"github.com/TemiKayode/wumikay-ventures/internal/logger"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/handler"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/routes"
	"github.com/TemiKayode/wumikay-ventures/pkg/printer"
	"github.com/TemiKayode/wumikay-ventures/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.App.Env)
	defer logger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.AutoMigrate(db); err != nil {
		logger.L().Fatal("failed to run migrations", zap.Error(err))
	}

	if err := database.SeedDefaultData(db); err != nil {
		logger.L().Warn("failed to seed default data", zap.Error(err))
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Repositories
	userRepo := infraRepo.NewUserRepository(db)
	var productRepo repository.ProductRepository = infraRepo.NewProductRepository(db)
	orderRepo := infraRepo.NewOrderRepository(db)
	orderItemRepo := infraRepo.NewOrderItemRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)
	analyticsRepo := infraRepo.NewAnalyticsRepository(db)
	idempotencyRepo := infraRepo.NewIdempotencyRepository(db)

	// Optional Redis product cache
	if cfg.Cache.Host != "" {
		redisCache, err := cache.NewRedisCache(cfg.Cache.Host, cfg.Cache.Port, cfg.Cache.TTL)
		if err != nil {
			logger.L().Warn("cache disabled, continuing without Redis", zap.Error(err))
		} else {
			defer redisCache.Close()
			productRepo = infraRepo.NewCachedProductRepository(productRepo, redisCache)
		}
	}

	// Optional order event publisher
	publisher := events.NewNoopPublisher()
	if cfg.Broker.URL != "" {
		rabbitPublisher, err := events.NewRabbitPublisher(cfg.Broker.URL, cfg.Broker.Queue)
		if err != nil {
			logger.L().Warn("event publishing disabled, continuing without broker", zap.Error(err))
		} else {
			publisher = rabbitPublisher
		}
	}
	defer publisher.Close()

	// Thermal printer
	thermalPrinter, err := printer.NewFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		logger.L().Warn("failed to initialize printer, printing disabled", zap.Error(err))
		thermalPrinter, _ = printer.NewFromConfig("none", "", "")
	}

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(productRepo)
	receiptService := service.NewReceiptService(orderRepo, settingsRepo, thermalPrinter, cfg.Printer.Type, cfg.Printer.Width)
	checkoutService := service.NewCheckoutService(orderRepo, orderItemRepo, settingsRepo, cartService, receiptService, publisher, cfg.Checkout.POSCharge)
	orderService := service.NewOrderService(orderRepo)
	dashboardService := service.NewDashboardService(productRepo, orderRepo, analyticsRepo)
	reportService := service.NewReportService(analyticsRepo)
	customerService := service.NewCustomerService(analyticsRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Cart:      handler.NewCartHandler(cartService),
		Order:     handler.NewOrderHandler(orderService, checkoutService, receiptService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
		Customer:  handler.NewCustomerHandler(customerService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Printer:   handler.NewPrinterHandler(receiptService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Background maintenance: finish stale Pending orders and drop
	// expired idempotency keys.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go runMaintenance(sweepCtx, cfg, checkoutService, idempotencyRepo)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		logger.L().Info("server starting",
			zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}
}

func runMaintenance(ctx context.Context, cfg *config.Config, checkout *service.CheckoutService, idempotencyRepo repository.IdempotencyRepository) {
	ticker := time.NewTicker(cfg.Checkout.ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, _, err := checkout.ReconcileStaleOrders(ctx, cfg.Checkout.ReconcileStaleAfter); err != nil {
				logger.L().Error("stale order reconciliation failed", zap.Error(err))
			}
			if err := idempotencyRepo.DeleteExpired(ctx); err != nil {
				logger.L().Error("idempotency key cleanup failed", zap.Error(err))
			}
		}
	}
}
