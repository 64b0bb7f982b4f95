package routes

import (
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/config"
	domainRepo "github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/handler"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/middleware"
	"github.com/TemiKayode/wumikay-ventures/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
	Customer  *handler.CustomerHandler
	Settings  *handler.SettingsHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/profile", h.Auth.Profile)

	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.POST("", middleware.RequireRole("admin"), h.Product.Create)
		products.PUT("/:id", middleware.RequireRole("admin"), h.Product.Update)
		products.DELETE("/:id", middleware.RequireRole("admin"), h.Product.Delete)
	}

	// Cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items", h.Cart.SetQuantity)
		cart.DELETE("/items/:productId", h.Cart.RemoveItem)
		cart.DELETE("", h.Cart.Clear)
	}

	// Orders. Checkout requires an idempotency key.
	orders := protected.Group("/orders")
	{
		orders.POST("", middleware.IdempotencyRequired(deps.IdempotencyRepo), h.Order.Checkout)
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/cancel", h.Order.Cancel)
		orders.GET("/:id/receipt", h.Order.Receipt)
		orders.POST("/:id/receipt", h.Order.PrintReceipt)
	}

	// Dashboard and reports
	protected.GET("/dashboard", h.Dashboard.Stats)
	reports := protected.Group("/reports")
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/sales/export", h.Report.Export)
	}

	// Customers
	protected.GET("/customers", h.Customer.List)

	// Settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", middleware.RequireRole("admin"), h.Settings.Update)

	// Printer
	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.Status)
		printer.POST("/test", h.Printer.Test)
	}
}
