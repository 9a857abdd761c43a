package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/infrastructure/auth"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/handler"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/middleware"
)

// Config wires the handlers and cross-cutting services into the router
type Config struct {
	AuthHandler      *handler.AuthHandler
	TariffHandler    *handler.TariffHandler
	CustomerHandler  *handler.CustomerHandler
	UsageHandler     *handler.UsageHandler
	BillHandler      *handler.BillHandler
	DashboardHandler *handler.DashboardHandler
	PortalHandler    *handler.PortalHandler
	HealthHandler    *handler.HealthHandler

	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	CORS       middleware.CORSConfig
	Logger     *zap.Logger
}

// Setup builds the gin engine with the full route table:
// public login and health, the admin surface under /api/admin, and the
// customer portal under /api/portal.
func Setup(engine *gin.Engine, cfg Config) {
	engine.Use(
		middleware.RequestID(),
		middleware.CORSWithConfig(cfg.CORS),
		middleware.Secure(),
	)

	engine.GET("/health", cfg.HealthHandler.Check)

	api := engine.Group("/api")
	api.POST("/auth/login", cfg.AuthHandler.Login)

	authenticated := api.Group("", middleware.Authenticate(middleware.AuthConfig{
		JWTService: cfg.JWTService,
		Blacklist:  cfg.Blacklist,
		Logger:     cfg.Logger,
	}))
	authenticated.POST("/auth/logout", cfg.AuthHandler.Logout)
	authenticated.GET("/auth/me", cfg.AuthHandler.Me)

	registerAdminRoutes(authenticated, cfg)
	registerPortalRoutes(authenticated, cfg)
}

func registerAdminRoutes(parent *gin.RouterGroup, cfg Config) {
	admin := parent.Group("/admin", middleware.RequireAdmin())

	admin.GET("/stats", cfg.DashboardHandler.Stats)

	tariffs := admin.Group("/tariffs")
	tariffs.GET("", cfg.TariffHandler.List)
	tariffs.POST("", cfg.TariffHandler.Create)
	tariffs.GET("/:id", cfg.TariffHandler.Get)
	tariffs.PUT("/:id", cfg.TariffHandler.Update)
	tariffs.DELETE("/:id", cfg.TariffHandler.Delete)

	customers := admin.Group("/customers")
	customers.GET("", cfg.CustomerHandler.List)
	customers.POST("", cfg.CustomerHandler.Create)
	customers.GET("/search", cfg.CustomerHandler.Search)
	customers.GET("/:id", cfg.CustomerHandler.Get)
	customers.PUT("/:id", cfg.CustomerHandler.Update)
	customers.DELETE("/:id", cfg.CustomerHandler.Delete)

	usages := admin.Group("/usages")
	usages.GET("", cfg.UsageHandler.List)
	usages.POST("", cfg.UsageHandler.Record)
	usages.GET("/:id", cfg.UsageHandler.Get)
	usages.PUT("/:id", cfg.UsageHandler.Update)
	usages.DELETE("/:id", cfg.UsageHandler.Delete)

	bills := admin.Group("/bills")
	bills.GET("", cfg.BillHandler.List)
	bills.PUT("/:id/status", cfg.BillHandler.SetStatus)
	bills.POST("/:id/pay", cfg.BillHandler.Pay)
	bills.DELETE("/:id", cfg.BillHandler.Delete)
}

func registerPortalRoutes(parent *gin.RouterGroup, cfg Config) {
	portal := parent.Group("/portal", middleware.RequireCustomer())

	portal.GET("/dashboard", cfg.PortalHandler.Dashboard)
	portal.GET("/usages", cfg.PortalHandler.Usages)
	portal.GET("/bills", cfg.PortalHandler.Bills)
	portal.POST("/bills/:id/pay", cfg.PortalHandler.PayBill)
	portal.GET("/payments", cfg.PortalHandler.Payments)
	portal.PUT("/password", cfg.PortalHandler.ChangePassword)
}
