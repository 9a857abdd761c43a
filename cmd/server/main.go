package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/billing"
	catalogapp "github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/catalog"
	customerapp "github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/customer"
	identityapp "github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/application/identity"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/infrastructure/auth"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/infrastructure/config"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/infrastructure/logger"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/infrastructure/persistence"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/handler"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/middleware"
	"github.com/agusydk3/Aplikasi-Pembayaran-Listrik-Pascabayar/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("starting listrik pascabayar backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	log.Info("database connected")

	blacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// repositories
	tariffRepo := persistence.NewGormTariffRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	usageRepo := persistence.NewGormUsageRepository(db.DB)
	billRepo := persistence.NewGormBillRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	adminUserRepo := persistence.NewGormAdminUserRepository(db.DB)

	// application services
	tariffService := catalogapp.NewTariffService(tariffRepo, customerRepo)
	customerService := customerapp.NewCustomerService(customerRepo, tariffRepo)
	usageService := billingapp.NewUsageService(usageRepo, billRepo, customerRepo)
	billService := billingapp.NewBillService(billRepo, customerRepo, tariffRepo, cfg.Billing.AdminFee)
	paymentService := billingapp.NewPaymentQueryService(paymentRepo)
	dashboardService := billingapp.NewDashboardService(customerRepo, usageRepo, billRepo, paymentRepo, cfg.Billing.AdminFee)
	authService := identityapp.NewAuthService(adminUserRepo, customerRepo, tariffRepo, jwtService, blacklist, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(logger.GinMiddleware(log), logger.Recovery(log))
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	router.Setup(engine, router.Config{
		AuthHandler:      handler.NewAuthHandler(authService),
		TariffHandler:    handler.NewTariffHandler(tariffService),
		CustomerHandler:  handler.NewCustomerHandler(customerService),
		UsageHandler:     handler.NewUsageHandler(usageService),
		BillHandler:      handler.NewBillHandler(billService),
		DashboardHandler: handler.NewDashboardHandler(dashboardService),
		PortalHandler: handler.NewPortalHandler(
			dashboardService, usageService, billService, paymentService, customerService),
		HealthHandler: handler.NewHealthHandler(db),
		JWTService:    jwtService,
		Blacklist:     blacklist,
		CORS:          corsConfig,
		Logger:        log,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	if err := blacklist.Close(); err != nil {
		log.Error("error closing redis", zap.Error(err))
	}
	log.Info("server stopped")
}
