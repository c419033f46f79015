package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/tastehunt/backend/internal/application/identity"
	inventoryapp "github.com/tastehunt/backend/internal/application/inventory"
	orderapp "github.com/tastehunt/backend/internal/application/order"
	reportapp "github.com/tastehunt/backend/internal/application/report"
	"github.com/tastehunt/backend/internal/domain/report"
	"github.com/tastehunt/backend/internal/infrastructure/auth"
	"github.com/tastehunt/backend/internal/infrastructure/config"
	"github.com/tastehunt/backend/internal/infrastructure/logger"
	"github.com/tastehunt/backend/internal/infrastructure/persistence"
	"github.com/tastehunt/backend/internal/infrastructure/printing"
	"github.com/tastehunt/backend/internal/infrastructure/scheduler"
	"github.com/tastehunt/backend/internal/infrastructure/storage"
	"github.com/tastehunt/backend/internal/interfaces/http/handler"
	"github.com/tastehunt/backend/internal/interfaces/http/middleware"
	"github.com/tastehunt/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Taste Hunt Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Database with GORM logging routed through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)

	// Token blacklist: Redis when reachable, in-memory otherwise.
	// Logout still works on the fallback, it just doesn't survive restarts.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	}

	// PDF renderer
	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Printing.RenderTimeout,
		RemoteURL:      cfg.Printing.ChromeRemoteURL,
		NoSandbox:      cfg.Printing.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	// Application services
	clock := report.SystemClock{}
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	orderService := orderapp.NewService(orderRepo, userRepo, log)
	inventoryService := inventoryapp.NewService(inventoryRepo, log)
	dashboardService := reportapp.NewDashboardService(orderRepo, clock, log)
	documentService := reportapp.NewDocumentService(orderRepo, orderRepo, renderer, clock, log)

	// Nightly report archiver (if enabled)
	if cfg.Scheduler.Enabled {
		archive, err := buildReportArchive(cfg, log)
		if err != nil {
			log.Fatal("Failed to initialize report archive", zap.Error(err))
		}

		hour, minute, err := scheduler.ParseCronSchedule(cfg.Scheduler.DailyCronSchedule)
		if err != nil {
			log.Warn("Invalid cron schedule, using default", zap.Error(err))
		}
		archiverConfig := scheduler.DefaultReportArchiverConfig()
		archiverConfig.CronHour = hour
		archiverConfig.CronMinute = minute
		archiverConfig.DailyCronSchedule = cfg.Scheduler.DailyCronSchedule
		archiverConfig.JobTimeout = cfg.Scheduler.JobTimeout

		archiver := scheduler.NewReportArchiver(archiverConfig, documentService, archive, clock, log)
		if err := archiver.Start(context.Background()); err != nil {
			log.Fatal("Failed to start report archiver", zap.Error(err))
		}
		defer func() {
			if err := archiver.Stop(context.Background()); err != nil {
				log.Error("Error stopping report archiver", zap.Error(err))
			}
		}()
		log.Info("Report archiver started",
			zap.Int("cron_hour", hour),
			zap.Int("cron_minute", minute),
			zap.Duration("job_timeout", archiverConfig.JobTimeout),
		)
	}

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	reportHandler := handler.NewReportHandler(dashboardService, documentService)
	systemHandler := handler.NewSystemHandler(db, version)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, then JWT auth on the API group.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Health probe outside API versioning; also skipped by the JWT middleware
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler).
		Register(authHandler).
		Register(userHandler).
		Register(orderHandler).
		Register(inventoryHandler).
		Register(reportHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// buildReportArchive returns the S3 archive when storage is configured,
// otherwise the in-memory stub so the archiver can still run in development.
func buildReportArchive(cfg *config.Config, log *zap.Logger) (storage.ReportArchive, error) {
	if !cfg.Storage.Enabled {
		log.Info("Report archive storage disabled, using in-memory stub")
		return storage.NewStubReportArchive(), nil
	}

	archive, err := storage.NewS3ReportArchive(&cfg.Storage, storage.WithLogger(log))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := archive.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	log.Info("Report archive storage ready",
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("key_prefix", cfg.Storage.KeyPrefix),
	)
	return archive, nil
}
