// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/akozlova/marketplace-be/internal/adapters/db"
	redis_a "github.com/akozlova/marketplace-be/internal/adapters/redis_adapter"
	"github.com/akozlova/marketplace-be/internal/core/ports"
	"github.com/akozlova/marketplace-be/internal/core/services"
	"github.com/akozlova/marketplace-be/internal/handlers"
	"github.com/akozlova/marketplace-be/internal/handlers/middleware"
	"github.com/akozlova/marketplace-be/internal/pkg/config"
	"github.com/akozlova/marketplace-be/internal/pkg/logger"
	"github.com/akozlova/marketplace-be/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting marketplace back office",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger.Logger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	// Run database migrations if enabled
	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger.Logger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Don't exit in development, just warn
		}
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
			slog.Bool("tls", cfg.Server.TLSEnabled),
		)

		if cfg.Server.TLSEnabled {
			serverErrors <- server.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		if deps.asynqClient != nil {
			if err := deps.asynqClient.Close(); err != nil {
				slogger.Error("failed to close Asynq client", slog.String("error", err.Error()))
			}
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       ports.Database
	redisClient    *redis.Client
	redisCache     ports.CacheRepository
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	acceptanceService ports.AcceptanceService
	postingService    ports.PostingService
	discountService   ports.DiscountService
	skuService        ports.SkuService
	taskService       ports.TaskService

	acceptanceHandler *handlers.AcceptanceHandler
	postingHandler    *handlers.PostingHandler
	discountHandler   *handlers.DiscountHandler
	skuHandler        *handlers.SkuHandler
	taskHandler       *handlers.TaskHandler
	exportHandler     *handlers.ExportHandler
	healthHandler     *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisOpts := &redis.Options{
		Addr:            fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		ConnMaxLifetime: cfg.Redis.MaxConnAge,
		PoolTimeout:     cfg.Redis.PoolTimeout,
		ConnMaxIdleTime: cfg.Redis.IdleTimeout,
	}

	redisClient := redis.NewClient(redisOpts)

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, logger)

	logger.Info("initializing Asynq client")

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	deps.asynqClient = asynqClient

	asynqInspector := asynq.NewInspector(asynqRedisOpt)
	deps.asynqInspector = asynqInspector

	// Initialize repositories
	acceptanceRepo := db.NewAcceptanceRepository(database, logger)
	postingRepo := db.NewPostingRepository(database, logger)
	discountRepo := db.NewDiscountRepository(database, logger)
	skuRepo := db.NewSkuRepository(database, logger)
	itemRepo := db.NewItemRepository(database, logger)
	taskRepo := db.NewTaskRepository(database, logger)

	// Initialize services
	enqueuer := workers.NewAsynqEnqueuer(asynqClient, logger)
	deps.acceptanceService = services.NewAcceptanceService(acceptanceRepo, skuRepo, itemRepo, taskRepo, database, enqueuer, logger)
	deps.postingService = services.NewPostingService(postingRepo, itemRepo, taskRepo, database, enqueuer, logger)
	deps.discountService = services.NewDiscountService(discountRepo, skuRepo, database, enqueuer, deps.redisCache, logger)
	deps.skuService = services.NewSkuService(skuRepo, itemRepo, taskRepo, postingRepo, database, deps.redisCache, logger)
	deps.taskService = services.NewTaskService(taskRepo, itemRepo, logger)

	// Initialize handlers
	deps.acceptanceHandler = handlers.NewAcceptanceHandler(deps.acceptanceService, logger)
	deps.postingHandler = handlers.NewPostingHandler(deps.postingService, logger)
	deps.discountHandler = handlers.NewDiscountHandler(deps.discountService, logger)
	deps.skuHandler = handlers.NewSkuHandler(deps.skuService, logger)
	deps.taskHandler = handlers.NewTaskHandler(deps.taskService, logger)
	deps.exportHandler = handlers.NewExportHandler(database, logger)
	deps.healthHandler = handlers.NewHealthHandler(
		database,
		redisClient,
		asynqInspector,
		cfg,
		logger,
	)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, slogger *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	// Setup middleware chain
	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.App.Environment != "test" {
		handler = middleware.RequestID(handler)
		handler = middleware.Logger(slogger)(handler)
		handler = middleware.Recovery(slogger.Logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg)

	server := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(slogger.Handler(), slog.LevelError),
	}

	return server
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	if cfg.Server.EnableHealthCheck {
		mux.HandleFunc("GET /health", deps.healthHandler.Health)
		mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
		mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)
	}

	// Posting endpoints
	mux.HandleFunc("POST "+apiV1+"/posting/createPosting", deps.postingHandler.CreatePosting)
	mux.HandleFunc("GET "+apiV1+"/posting/getPosting", deps.postingHandler.GetPosting)
	mux.HandleFunc("POST "+apiV1+"/posting/cancelPosting", deps.postingHandler.CancelPosting)

	// Acceptance endpoints
	mux.HandleFunc("POST "+apiV1+"/acceptance/createAcceptance", deps.acceptanceHandler.CreateAcceptance)
	mux.HandleFunc("GET "+apiV1+"/acceptance/getAcceptanceInfo", deps.acceptanceHandler.GetAcceptanceInfo)

	// Discount endpoints
	mux.HandleFunc("POST "+apiV1+"/discount/createDiscount", deps.discountHandler.CreateDiscount)
	mux.HandleFunc("POST "+apiV1+"/discount/cancelDiscount", deps.discountHandler.CancelDiscount)
	mux.HandleFunc("GET "+apiV1+"/discount/getDiscount", deps.discountHandler.GetDiscount)

	// Sku and item endpoints
	mux.HandleFunc("GET "+apiV1+"/sku/getSkuInfo", deps.skuHandler.GetSkuInfo)
	mux.HandleFunc("GET "+apiV1+"/sku/getItemInfo", deps.skuHandler.GetItemInfo)
	mux.HandleFunc("GET "+apiV1+"/sku/getItemInfoBySkuId", deps.skuHandler.GetItemInfoBySkuID)
	mux.HandleFunc("POST "+apiV1+"/sku/markdownItem", deps.skuHandler.MarkdownItem)
	mux.HandleFunc("POST "+apiV1+"/sku/setSkuPrice", deps.skuHandler.SetSkuPrice)
	mux.HandleFunc("POST "+apiV1+"/sku/toggleIsHidden", deps.skuHandler.ToggleIsHidden)
	mux.HandleFunc("POST "+apiV1+"/sku/moveToNotFound", deps.skuHandler.MoveToNotFound)

	// Task endpoints
	mux.HandleFunc("GET "+apiV1+"/task/getTaskInfo", deps.taskHandler.GetTaskInfo)
	mux.HandleFunc("POST "+apiV1+"/task/finishTask", deps.taskHandler.FinishTask)

	// Export endpoints
	mux.HandleFunc("GET "+apiV1+"/export/skus.xlsx", deps.exportHandler.ExportSkusExcel)

	// pprof endpoints (development only)
	if cfg.Server.EnablePprof && cfg.IsDevelopment() {
		mux.HandleFunc("GET /debug/pprof/", http.HandlerFunc(http.DefaultServeMux.ServeHTTP))
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
