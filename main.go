package main

import (
	"context"
	"errors"
	"gin-manufacturer/config"
	"gin-manufacturer/controllers"
	"gin-manufacturer/dto"
	"gin-manufacturer/infra"
	"gin-manufacturer/middlewares"
	"gin-manufacturer/repositories"
	"gin-manufacturer/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// dependencies ルーターの組み立てに必要なもの。テストではsqliteのリポジトリを渡す
type dependencies struct {
	cfg          *config.Config
	logger       *zap.Logger
	repositories *repositories.Repositories
	tokenService services.ITokenService
	publisher    services.EventPublisher
	payments     services.PaymentProvider
	cache        *redis.Client
}

func setupRouter(deps dependencies) *gin.Engine {
	dto.RegisterValidators()

	productRepository := deps.repositories.Products
	if deps.cache != nil {
		productRepository = repositories.NewCachedProductRepository(productRepository, deps.cache, deps.cfg.Redis.CacheTTL, deps.logger)
	}

	userService := services.NewUserService(deps.repositories.Users, deps.tokenService)
	productService := services.NewProductService(productRepository, deps.publisher)
	reviewService := services.NewReviewService(deps.repositories.Reviews)
	bookingService := services.NewBookingService(deps.repositories.Bookings, deps.repositories.Payments, deps.publisher)
	paymentService := services.NewPaymentService(deps.payments)

	handlers := routeHandlers{
		products: controllers.NewProductController(productService),
		users:    controllers.NewUserController(userService),
		reviews:  controllers.NewReviewController(reviewService),
		bookings: controllers.NewBookingController(bookingService),
		payments: controllers.NewPaymentController(paymentService),
		health:   healthHandler(deps.repositories),
		metrics:  gin.WrapH(promhttp.Handler()),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(deps.cfg.CORSOrigins))
	r.Use(middlewares.Tracing())
	r.Use(middlewares.RequestLogger(deps.logger))
	r.Use(middlewares.Metrics())

	gatekeeper := middlewares.NewGatekeeper(deps.tokenService, userService)
	for _, rt := range routeTable(handlers, deps.cfg.Admin.GrantPolicy) {
		chain := append(gatekeeper.Gate(rt.policy), rt.handler)
		r.Handle(rt.method, rt.path, chain...)
		deps.logger.Debug("route registered",
			zap.String("method", rt.method),
			zap.String("path", rt.path),
			zap.Stringer("policy", rt.policy),
		)
	}

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AddAllowHeaders("Authorization")
	return cors.New(corsConfig)
}

func healthHandler(repos *repositories.Repositories) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := repos.Ping(pingCtx); err != nil {
			infra.LoggerFromContext(ctx.Request.Context()).Warn("health check failed", zap.Error(err))
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func main() {
	if err := infra.Initialize(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := infra.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	shutdownTracer, err := infra.InitTracer(ctx, cfg.Tracing, cfg.Env, logger)
	if err != nil {
		logger.Fatal("Failed to init tracer", zap.Error(err))
	}

	// ストアの接続はプロセスで1つだけ作り、終了時に閉じる
	store, err := infra.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	if cfg.AutoMigrate || store.Driver == "mongo" {
		if err := store.Migrate(ctx); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}
	if cfg.Admin.Email != "" {
		if err := services.EnsureAdmin(ctx, store.Repositories.Users, cfg.Admin.Email); err != nil {
			logger.Fatal("Failed to seed admin", zap.Error(err))
		}
	}

	cache, err := infra.SetupRedis(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, running without product cache", zap.Error(err))
		cache = nil
	}

	var publisher services.EventPublisher = services.NopPublisher{}
	var amqpPublisher *infra.AMQPPublisher
	if cfg.AMQP.URL != "" {
		amqpPublisher, err = infra.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, events will not be published", zap.Error(err))
		} else {
			publisher = amqpPublisher
		}
	}

	// 型付きnilをインターフェースに入れないようにする
	var payments services.PaymentProvider
	if cfg.Stripe.SecretKey != "" {
		payments = infra.NewStripeProvider(cfg.Stripe.SecretKey)
	} else {
		logger.Warn("STRIPE_SECRET_KEY is not set, payment intents are disabled")
	}

	r := setupRouter(dependencies{
		cfg:          cfg,
		logger:       logger,
		repositories: store.Repositories,
		tokenService: services.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpiresIn),
		publisher:    publisher,
		payments:     payments,
		cache:        cache,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("manufacturer app listening", zap.String("port", cfg.Port), zap.String("grant_policy", cfg.Admin.GrantPolicy))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if amqpPublisher != nil {
		_ = amqpPublisher.Close()
	}
	if cache != nil {
		_ = cache.Close()
	}
	if err := store.Close(); err != nil {
		logger.Error("Failed to close store", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown tracer", zap.Error(err))
	}
	logger.Info("Server exited")
}
