package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	authapp "github.com/trendly/pricetrack/internal/auth/application"
	authmemory "github.com/trendly/pricetrack/internal/auth/infrastructure/persistence/memory"
	authredis "github.com/trendly/pricetrack/internal/auth/infrastructure/persistence/redis"
	authhttp "github.com/trendly/pricetrack/internal/auth/interfaces/http"
	catalogapp "github.com/trendly/pricetrack/internal/catalog/application"
	catalogmemory "github.com/trendly/pricetrack/internal/catalog/infrastructure/persistence/memory"
	cataloghttp "github.com/trendly/pricetrack/internal/catalog/interfaces/http"
	searchhttp "github.com/trendly/pricetrack/internal/marketsearch/interfaces/http"
	"github.com/trendly/pricetrack/internal/marketsearch/serpapi"
	"github.com/trendly/pricetrack/internal/refresher"
	watchlistapp "github.com/trendly/pricetrack/internal/watchlist/application"
	watchlistmemory "github.com/trendly/pricetrack/internal/watchlist/infrastructure/persistence/memory"
	watchlisthttp "github.com/trendly/pricetrack/internal/watchlist/interfaces/http"
	pkgauth "github.com/trendly/pricetrack/pkg/auth"
	"github.com/trendly/pricetrack/pkg/cache"
	"github.com/trendly/pricetrack/pkg/config"
	"github.com/trendly/pricetrack/pkg/logger"
	"github.com/trendly/pricetrack/pkg/middleware"
	"github.com/trendly/pricetrack/pkg/mq"
	"github.com/trendly/pricetrack/pkg/ratelimit"

	authdomain "github.com/trendly/pricetrack/internal/auth/domain"
)

var configPath = flag.String("config", "configs/config.toml", "config file path")

func main() {
	flag.Parse()

	// 1. 配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. 日志
	if err := logger.Init(cfg.Logger); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 3. 事件发布
	var publisher mq.Publisher = mq.NopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = mq.NewKafkaPublisher(mq.Config{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
	}
	defer publisher.Close()

	// 4. 会话存储
	var redisCache *cache.RedisCache
	var sessionRepo authdomain.SessionRepository = authmemory.NewSessionRepository()
	if cfg.Redis.Enabled {
		redisCache, err = cache.New(cache.Config{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			MaxPoolSize:  cfg.Redis.MaxPoolSize,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			slog.Error("failed to init redis", "error", err)
			os.Exit(1)
		}
		defer redisCache.Close()
		sessionRepo = authredis.NewSessionRepository(redisCache.Client())
	}

	// 5. 仓储
	userRepo := authmemory.NewUserRepository()
	productRepo := catalogmemory.NewProductRepository()
	historyRepo := catalogmemory.NewPriceHistoryRepository()
	watchlistRepo := watchlistmemory.NewWatchlistRepository()

	// 6. 应用服务
	tokens := pkgauth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	authService := authapp.NewAuthService(userRepo, sessionRepo, tokens, publisher)
	catalogService := catalogapp.NewCatalogService(productRepo, historyRepo, publisher)
	watchlistService := watchlistapp.NewWatchlistService(watchlistRepo, catalogService.Queries(), publisher)

	searcher := serpapi.New(serpapi.Config{
		Endpoint: cfg.Search.Endpoint,
		APIKey:   cfg.Search.APIKey,
		Timeout:  time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
	})

	// 7. 示例数据
	if err := catalogService.Commands().Seed(context.Background()); err != nil {
		slog.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	// 8. 接口层
	if cfg.Environment != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.GinRecoveryMiddleware())
	r.Use(middleware.GinLoggingMiddleware())
	r.Use(middleware.GinCORSMiddleware())

	authRequired := middleware.JWTAuth(tokens)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	authhttp.NewHandler(authService.Commands(), authService.Queries()).RegisterRoutes(api, authRequired)
	cataloghttp.NewHandler(catalogService.Commands(), catalogService.Queries()).RegisterRoutes(api)
	watchlisthttp.NewHandler(watchlistService.Commands(), watchlistService.Queries()).RegisterRoutes(api, authRequired)
	var searchMiddlewares []gin.HandlerFunc
	if cfg.RateLimit.Enabled && redisCache != nil {
		limiter := ratelimit.NewRedisLimiter(redisCache.Client())
		searchMiddlewares = append(searchMiddlewares,
			middleware.GinRateLimitMiddleware(limiter, cfg.RateLimit.QPS, cfg.RateLimit.Burst))
	}
	searchhttp.NewHandler(searcher).RegisterRoutes(api, searchMiddlewares...)

	// 9. 启动
	g, ctx := errgroup.WithContext(context.Background())

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return refresher.New(catalogService, watchlistService.Commands(),
			time.Duration(cfg.Refresher.IntervalSeconds)*time.Second).Run(ctx)
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down server...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
