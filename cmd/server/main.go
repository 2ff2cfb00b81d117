package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tradervault/internal/auth"
	"tradervault/internal/cache"
	"tradervault/internal/config"
	"tradervault/internal/db"
	"tradervault/internal/handler"
	"tradervault/internal/logger"
	gormrepository "tradervault/internal/repository/gorm"
	"tradervault/internal/service"
)

func main() {
	cfgPath := os.Getenv("TV_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("TV_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}
	if err := db.SeedMarketData(dbConn); err != nil {
		logger.Warn("market data seed failed", zap.Error(err))
	}

	var kv cache.Store
	if strings.EqualFold(cfg.Cache.Backend, "redis") {
		kv = cache.NewRedisStore(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPass,
			DB:       cfg.Cache.RedisDB,
		})
		logger.Info("cache backend: redis", zap.String("addr", cfg.Cache.RedisAddr))
	} else {
		kv = cache.NewMemoryStore()
		logger.Info("cache backend: memory")
	}

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("auth.jwt_secret is required")
	}
	signer := auth.JWT{
		Secret:   []byte(cfg.Auth.JWTSecret),
		TokenTTL: cfg.Auth.TokenTTL,
	}

	store := gormrepository.New(dbConn.Gorm)

	authSvc := &service.AuthService{Repo: store, JWT: signer, Revoked: kv, Logger: logger}
	portfolioSvc := &service.PortfolioService{
		Repo:       store,
		Cache:      kv,
		Logger:     logger,
		SummaryTTL: cfg.Cache.SummaryTTL,
	}
	accountSvc := &service.AccountService{
		Repo:      store,
		Portfolio: portfolioSvc,
		Demo:      cfg.Demo,
		Logger:    logger,
	}
	tradeSvc := &service.TradeService{
		Repo:      store,
		Portfolio: portfolioSvc,
		Demo:      cfg.Demo,
		Logger:    logger,
		Rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	profileSvc := &service.ProfileService{Repo: store}
	withdrawalSvc := &service.WithdrawalService{Repo: store}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())
	engine.Use(auth.Middleware(signer, kv))

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	handler.RegisterDocs(engine)

	authHandler := &handler.AuthHandler{Service: authSvc}
	authHandler.Register(engine)
	portfolioHandler := &handler.PortfolioHandler{Service: portfolioSvc, Logger: logger}
	portfolioHandler.Register(engine)
	tradeHandler := &handler.TradeHandler{Service: tradeSvc}
	tradeHandler.Register(engine)
	accountHandler := &handler.AccountHandler{Service: accountSvc}
	accountHandler.Register(engine)
	profileHandler := &handler.ProfileHandler{Service: profileSvc}
	profileHandler.Register(engine)
	withdrawalHandler := &handler.WithdrawalHandler{Service: withdrawalSvc}
	withdrawalHandler.Register(engine)
	performanceHandler := &handler.PerformanceHandler{}
	performanceHandler.Register(engine)
	marketDataHandler := &handler.MarketDataHandler{Repo: store}
	marketDataHandler.Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
