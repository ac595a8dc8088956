package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"euler_offline/internal/api"
	"euler_offline/internal/app/service"
	"euler_offline/internal/app/worker"
	"euler_offline/internal/common/security"
	"euler_offline/internal/domain/repository"
	"euler_offline/internal/platform/config"
	"euler_offline/internal/platform/logging"
	"euler_offline/internal/platform/ratelimit"
	"euler_offline/internal/platform/source"

	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	config.Load()
	cfg := config.AppConfig

	// 2. Initialize Logger
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logger.Sync()

	// 3. Initialize JWT
	if cfg.UsesDefaultJWTSecret() {
		logger.Warn("JWT_SECRET is not set, admin tokens are signed with the built-in default secret")
	}
	security.InitJWT(cfg.JWTKey, cfg.JWTExp)

	// 4. Initialize Rate Limiter (Redis is optional)
	var limiter ratelimit.Limiter = ratelimit.Unlimited{}
	if cfg.RedisAddr != "" {
		rdb, err := ratelimit.Connect(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal("redis unavailable", zap.Error(err))
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.CheckRateLimit, cfg.CheckRateWindow)
		logger.Info("answer check rate limit enabled",
			zap.String("redis", cfg.RedisAddr),
			zap.Int("limit", cfg.CheckRateLimit),
			zap.Duration("window", cfg.CheckRateWindow))
	}

	// 5. Load Corpus
	problemRepo := repository.NewMemProblemRepository()
	problemService := service.NewProblemService(problemRepo, source.NewFile(cfg.CorpusPath), limiter, logger)
	if _, err := problemService.Reload(context.Background()); err != nil {
		logger.Fatal("could not load corpus", zap.String("path", cfg.CorpusPath), zap.Error(err))
	}

	// 6. Initialize Reload Worker (as a goroutine)
	reloadWorker := worker.NewReloadWorker(problemService, cfg.ReloadCron, logger)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		if err := reloadWorker.Start(workerCtx); err != nil {
			logger.Error("reload worker exited", zap.Error(err))
		}
	}()

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(problemService, logger)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("port", cfg.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not listen", zap.String("port", cfg.APIPort), zap.Error(err))
		}
	}()

	<-stop

	logger.Info("shutting down server")
	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	<-workerDone

	logger.Info("server and worker stopped gracefully")
}
