package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/planner-backend/config"
	"github.com/GoSim-25-26J-441/planner-backend/internal/auth"
	"github.com/GoSim-25-26J-441/planner-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/planner-backend/internal/logging"
)

const serviceName = "planner-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		logger.Fatal("open redis", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		logger.Info("REDIS_URL not set, breakdown cache disabled")
	}

	gen, err := bootstrap.NewGenerator(ctx, cfg, rdb, logger)
	if err != nil {
		logger.Fatal("init breakdown generator", zap.Error(err))
	}

	verifier, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		logger.Fatal("init firebase", zap.Error(err))
	}
	if verifier == nil {
		logger.Warn("FIREBASE_CREDENTIALS_PATH not set, trusting X-User-Id", zap.String("dev_user", cfg.Firebase.DevUserID))
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		DevUserID:      cfg.Firebase.DevUserID,
		DB:             db,
		Redis:          rdb,
		Generator:      gen,
		Verifier:       verifier,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
