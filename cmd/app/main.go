package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seap-dev/subscription-api/internal/config"
	"github.com/seap-dev/subscription-api/internal/handler"
	"github.com/seap-dev/subscription-api/internal/repository"
	"github.com/seap-dev/subscription-api/internal/service"
	"github.com/seap-dev/subscription-api/internal/storage/postgres"
	"github.com/seap-dev/subscription-api/pkg/logger"
)

//	@title			SEAP Subscription API
//	@version		1.0
//	@description	CRUD API for users and their saved-search subscriptions.

//	@host		localhost:8080
//	@basePath	/
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("cant load config: %s", err)
		os.Exit(1)
	}

	log := logger.SetupLogger(cfg.Logger.Level, cfg.Logger.Format, "subscription_api")

	// schema and stored functions must be in place before serving
	if err := postgres.RunMigrations(cfg, log); err != nil {
		log.Error("migration failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	db, err := postgres.NewPostgres(cfg, log)
	if err != nil {
		log.Error("db init error")
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, log)
	subRepo := repository.NewSubscriptionRepository(db, log)

	userSvc := service.NewUserService(userRepo, log)
	subSvc := service.NewSubscriptionService(subRepo, log)

	userHandler := handler.NewUserHandler(userSvc, log)
	subHandler := handler.NewSubscriptionHandler(subSvc, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler.SetupRouter(userHandler, subHandler, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server starting...", slog.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen error", slog.String("err", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}
