// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	appConfig "github.com/weteam/classroom/internal/config"
	courseRouter "github.com/weteam/classroom/internal/course/router"
	"github.com/weteam/classroom/internal/database/database"
	"github.com/weteam/classroom/internal/database/migrate"
	"github.com/weteam/classroom/internal/health"
	"github.com/weteam/classroom/internal/middleware"
	teamRouter "github.com/weteam/classroom/internal/team/router"
	userRouter "github.com/weteam/classroom/internal/user/router"
	"github.com/weteam/classroom/pkg/logger"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.New()
	if err != nil {
		zl.Fatalw("failed to connect to database", "error", err)
	}

	if err := migrate.Migrate(db); err != nil {
		zl.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zl))
	r.Use(middleware.Logger(zl))

	healthHandler := health.New(db, zl)
	r.GET("/health", healthHandler.Check)

	userRouter.RegisterRoutes(r, db, zl)
	courseRouter.RegisterRoutes(r, db, zl)
	teamRouter.RegisterRoutes(r, db, zl)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Infow("server starting", "address", srv.Addr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			zl.Fatalw("server failed", "error", serveErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Errorw("server shutdown failed", "error", err)
	}
	zl.Infow("server stopped")
}
