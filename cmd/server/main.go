// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/projectgichatbot-max/gitag-backend/internal/config"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository/fire"
	"github.com/projectgichatbot-max/gitag-backend/internal/repository/postgres"
	"github.com/projectgichatbot-max/gitag-backend/internal/router"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}
	if cfg.Environment != "production" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
	}

	// Backend selection: postgres when reachable, Firestore (or its
	// in-memory demo mode) otherwise. The choice is made once at startup
	// and held for the process lifetime.
	var openPrimary repository.OpenFunc
	if cfg.DatabaseConfigured() {
		openPrimary = func(ctx context.Context) (repository.Store, error) {
			return postgres.Open(ctx, postgres.Config{
				DSN:          cfg.Database.DSN(),
				MaxOpenConns: cfg.Database.MaxOpenConns,
				MaxIdleConns: cfg.Database.MaxIdleConns,
				MaxLifetime:  cfg.Database.MaxLifetime,
				LogLevel:     cfg.Database.LogLevel,
			})
		}
	}
	openSecondary := func(ctx context.Context) (repository.Store, error) {
		return fire.Open(ctx, fire.Config{
			ProjectID:       cfg.Firestore.ProjectID,
			CredentialsFile: cfg.Firestore.CredentialsFile,
		}, logger), nil
	}

	provider := repository.NewProvider(openPrimary, openSecondary, logger)
	defer provider.Close()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := provider.Store(startCtx); err != nil {
		cancelStart()
		logger.WithError(err).Fatal("no storage backend available")
	}
	cancelStart()
	logger.WithField("backend", provider.Active()).Info("storage backend ready")

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Initialize(provider, cfg, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}
	logger.Info("server exited")
}
