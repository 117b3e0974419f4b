package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/raffle-api/internal/api"
	"github.com/vietanh2810/raffle-api/internal/config"
	"github.com/vietanh2810/raffle-api/internal/db"
	"github.com/vietanh2810/raffle-api/internal/logger"
	"github.com/vietanh2810/raffle-api/internal/service"
)

const (
	configPath      = "./cmd/app/config.yml"
	shutdownTimeout = 10 * time.Second
)

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL, conf.Postgres)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	s := api.NewServer(conf, postgresDB)

	err = config.Watch(configPath, func(rc *config.RaffleConfig) {
		s.Tickets.SetLimits(service.Limits{
			MaxTicketsPerPurchase: rc.MaxTicketsPerPurchase,
			MaxAllocationAttempts: rc.MaxAllocationAttempts,
		})
		zap.L().Info("raffle limits reloaded",
			zap.Int("max_tickets_per_purchase", rc.MaxTicketsPerPurchase),
			zap.Int("max_allocation_attempts", rc.MaxAllocationAttempts),
		)
	}, func(err error) {
		zap.L().Warn("config reload rejected", zap.Error(err))
	})
	if err != nil {
		return fmt.Errorf("failed to watch config -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go service.NewReconciler(s.Tickets, conf.Raffle.ReconcileInterval).Run(ctx)

	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}
