// Package cmd assembles and runs the shop application
package cmd

import (
	"context"
	"errors"
	"net/http"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/config"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// App the HTTP server plus the outbox worker
type App struct {
	config  *config.Config
	router  *api.Router
	server  *http.Server
	db      *gorm.DB
	worker  *database.OutboxWorker
	closers []func() error
}

// Run serves HTTP and relays the outbox until ctx is cancelled or one of
// them fails, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if a.worker != nil {
		g.Go(func() error {
			logger.Info("Outbox worker started",
				zap.Duration("poll_interval", a.config.Outbox.PollInterval),
				zap.Int("batch_size", a.config.Outbox.BatchSize))
			if err := a.worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close releases the database and publisher connections
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// GetEngine Gin engine, for tests
func (a *App) GetEngine() *gin.Engine {
	return a.router.GetEngine()
}

// Worker outbox worker, nil when the outbox is disabled
func (a *App) Worker() *database.OutboxWorker {
	return a.worker
}
