package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api"
	apicustomer "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/customer"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/health"
	apiorder "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/order"
	apiproduct "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/api/product"
	customerapp "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application/customer"
	orderapp "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application/order"
	productapp "github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/application/product"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/config"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/eventhandler"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/retry"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg       *config.Config
	db        *gorm.DB
	mailer    eventhandler.Mailer
	publisher database.OutboxPublisher
}

func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{cfg: cfg}
}

// WithDatabase uses db instead of connecting from config
func (b *AppBuilder) WithDatabase(db *gorm.DB) *AppBuilder {
	b.db = db
	return b
}

// WithMailer replaces the logging mailer used by product notifications
func (b *AppBuilder) WithMailer(m eventhandler.Mailer) *AppBuilder {
	b.mailer = m
	return b
}

// WithPublisher replaces the publisher selected by outbox.publisher
func (b *AppBuilder) WithPublisher(p database.OutboxPublisher) *AppBuilder {
	b.publisher = p
	return b
}

// Build wires persistence, services, controllers and the outbox worker.
// The logger must already be initialised.
func (b *AppBuilder) Build() (*App, error) {
	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	app := &App{config: b.cfg}

	db := b.db
	if db == nil {
		var err error
		db, err = b.initDatabase()
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})
	}
	app.db = db

	customerRepo := database.NewCustomerRepository(db)
	productRepo := database.NewProductRepository(db)
	orderRepo := database.NewOrderRepository(db)

	uow := database.NewUnitOfWork(db)
	uow.SetRetryConfig(retry.FromAppConfig(b.cfg.Database.Retry))

	var outbox eventhandler.OutboxStore
	if b.cfg.Outbox.Enabled {
		outbox = database.NewOutboxRepository(db)
	}
	bus := eventhandler.NewRegistry(b.mailer, outbox)

	customerService := customerapp.NewApplicationService(customerRepo, uow, bus)
	productService := productapp.NewApplicationService(productRepo, uow, bus)
	orderService := orderapp.NewApplicationService(orderRepo, customerRepo, productRepo, uow, bus)

	router := api.NewRouter(
		b.cfg,
		health.NewController(b.cfg, func(ctx context.Context) error { return database.Ping(ctx, db) }),
		apicustomer.NewController(customerService),
		apiproduct.NewController(productService),
		apiorder.NewController(orderService),
	)
	router.SetupRoutes()

	app.router = router
	app.server = &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	if b.cfg.Outbox.Enabled {
		worker, err := b.initWorker(db, app)
		if err != nil {
			_ = app.Close()
			return nil, err
		}
		app.worker = worker
	}

	return app, nil
}

func (b *AppBuilder) initDatabase() (*gorm.DB, error) {
	dbConfig := NewDatabaseConfig(b.cfg)

	db, err := dbConfig.Connect()
	if err != nil {
		return nil, err
	}
	if err := database.Ping(context.Background(), db); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if b.cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to auto migrate: %w", err)
		}
	}
	return db, nil
}

func (b *AppBuilder) initWorker(db *gorm.DB, app *App) (*database.OutboxWorker, error) {
	publisher := b.publisher
	if publisher == nil {
		p, closePublisher, err := NewOutboxPublisher(&b.cfg.Outbox)
		if err != nil {
			return nil, err
		}
		publisher = p
		app.closers = append(app.closers, closePublisher)
	}
	return NewOutboxWorker(&b.cfg.Outbox, db, publisher)
}
