package cmd

import (
	"fmt"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/config"
	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func NewDatabaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		LogLevel:        cfg.Database.LogLevel,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
}

// NewOutboxPublisher selects the relay target named by outbox.publisher.
// The returned close func releases the redis client, if any.
func NewOutboxPublisher(cfg *config.OutboxConfig) (database.OutboxPublisher, func() error, error) {
	switch cfg.Publisher {
	case "", "log":
		return &database.LoggingPublisher{}, func() error { return nil }, nil
	case "redis":
		client := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{cfg.Redis.Addr},
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return database.NewRedisPublisher(client, cfg.Redis.Channel), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported outbox publisher %q", cfg.Publisher)
	}
}

// NewOutboxWorker wires the relay worker for db
func NewOutboxWorker(cfg *config.OutboxConfig, db *gorm.DB, publisher database.OutboxPublisher) (*database.OutboxWorker, error) {
	return database.NewOutboxWorker(
		database.NewOutboxRepository(db),
		publisher,
		cfg.PollInterval,
		cfg.BatchSize,
		cfg.MaxRetries,
	)
}
