// Package dbtest opens throwaway databases for repository tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xRenanMartins/ddd-tactical-modeling-and-patterns/infrastructure/persistence/database"
)

// Open returns a migrated in-memory SQLite database closed at the end of the test
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &database.Config{
		Driver:   database.DriverSQLite,
		Database: ":memory:",
		LogLevel: "silent",
	}
	db, err := cfg.Connect()
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
