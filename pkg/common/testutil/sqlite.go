// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cadastro-pessoas/pkg/common/config"
	"cadastro-pessoas/pkg/core/model"
)

// NewSQLiteDB returns a migrated, private in-memory database with foreign keys
// enforced. It is closed when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := config.OpenDB(config.DatabaseConfig{
		Driver:   "sqlite",
		DSN:      "file::memory:?_foreign_keys=on",
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// TestConfig is config.Default with limits that do not get in the way of tests.
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.Database.Driver = "sqlite"
	cfg.Middleware.Security.RequireUserAgent = false
	cfg.Middleware.RateLimit.Rate = 0
	return &cfg
}
