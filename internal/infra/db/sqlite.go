// Package db provides database connection and management functionality.
package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/trackify/backend/config"
)

// NewSQLiteConnection creates an embedded SQLite connection for local runs.
// SQLite allows a single writer, so the pool is capped at one connection.
func NewSQLiteConnection(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.URL), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqliteCfg := *cfg
	sqliteCfg.MaxOpenConns = 1
	sqliteCfg.MaxIdleConns = 1
	return configure(db, &sqliteCfg)
}
