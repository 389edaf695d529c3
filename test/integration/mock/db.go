// Package mock provides in-process doubles for the database and Redis used by the BDD suite.
package mock

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *Db
)

// Db is a named in-memory SQLite database shared by every scenario.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	tables []string
}

// NewDb opens the shared database and migrates the given models, keyed by table name.
// Every call returns the same instance.
func NewDb(name string, models map[string]any) *Db {
	once.Do(func() {
		conn, err := open(name)
		if err != nil {
			panic(err)
		}

		tables := make([]string, 0, len(models))
		migrate := make([]any, 0, len(models))
		for table := range models {
			tables = append(tables, table)
		}
		sort.Strings(tables)
		for _, table := range tables {
			migrate = append(migrate, models[table])
		}

		if err := conn.AutoMigrate(migrate...); err != nil {
			panic(fmt.Sprintf("failed to migrate test database: %v", err))
		}

		db = &Db{DbConn: conn, models: models, tables: tables}
	})

	return db
}

func open(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	// The in-memory database lives as long as one connection stays open.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return conn, nil
}

// ClearDB empties every registered table in one transaction.
func (d *Db) ClearDB() error {
	return d.DbConn.Transaction(func(tx *gorm.DB) error {
		for _, table := range d.tables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
