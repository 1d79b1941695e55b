// Package mock provides the in-memory infrastructure backing the
// integration suite: a shared sqlite database and a miniredis instance.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var sharedDb *Db

// Db wraps a gorm connection over a shared in-memory sqlite database,
// migrated once for the whole suite. Scenarios call ClearDB between runs
// instead of reopening the connection.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb returns the process-wide test database, opening and migrating it on
// first use. The models map is keyed by table name so assertion steps can
// look up the gorm model for a table.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		sharedDb = openDb(models)
	})
	return sharedDb
}

func openDb(models map[string]any) *Db {
	// A single connection keeps every scenario on the same shared
	// in-memory database.
	conn, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	conn.SetMaxOpenConns(1)

	gormDb, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	d := &Db{DbConn: gormDb, models: models}

	modelList := make([]any, 0, len(models))
	for _, model := range models {
		modelList = append(modelList, model)
	}
	if err := gormDb.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}
	for _, model := range modelList {
		if !gormDb.Migrator().HasTable(model) {
			panic(fmt.Sprintf("table for model %T was not created", model))
		}
	}

	return d
}

// ClearDB wipes every row, including soft-deleted ones, and resets sqlite's
// autoincrement bookkeeping. Tables are left migrated.
func (d *Db) ClearDB() error {
	for table, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}
	return nil
}

// GetModel returns the gorm model registered for the given table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
