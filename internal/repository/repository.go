// Package repository is the storage gateway: one SQLite connection,
// parametrized statements only, and per-entity query methods. It knows
// nothing about field validation; it reports missing rows through the
// shared error taxonomy and leaves everything else to the services.
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"whiteboard/internal/config"
	"whiteboard/internal/db/migrations"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType
}

// NewRepository opens the SQLite database at the configured path.
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.Database.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// The model layer is synchronous and request-scoped; a single
	// connection avoids SQLITE_BUSY on concurrent test writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{
		DB:      db,
		Cache:   cache.New(5*time.Minute, 10*time.Minute),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}

// MigrateUp applies all pending schema migrations from the embedded FS.
func (r *Repository) MigrateUp() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(r.DB, ".")
}

// MigrateDown rolls back the most recent migration.
func (r *Repository) MigrateDown() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Down(r.DB, ".")
}

// MigrationStatus prints the goose migration table.
func (r *Repository) MigrationStatus() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Status(r.DB, ".")
}
