package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/DanRulev/vocadeck/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrations embed.FS

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	return db, nil
}

func newProvider(db *sqlx.DB) (*goose.Provider, error) {
	var dialect goose.Dialect
	switch db.DriverName() {
	case "sqlite3":
		dialect = goose.DialectSQLite3
	case "postgres":
		dialect = goose.DialectPostgres
	default:
		return nil, fmt.Errorf("no migrations for driver %q", db.DriverName())
	}

	fsys, err := fs.Sub(migrations, "migrations/"+db.DriverName())
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(dialect, db.DB, fsys)
}

// Migrate applies every pending migration and returns the resulting schema version.
func Migrate(ctx context.Context, db *sqlx.DB) (int64, error) {
	provider, err := newProvider(db)
	if err != nil {
		return 0, fmt.Errorf("failed init migrations: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return 0, fmt.Errorf("failed apply migrations: %w", err)
	}
	return provider.GetDBVersion(ctx)
}

// Rollback reverts the most recent migration.
func Rollback(ctx context.Context, db *sqlx.DB) (int64, error) {
	provider, err := newProvider(db)
	if err != nil {
		return 0, fmt.Errorf("failed init migrations: %w", err)
	}
	if _, err := provider.Down(ctx); err != nil {
		return 0, fmt.Errorf("failed rollback migration: %w", err)
	}
	return provider.GetDBVersion(ctx)
}
