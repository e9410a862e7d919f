package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/safepaws/internal/client/migrations"
	"github.com/dmitrijs2005/safepaws/internal/client/repositories/metadata"
)

// Repositories bundles the local stores opened by InitDatabase.
type Repositories struct {
	DB       *sql.DB
	Metadata *metadata.SQLiteRepository
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

// RunMigrations applies the embedded goose migrations. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn, migrates
// it and wires the repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one connection also keeps ":memory:"
	// databases stable across calls.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}

	return &Repositories{
		DB:       db,
		Metadata: metadata.NewSQLiteRepository(db),
	}, nil
}
