// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkarlsson/priceportal/internal/dbx"
	"github.com/dkarlsson/priceportal/internal/server/migrations"
	"github.com/dkarlsson/priceportal/internal/server/repositories/pricelist"
	"github.com/dkarlsson/priceportal/internal/server/repositories/terms"
	"github.com/dkarlsson/priceportal/internal/server/repositories/texts"
	"github.com/dkarlsson/priceportal/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Pricelist returns a pricelist.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Pricelist(db dbx.DBTX) pricelist.Repository {
	return pricelist.NewPostgresRepository(db)
}

// Terms returns a terms.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Terms(db dbx.DBTX) terms.Repository {
	return terms.NewPostgresRepository(db)
}

// Texts returns a texts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Texts(db dbx.DBTX) texts.Repository {
	return texts.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
