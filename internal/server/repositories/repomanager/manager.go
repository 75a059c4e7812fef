package repomanager

import (
	"context"
	"database/sql"

	"github.com/dkarlsson/priceportal/internal/dbx"
	"github.com/dkarlsson/priceportal/internal/server/repositories/pricelist"
	"github.com/dkarlsson/priceportal/internal/server/repositories/terms"
	"github.com/dkarlsson/priceportal/internal/server/repositories/texts"
	"github.com/dkarlsson/priceportal/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Pricelist(db dbx.DBTX) pricelist.Repository
	Terms(db dbx.DBTX) terms.Repository
	Texts(db dbx.DBTX) texts.Repository
}
