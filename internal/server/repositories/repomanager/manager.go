// Package repomanager maps a database handle (pooled connection or open
// transaction) to typed repositories, so services can run the same
// repository code inside and outside a transaction scope.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dbelyakov/finbook/internal/dbx"
	"github.com/dbelyakov/finbook/internal/server/repositories/categories"
	"github.com/dbelyakov/finbook/internal/server/repositories/entries"
	"github.com/dbelyakov/finbook/internal/server/repositories/files"
	"github.com/dbelyakov/finbook/internal/server/repositories/users"
	"github.com/dbelyakov/finbook/internal/server/repositories/years"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Years(db dbx.DBTX) years.Repository
	Categories(db dbx.DBTX) categories.Repository
	Files(db dbx.DBTX) files.Repository
	Entries(db dbx.DBTX) entries.Repository
}
