package repomanager

import (
	"context"
	"database/sql"

	"github.com/dbelyakov/finbook/internal/dbx"
	"github.com/dbelyakov/finbook/internal/server/migrations"
	"github.com/dbelyakov/finbook/internal/server/repositories/categories"
	"github.com/dbelyakov/finbook/internal/server/repositories/entries"
	"github.com/dbelyakov/finbook/internal/server/repositories/files"
	"github.com/dbelyakov/finbook/internal/server/repositories/users"
	"github.com/dbelyakov/finbook/internal/server/repositories/years"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Years(db dbx.DBTX) years.Repository {
	return years.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return categories.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Files(db dbx.DBTX) files.Repository {
	return files.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Entries(db dbx.DBTX) entries.Repository {
	return entries.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}
