package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/dbx"
	"github.com/dbelyakov/finbook/internal/server/config"
	"github.com/dbelyakov/finbook/internal/server/models"
	"github.com/dbelyakov/finbook/internal/server/repositories/repomanager"
)

// minYear is the earliest calendar year the system accepts.
const minYear = 2010

// YearService manages reporting periods.
type YearService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewYearService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *YearService {
	return &YearService{db: db, repomanager: m}
}

// Create adds a new reporting year. The value must lie in
// [2010, current calendar year]; duplicates yield common.ErrorConflict.
// The existence check and the insert share one transaction; the UNIQUE
// constraint catches the writer that loses a race past the check.
func (s *YearService) Create(ctx context.Context, yearValue int) (*models.Year, error) {
	if yearValue < minYear || yearValue > time.Now().Year() {
		return nil, common.ErrorBadInput
	}

	var year *models.Year
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Years(tx)

		_, err := repo.GetByYear(ctx, yearValue)
		if err == nil {
			return common.ErrorConflict
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking year: %w", err)
		}

		year, err = repo.Create(ctx, &models.Year{Year: yearValue})
		return err
	})
	if err != nil {
		return nil, err
	}
	return year, nil
}

func (s *YearService) Get(ctx context.Context, id int64) (*models.Year, error) {
	return s.repomanager.Years(s.db).GetByID(ctx, id)
}

func (s *YearService) List(ctx context.Context) ([]*models.Year, error) {
	return s.repomanager.Years(s.db).List(ctx)
}

// Delete removes the year row only. Entries referencing it are NOT deleted
// and keep their year_id; they stay retrievable by id and by year listing.
// This mirrors the behavior the API always had — callers that need a clean
// cut must delete the entries first.
func (s *YearService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Years(s.db).Delete(ctx, id)
}
