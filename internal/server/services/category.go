package services

import (
	"context"
	"database/sql"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/dbx"
	"github.com/dbelyakov/finbook/internal/server/config"
	"github.com/dbelyakov/finbook/internal/server/models"
	"github.com/dbelyakov/finbook/internal/server/repositories/repomanager"
)

// CategoryService manages entry categories.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

func (s *CategoryService) Create(ctx context.Context, name, shortDescription string) (*models.Category, error) {
	if name == "" {
		return nil, common.ErrorBadInput
	}
	category := &models.Category{Name: name, ShortDescription: shortDescription}
	return s.repomanager.Categories(s.db).Create(ctx, category)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.repomanager.Categories(s.db).GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.repomanager.Categories(s.db).List(ctx)
}

// Update applies the patch field-by-field to an existing category: only the
// fields present in the patch are overwritten. Read and write share one
// transaction.
func (s *CategoryService) Update(ctx context.Context, id int64, patch models.CategoryPatch) (*models.Category, error) {
	var category *models.Category
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Categories(tx)

		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			if *patch.Name == "" {
				return common.ErrorBadInput
			}
			existing.Name = *patch.Name
		}
		if patch.ShortDescription != nil {
			existing.ShortDescription = *patch.ShortDescription
		}

		if err := repo.Update(ctx, existing); err != nil {
			return err
		}
		category = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Categories(s.db).Delete(ctx, id)
}
