package years

import (
	"context"

	"github.com/dbelyakov/finbook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, year *models.Year) (*models.Year, error)
	GetByID(ctx context.Context, id int64) (*models.Year, error)
	GetByYear(ctx context.Context, year int) (*models.Year, error)
	List(ctx context.Context) ([]*models.Year, error)
	Delete(ctx context.Context, id int64) error
}
