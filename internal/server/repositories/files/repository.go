package files

import (
	"context"

	"github.com/dbelyakov/finbook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, file *models.File) (*models.File, error)
	GetByID(ctx context.Context, id int64) (*models.File, error)
	List(ctx context.Context) ([]*models.File, error)
}
