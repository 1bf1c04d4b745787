package entries

import (
	"context"

	"github.com/dbelyakov/finbook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	GetByID(ctx context.Context, id int64) (*models.Entry, error)
	ListByYear(ctx context.Context, yearID int64) ([]*models.Entry, error)
	Update(ctx context.Context, entry *models.Entry) error
	Delete(ctx context.Context, id int64) error
}
