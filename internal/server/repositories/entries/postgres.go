package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/dbx"
	"github.com/dbelyakov/finbook/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {

	query :=
		`INSERT INTO entries (revenue, cost, date, file_id, year_id, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		entry.Revenue, entry.Cost, entry.Date, entry.FileID, entry.YearID, entry.CategoryID).
		Scan(&entry.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

// GetByID returns the entry even when its year has been deleted; orphaned
// rows stay retrievable by id.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Entry, error) {
	query :=
		`SELECT id, revenue, cost, date, file_id, year_id, category_id FROM entries
		 WHERE id = $1
		 `

	entry := &models.Entry{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&entry.ID, &entry.Revenue, &entry.Cost, &entry.Date, &entry.FileID, &entry.YearID, &entry.CategoryID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

func (r *PostgresRepository) ListByYear(ctx context.Context, yearID int64) ([]*models.Entry, error) {
	query :=
		`SELECT id, revenue, cost, date, file_id, year_id, category_id FROM entries
		 WHERE year_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, yearID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		entry := &models.Entry{}
		if err := rows.Scan(&entry.ID, &entry.Revenue, &entry.Cost, &entry.Date,
			&entry.FileID, &entry.YearID, &entry.CategoryID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Update overwrites the full row. The caller decides which fields change by
// applying a patch before calling here.
func (r *PostgresRepository) Update(ctx context.Context, entry *models.Entry) error {
	query :=
		`UPDATE entries
		 SET revenue = $2, cost = $3, date = $4, file_id = $5, category_id = $6
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.Revenue, entry.Cost, entry.Date, entry.FileID, entry.CategoryID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM entries WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
