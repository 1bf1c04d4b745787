package years

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/dbx"
	"github.com/dbelyakov/finbook/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the year and fills in the generated id. The UNIQUE
// constraint on the year value backs up the service-level pre-check: if two
// writers race past the check, the loser gets common.ErrorConflict here.
func (r *PostgresRepository) Create(ctx context.Context, year *models.Year) (*models.Year, error) {

	query :=
		`INSERT INTO years (year)
		 VALUES ($1)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, year.Year).Scan(&year.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return year, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Year, error) {
	query :=
		`SELECT id, year FROM years
		 WHERE id = $1
		 `

	year := &models.Year{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&year.ID, &year.Year)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return year, nil
}

func (r *PostgresRepository) GetByYear(ctx context.Context, y int) (*models.Year, error) {
	query :=
		`SELECT id, year FROM years
		 WHERE year = $1
		 `

	year := &models.Year{}
	err := r.db.QueryRowContext(ctx, query, y).Scan(&year.ID, &year.Year)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return year, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Year, error) {
	query := `SELECT id, year FROM years ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Year
	for rows.Next() {
		year := &models.Year{}
		if err := rows.Scan(&year.ID, &year.Year); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// Delete removes the year row only. Entries referencing it are left in
// place, see YearService.Delete.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM years WHERE id = $1`

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
