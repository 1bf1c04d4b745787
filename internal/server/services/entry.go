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

// now is a test seam for date normalization.
var now = time.Now

// EntryService manages revenue/cost records. Every write runs inside one
// transaction that also performs the reference checks, so a failed
// validation never leaves a partial write behind.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEntryService(db *sql.DB, m repomanager.RepositoryManager, _ *config.Config) *EntryService {
	return &EntryService{db: db, repomanager: m}
}

// normalizeDate substitutes the current server time for absent, zero, or
// invalid (negative) timestamps.
func normalizeDate(date int64) int64 {
	if date <= 0 {
		return now().Unix()
	}
	return date
}

// checkReferences verifies that the year, category, and (if set) file
// referenced by the entry exist. A missing referent maps to
// common.ErrorInvalidReference.
func (s *EntryService) checkReferences(ctx context.Context, tx dbx.DBTX, entry *models.Entry) error {
	if _, err := s.repomanager.Years(tx).GetByID(ctx, entry.YearID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorInvalidReference
		}
		return fmt.Errorf("error checking year: %w", err)
	}

	if _, err := s.repomanager.Categories(tx).GetByID(ctx, entry.CategoryID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorInvalidReference
		}
		return fmt.Errorf("error checking category: %w", err)
	}

	if entry.FileID != nil {
		if _, err := s.repomanager.Files(tx).GetByID(ctx, *entry.FileID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorInvalidReference
			}
			return fmt.Errorf("error checking file: %w", err)
		}
	}

	return nil
}

// Create validates and persists a new entry. Revenue and cost must be
// non-negative; yearID, categoryID, and fileID (when set) must reference
// existing rows; a missing or zero date becomes the current server time.
func (s *EntryService) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	if entry.Revenue < 0 || entry.Cost < 0 {
		return nil, common.ErrorBadInput
	}

	var created *models.Entry
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkReferences(ctx, tx, entry); err != nil {
			return err
		}

		entry.Date = normalizeDate(entry.Date)

		var err error
		created, err = s.repomanager.Entries(tx).Create(ctx, entry)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *EntryService) Get(ctx context.Context, id int64) (*models.Entry, error) {
	return s.repomanager.Entries(s.db).GetByID(ctx, id)
}

// ListByYear returns the entries recorded under yearID in storage order.
// The year itself is deliberately not checked: entries orphaned by a year
// deletion stay listable.
func (s *EntryService) ListByYear(ctx context.Context, yearID int64) ([]*models.Entry, error) {
	return s.repomanager.Entries(s.db).ListByYear(ctx, yearID)
}

// Update applies the patch to an existing entry: only the fields present in
// the patch are overwritten, each as a full replacement. Reference checks
// and the write share one transaction.
func (s *EntryService) Update(ctx context.Context, id int64, patch models.EntryPatch) (*models.Entry, error) {
	var updated *models.Entry
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Entries(tx)

		entry, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Revenue != nil {
			entry.Revenue = *patch.Revenue
		}
		if patch.Cost != nil {
			entry.Cost = *patch.Cost
		}
		if patch.Date != nil {
			entry.Date = normalizeDate(*patch.Date)
		}
		if patch.FileID != nil {
			entry.FileID = patch.FileID
		}
		if patch.CategoryID != nil {
			entry.CategoryID = *patch.CategoryID
		}

		if entry.Revenue < 0 || entry.Cost < 0 {
			return common.ErrorBadInput
		}

		// Only the patched references are re-checked: the year reference is
		// not patchable, and an entry orphaned by a year deletion must stay
		// updatable.
		if patch.CategoryID != nil {
			if _, err := s.repomanager.Categories(tx).GetByID(ctx, entry.CategoryID); err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					return common.ErrorInvalidReference
				}
				return fmt.Errorf("error checking category: %w", err)
			}
		}
		if patch.FileID != nil {
			if _, err := s.repomanager.Files(tx).GetByID(ctx, *entry.FileID); err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					return common.ErrorInvalidReference
				}
				return fmt.Errorf("error checking file: %w", err)
			}
		}

		if err := repo.Update(ctx, entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *EntryService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Entries(s.db).Delete(ctx, id)
}
