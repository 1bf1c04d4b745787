package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/server/blobstore"
	"github.com/dbelyakov/finbook/internal/server/config"
	"github.com/dbelyakov/finbook/internal/server/models"
	"github.com/dbelyakov/finbook/internal/server/repositories/repomanager"
)

// allowedMimeTypes are the only content types accepted for upload. Anything
// else is rejected before any storage write happens.
var allowedMimeTypes = map[string]struct{}{
	"image/png":       {},
	"image/jpeg":      {},
	"application/pdf": {},
}

// FileService stores uploaded attachments: content goes to the blob store,
// metadata to the files table. Rows are immutable after creation.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
}

func NewFileService(db *sql.DB, m repomanager.RepositoryManager, blobs blobstore.Store, _ *config.Config) *FileService {
	return &FileService{db: db, repomanager: m, blobs: blobs}
}

// Upload writes the content to the blob store and records the metadata row.
// Unsupported content types yield common.ErrorBadInput. If the metadata
// insert fails, the stored blob is removed again so no unreferenced content
// accumulates.
func (s *FileService) Upload(ctx context.Context, user *models.CurrentUser, name, mimeType string, content io.Reader) (*models.File, error) {
	if name == "" {
		return nil, common.ErrorBadInput
	}
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return nil, common.ErrorBadInput
	}

	key := blobstore.NewStorageKey()
	if err := s.blobs.Save(ctx, key, content); err != nil {
		return nil, fmt.Errorf("error storing upload: %w", err)
	}

	file := &models.File{
		Name:        name,
		StoragePath: key,
		MimeType:    mimeType,
		UserID:      user.ID,
	}

	repo := s.repomanager.Files(s.db)
	created, err := repo.Create(ctx, file)
	if err != nil {
		_ = s.blobs.Delete(ctx, key)
		return nil, fmt.Errorf("error creating file record: %w", err)
	}

	return created, nil
}

func (s *FileService) Get(ctx context.Context, id int64) (*models.File, error) {
	return s.repomanager.Files(s.db).GetByID(ctx, id)
}

func (s *FileService) List(ctx context.Context) ([]*models.File, error) {
	return s.repomanager.Files(s.db).List(ctx)
}

// Open returns the stored content of a file together with its metadata.
// The caller must close the reader.
func (s *FileService) Open(ctx context.Context, id int64) (*models.File, io.ReadCloser, error) {
	file, err := s.repomanager.Files(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.blobs.Open(ctx, file.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening upload: %w", err)
	}
	return file, rc, nil
}
