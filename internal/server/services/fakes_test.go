package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/dbx"
	"github.com/dbelyakov/finbook/internal/server/models"
	categoriesrepo "github.com/dbelyakov/finbook/internal/server/repositories/categories"
	entriesrepo "github.com/dbelyakov/finbook/internal/server/repositories/entries"
	filesrepo "github.com/dbelyakov/finbook/internal/server/repositories/files"
	usersrepo "github.com/dbelyakov/finbook/internal/server/repositories/users"
	yearsrepo "github.com/dbelyakov/finbook/internal/server/repositories/years"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

// --- in-memory fakes ---

type fakeUsersRepo struct {
	createErr error
	getOut    *models.User
	getErr    error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeYearsRepo struct {
	years  map[int64]*models.Year
	nextID int64
}

func newFakeYearsRepo() *fakeYearsRepo {
	return &fakeYearsRepo{years: map[int64]*models.Year{}, nextID: 1}
}

func (f *fakeYearsRepo) Create(ctx context.Context, y *models.Year) (*models.Year, error) {
	y.ID = f.nextID
	f.nextID++
	f.years[y.ID] = y
	return y, nil
}

func (f *fakeYearsRepo) GetByID(ctx context.Context, id int64) (*models.Year, error) {
	y, ok := f.years[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return y, nil
}

func (f *fakeYearsRepo) GetByYear(ctx context.Context, year int) (*models.Year, error) {
	for _, y := range f.years {
		if y.Year == year {
			return y, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeYearsRepo) List(ctx context.Context) ([]*models.Year, error) {
	var result []*models.Year
	for id := int64(1); id < f.nextID; id++ {
		if y, ok := f.years[id]; ok {
			result = append(result, y)
		}
	}
	return result, nil
}

func (f *fakeYearsRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.years[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.years, id)
	return nil
}

type fakeCategoriesRepo struct {
	categories map[int64]*models.Category
	nextID     int64
}

func newFakeCategoriesRepo() *fakeCategoriesRepo {
	return &fakeCategoriesRepo{categories: map[int64]*models.Category{}, nextID: 1}
}

func (f *fakeCategoriesRepo) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	c.ID = f.nextID
	f.nextID++
	f.categories[c.ID] = c
	return c, nil
}

func (f *fakeCategoriesRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return c, nil
}

func (f *fakeCategoriesRepo) List(ctx context.Context) ([]*models.Category, error) {
	var result []*models.Category
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.categories[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCategoriesRepo) Update(ctx context.Context, c *models.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return common.ErrorNotFound
	}
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoriesRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakeFilesRepo struct {
	files     map[int64]*models.File
	nextID    int64
	createErr error
}

func newFakeFilesRepo() *fakeFilesRepo {
	return &fakeFilesRepo{files: map[int64]*models.File{}, nextID: 1}
}

func (f *fakeFilesRepo) Create(ctx context.Context, file *models.File) (*models.File, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	file.ID = f.nextID
	f.nextID++
	f.files[file.ID] = file
	return file, nil
}

func (f *fakeFilesRepo) GetByID(ctx context.Context, id int64) (*models.File, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return file, nil
}

func (f *fakeFilesRepo) List(ctx context.Context) ([]*models.File, error) {
	var result []*models.File
	for id := int64(1); id < f.nextID; id++ {
		if file, ok := f.files[id]; ok {
			result = append(result, file)
		}
	}
	return result, nil
}

type fakeEntriesRepo struct {
	entries map[int64]*models.Entry
	nextID  int64
}

func newFakeEntriesRepo() *fakeEntriesRepo {
	return &fakeEntriesRepo{entries: map[int64]*models.Entry{}, nextID: 1}
}

func (f *fakeEntriesRepo) Create(ctx context.Context, e *models.Entry) (*models.Entry, error) {
	e.ID = f.nextID
	f.nextID++
	copied := *e
	f.entries[e.ID] = &copied
	return e, nil
}

func (f *fakeEntriesRepo) GetByID(ctx context.Context, id int64) (*models.Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEntriesRepo) ListByYear(ctx context.Context, yearID int64) ([]*models.Entry, error) {
	var result []*models.Entry
	for id := int64(1); id < f.nextID; id++ {
		if e, ok := f.entries[id]; ok && e.YearID == yearID {
			copied := *e
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeEntriesRepo) Update(ctx context.Context, e *models.Entry) error {
	if _, ok := f.entries[e.ID]; !ok {
		return common.ErrorNotFound
	}
	copied := *e
	f.entries[e.ID] = &copied
	return nil
}

func (f *fakeEntriesRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.entries[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.entries, id)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	y *fakeYearsRepo
	c *fakeCategoriesRepo
	f *fakeFilesRepo
	e *fakeEntriesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: &fakeUsersRepo{},
		y: newFakeYearsRepo(),
		c: newFakeCategoriesRepo(),
		f: newFakeFilesRepo(),
		e: newFakeEntriesRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository          { return m.u }
func (m *fakeRepoManager) Years(db dbx.DBTX) yearsrepo.Repository          { return m.y }
func (m *fakeRepoManager) Categories(db dbx.DBTX) categoriesrepo.Repository { return m.c }
func (m *fakeRepoManager) Files(db dbx.DBTX) filesrepo.Repository          { return m.f }
func (m *fakeRepoManager) Entries(db dbx.DBTX) entriesrepo.Repository      { return m.e }
