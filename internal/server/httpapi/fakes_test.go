package httpapi

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dbelyakov/finbook/internal/logging"
	"github.com/dbelyakov/finbook/internal/server/export"
	"github.com/dbelyakov/finbook/internal/server/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

type fakeUserProvider struct {
	registerOut *models.User
	registerErr error

	loginOut string
	loginErr error

	currentOut *models.CurrentUser
	currentErr error
}

func (f *fakeUserProvider) Register(ctx context.Context, username, password string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerOut, nil
}

func (f *fakeUserProvider) Login(ctx context.Context, username, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginOut, nil
}

func (f *fakeUserProvider) CurrentUser(ctx context.Context, token string) (*models.CurrentUser, error) {
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return f.currentOut, nil
}

type fakeYearProvider struct {
	createOut *models.Year
	createErr error
	getOut    *models.Year
	getErr    error
	listOut   []*models.Year
	listErr   error
	deleteErr error
}

func (f *fakeYearProvider) Create(ctx context.Context, yearValue int) (*models.Year, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeYearProvider) Get(ctx context.Context, id int64) (*models.Year, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeYearProvider) List(ctx context.Context) ([]*models.Year, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeYearProvider) Delete(ctx context.Context, id int64) error { return f.deleteErr }

type fakeCategoryProvider struct {
	createOut *models.Category
	createErr error
	getOut    *models.Category
	getErr    error
	listOut   []*models.Category
	listErr   error
	updateOut *models.Category
	updateErr error
	deleteErr error
}

func (f *fakeCategoryProvider) Create(ctx context.Context, name, shortDescription string) (*models.Category, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeCategoryProvider) Get(ctx context.Context, id int64) (*models.Category, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeCategoryProvider) List(ctx context.Context) ([]*models.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeCategoryProvider) Update(ctx context.Context, id int64, patch models.CategoryPatch) (*models.Category, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeCategoryProvider) Delete(ctx context.Context, id int64) error { return f.deleteErr }

type fakeEntryProvider struct {
	createOut *models.Entry
	createErr error
	getOut    *models.Entry
	getErr    error
	listOut   []*models.Entry
	listErr   error
	updateOut *models.Entry
	updateErr error
	deleteErr error

	lastCreated *models.Entry
}

func (f *fakeEntryProvider) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	f.lastCreated = entry
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeEntryProvider) Get(ctx context.Context, id int64) (*models.Entry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeEntryProvider) ListByYear(ctx context.Context, yearID int64) ([]*models.Entry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeEntryProvider) Update(ctx context.Context, id int64, patch models.EntryPatch) (*models.Entry, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeEntryProvider) Delete(ctx context.Context, id int64) error { return f.deleteErr }

type fakeFileProvider struct {
	uploadOut *models.File
	uploadErr error
	getOut    *models.File
	getErr    error
	listOut   []*models.File
	listErr   error

	openFile *models.File
	openData string
	openErr  error

	lastUploadName string
	lastUploadMime string
	lastUploadData []byte
}

func (f *fakeFileProvider) Upload(ctx context.Context, user *models.CurrentUser, name, mimeType string, content io.Reader) (*models.File, error) {
	f.lastUploadName = name
	f.lastUploadMime = mimeType
	f.lastUploadData, _ = io.ReadAll(content)
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return f.uploadOut, nil
}

func (f *fakeFileProvider) Get(ctx context.Context, id int64) (*models.File, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeFileProvider) List(ctx context.Context) ([]*models.File, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeFileProvider) Open(ctx context.Context, id int64) (*models.File, io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, nil, f.openErr
	}
	return f.openFile, io.NopCloser(bytes.NewReader([]byte(f.openData))), nil
}

type fakeReportProvider struct {
	profitOut *models.ProfitReport
	profitErr error

	rowsYear   *models.Year
	rowsOut    []export.Row
	rowsReport *models.ProfitReport
	rowsErr    error
}

func (f *fakeReportProvider) ComputeProfit(ctx context.Context, yearID int64) (*models.ProfitReport, error) {
	if f.profitErr != nil {
		return nil, f.profitErr
	}
	return f.profitOut, nil
}

func (f *fakeReportProvider) ReportRows(ctx context.Context, yearID int64) (*models.Year, []export.Row, *models.ProfitReport, error) {
	if f.rowsErr != nil {
		return nil, nil, nil, f.rowsErr
	}
	return f.rowsYear, f.rowsOut, f.rowsReport, nil
}

type fixture struct {
	users      *fakeUserProvider
	years      *fakeYearProvider
	categories *fakeCategoryProvider
	entries    *fakeEntryProvider
	files      *fakeFileProvider
	reports    *fakeReportProvider
	router     *gin.Engine
}

// newFixture builds a router with all fakes wired in; CurrentUser succeeds
// by default so protected routes are reachable.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:      &fakeUserProvider{currentOut: &models.CurrentUser{ID: 1, Username: "alice"}},
		years:      &fakeYearProvider{},
		categories: &fakeCategoryProvider{},
		entries:    &fakeEntryProvider{},
		files:      &fakeFileProvider{},
		reports:    &fakeReportProvider{},
	}
	s := NewHTTPServer(":0", nopLogger{}, f.users, f.years, f.categories, f.entries, f.files, f.reports)
	f.router = s.Router()
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer tok")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}
