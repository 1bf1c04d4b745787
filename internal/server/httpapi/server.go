// Package httpapi exposes the finbook services over REST. It owns request
// parsing, the bearer-token middleware, and the mapping from the error
// taxonomy to HTTP status codes; all business rules live in the services.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/logging"
	"github.com/dbelyakov/finbook/internal/server/export"
	"github.com/dbelyakov/finbook/internal/server/models"
)

// Service dependencies are narrow interfaces so handlers can be tested with
// fakes; the concrete services in internal/server/services satisfy them.

type UserProvider interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context, token string) (*models.CurrentUser, error)
}

type YearProvider interface {
	Create(ctx context.Context, yearValue int) (*models.Year, error)
	Get(ctx context.Context, id int64) (*models.Year, error)
	List(ctx context.Context) ([]*models.Year, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryProvider interface {
	Create(ctx context.Context, name, shortDescription string) (*models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, id int64, patch models.CategoryPatch) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type EntryProvider interface {
	Create(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	Get(ctx context.Context, id int64) (*models.Entry, error)
	ListByYear(ctx context.Context, yearID int64) ([]*models.Entry, error)
	Update(ctx context.Context, id int64, patch models.EntryPatch) (*models.Entry, error)
	Delete(ctx context.Context, id int64) error
}

type FileProvider interface {
	Upload(ctx context.Context, user *models.CurrentUser, name, mimeType string, content io.Reader) (*models.File, error)
	Get(ctx context.Context, id int64) (*models.File, error)
	List(ctx context.Context) ([]*models.File, error)
	Open(ctx context.Context, id int64) (*models.File, io.ReadCloser, error)
}

type ReportProvider interface {
	ComputeProfit(ctx context.Context, yearID int64) (*models.ProfitReport, error)
	ReportRows(ctx context.Context, yearID int64) (*models.Year, []export.Row, *models.ProfitReport, error)
}

type HTTPServer struct {
	address    string
	logger     logging.Logger
	users      UserProvider
	years      YearProvider
	categories CategoryProvider
	entries    EntryProvider
	files      FileProvider
	reports    ReportProvider
}

func NewHTTPServer(address string, l logging.Logger, users UserProvider, years YearProvider,
	categories CategoryProvider, entries EntryProvider, files FileProvider, reports ReportProvider) *HTTPServer {
	return &HTTPServer{
		address:    address,
		logger:     l.With("module", "http_server"),
		users:      users,
		years:      years,
		categories: categories,
		entries:    entries,
		files:      files,
		reports:    reports,
	}
}

// Router assembles the gin engine with all routes registered.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)
	api.POST("/logout", s.handleLogout)

	protected := api.Group("")
	protected.Use(s.authMiddleware())

	protected.GET("/users/me", s.handleMe)

	protected.GET("/years", s.handleListYears)
	protected.POST("/years", s.handleCreateYear)
	protected.DELETE("/years/:yearID", s.handleDeleteYear)

	protected.GET("/years/:yearID/entries", s.handleListEntries)
	protected.POST("/years/:yearID/entries", s.handleCreateEntry)
	protected.GET("/years/:yearID/entries/:entryID", s.handleGetEntry)
	protected.PUT("/years/:yearID/entries/:entryID", s.handleUpdateEntry)
	protected.DELETE("/years/:yearID/entries/:entryID", s.handleDeleteEntry)

	protected.GET("/years/:yearID/profit", s.handleProfit)
	protected.GET("/years/:yearID/export", s.handleExport)

	protected.GET("/categories", s.handleListCategories)
	protected.POST("/categories", s.handleCreateCategory)
	protected.PATCH("/categories/:categoryID", s.handleUpdateCategory)
	protected.DELETE("/categories/:categoryID", s.handleDeleteCategory)

	protected.GET("/files", s.handleListFiles)
	protected.POST("/files", s.handleUploadFile)
	protected.GET("/files/:fileID", s.handleDownloadFile)

	return r
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// writeError maps the error taxonomy to HTTP statuses. Unrecognized errors
// become opaque 500s so internals never leak to the client.
func (s *HTTPServer) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "unauthorized"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
	case errors.Is(err, common.ErrorConflict):
		c.JSON(http.StatusConflict, gin.H{"detail": "already exists"})
	case errors.Is(err, common.ErrorInvalidReference):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "referenced record does not exist"})
	case errors.Is(err, common.ErrorBadInput):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "bad input"})
	default:
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}
