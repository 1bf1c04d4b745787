// Package server initializes and runs the finbook server application.
// It opens the database, runs migrations, selects the blob storage backend,
// wires the services into the HTTP server and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dbelyakov/finbook/internal/logging"
	"github.com/dbelyakov/finbook/internal/server/blobstore"
	"github.com/dbelyakov/finbook/internal/server/config"
	"github.com/dbelyakov/finbook/internal/server/httpapi"
	"github.com/dbelyakov/finbook/internal/server/repositories/repomanager"
	"github.com/dbelyakov/finbook/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.HTTPServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	blobs, err := newBlobStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("blob storage init error: %w", err)
	}

	us := services.NewUserService(db, m, c)
	ys := services.NewYearService(db, m, c)
	cs := services.NewCategoryService(db, m, c)
	es := services.NewEntryService(db, m, c)
	fs := services.NewFileService(db, m, blobs, c)
	rs := services.NewReportService(db, m, c)

	srv := httpapi.NewHTTPServer(c.EndpointAddrHTTP, logger, us, ys, cs, es, fs, rs)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func newBlobStore(ctx context.Context, c *config.Config) (blobstore.Store, error) {
	switch c.BlobBackend {
	case "s3":
		return blobstore.NewS3Store(ctx, c)
	case "fs":
		return blobstore.NewFSStore(c.UploadDir)
	default:
		return nil, fmt.Errorf("unknown blob backend: %s", c.BlobBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
