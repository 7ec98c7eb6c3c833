package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/staffdb/internal/common"
	"github.com/dmitrijs2005/staffdb/internal/config"
	"github.com/dmitrijs2005/staffdb/internal/filex"
	"github.com/dmitrijs2005/staffdb/internal/ingest"
	"github.com/dmitrijs2005/staffdb/internal/logging"
	"github.com/dmitrijs2005/staffdb/internal/render"
	"github.com/dmitrijs2005/staffdb/internal/repositories/staff"
	"github.com/dmitrijs2005/staffdb/internal/schema"
	"github.com/dmitrijs2005/staffdb/internal/source"
)

// InputOpener resolves the configured input location to a reader.
type InputOpener func(ctx context.Context, location string, opts source.Options) (io.ReadCloser, error)

type App struct {
	config    *config.Config
	logger    logging.Logger
	sink      render.Sink
	openInput InputOpener

	state State
	stats ingest.Stats

	storageAttempted bool
	db               *sql.DB
	repo             *staff.SQLiteRepository
	closeOnce        sync.Once
	closeErr         error
}

// Option customises an App.
type Option func(*App)

// WithInputOpener replaces source.Open.
func WithInputOpener(open InputOpener) Option {
	return func(a *App) { a.openInput = open }
}

// NewApp returns an App in state Init. Every log line of the run carries a
// fresh run_id.
func NewApp(c *config.Config, logger logging.Logger, sink render.Sink, opts ...Option) *App {
	a := &App{
		config:    c,
		logger:    logger.With("run_id", uuid.NewString()),
		sink:      sink,
		openInput: source.Open,
		state:     StateInit,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// State returns the current lifecycle state.
func (a *App) State() State {
	return a.state
}

// Stats returns the ingestion statistics of the run.
func (a *App) Stats() ingest.Stats {
	return a.stats
}

// Run executes the whole pass and returns its status. Teardown runs on every
// exit path and is not cancelled with ctx.
func (a *App) Run(ctx context.Context) common.Status {
	if a.state != StateInit {
		a.logger.Error(ctx, "run called twice", "state", a.state.String())
		return common.StatusUnknown
	}

	runErr := a.run(ctx)
	if runErr != nil {
		a.state = StateFailed
		a.logger.Error(ctx, "run failed", "error", runErr)
	}

	tdErr := a.teardown(context.WithoutCancel(ctx))
	if tdErr != nil {
		a.logger.Error(ctx, "teardown failed", "error", tdErr)
	}

	status := common.StatusFor(errors.Join(runErr, tdErr))
	a.logger.Info(ctx, "run finished", "status", status.String(), "code", status.Code())
	return status
}

func (a *App) run(ctx context.Context) error {
	in, err := a.openInput(ctx, a.config.InputPath, source.Options{
		S3Region:       a.config.S3Region,
		S3BaseEndpoint: a.config.S3BaseEndpoint,
		S3AccessKey:    a.config.S3AccessKey,
		S3SecretKey:    a.config.S3SecretKey,
	})
	if err != nil {
		return err
	}
	defer in.Close()
	a.logger.Info(ctx, "input opened", "location", a.config.InputPath)

	if err := a.prepareStorage(ctx); err != nil {
		return err
	}
	a.state = StateSchemaReady

	a.stats, err = ingest.Ingest(ctx, in, a.repo, a.logger)
	if err != nil {
		return err
	}
	a.state = StateIngested

	if err := a.runQueries(ctx); err != nil {
		return err
	}
	a.state = StateQueried
	return nil
}

func (a *App) prepareStorage(ctx context.Context) error {
	a.storageAttempted = true

	db, existed, err := schema.OpenOrCreate(ctx, a.config.DBPath)
	if err != nil {
		return err
	}
	a.db = db
	if existed {
		a.logger.Info(ctx, "existing database loaded", "path", a.config.DBPath)
	} else {
		a.logger.Info(ctx, "database created", "path", a.config.DBPath)
	}

	tbl := schema.Staff(a.config.TableName)
	created, err := schema.EnsureTable(ctx, db, tbl)
	if err != nil {
		return err
	}
	if created {
		a.logger.Info(ctx, "table created", "table", tbl.Name)
	} else {
		a.logger.Info(ctx, "table already exists, left untouched", "table", tbl.Name)
	}

	repo, err := staff.NewSQLiteRepository(db, tbl)
	if err != nil {
		return err
	}
	a.repo = repo
	return nil
}

// teardown drops the table, closes the handle and removes the storage file.
// It only runs once; later calls return nil.
func (a *App) teardown(ctx context.Context) error {
	if a.state == StateTorndown {
		return nil
	}
	defer func() { a.state = StateTorndown }()

	if !a.storageAttempted {
		return nil
	}

	var errs []error
	if a.repo != nil {
		if err := a.repo.DropTable(ctx); err != nil {
			errs = append(errs, err)
		} else {
			a.logger.Info(ctx, "table dropped", "table", a.repo.Table().Name)
		}
	}
	if err := a.closeDB(); err != nil {
		errs = append(errs, fmt.Errorf("%w: close database: %w", common.ErrTeardown, err))
	}
	if err := a.removeStorage(); err != nil {
		errs = append(errs, err)
	} else {
		a.logger.Info(ctx, "database file removed", "path", a.config.DBPath)
	}
	return errors.Join(errs...)
}

func (a *App) closeDB() error {
	a.closeOnce.Do(func() {
		if a.db != nil {
			a.closeErr = a.db.Close()
		}
	})
	return a.closeErr
}

// removeStorage deletes the storage file. When the database never opened,
// only a regular file at the path is removed.
func (a *App) removeStorage() error {
	if a.db == nil {
		if ok, err := filex.Exists(a.config.DBPath); err != nil || !ok {
			return nil
		}
	}
	return schema.Remove(a.config.DBPath)
}
