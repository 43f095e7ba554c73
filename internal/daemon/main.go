// Package daemon boots the api: database, seed, admin account, sessions and web service.
package daemon

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/earg-org/earg-api/internal/config"
	"github.com/earg-org/earg-api/internal/db"
	"github.com/earg-org/earg-api/internal/db/controller/adminuser"
	"github.com/earg-org/earg-api/internal/seed"
	"github.com/earg-org/earg-api/internal/web"
	"github.com/earg-org/earg-api/internal/web/session"
)

// ErrConfigNil is returned when the daemon is created without a config.
var ErrConfigNil = errors.New("config is nil")

// closeDB releases the connection pool of gdb.
var closeDB = func(gdb *gorm.DB) { //nolint:gochecknoglobals
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Daemon represents the main application daemon.
type Daemon struct {
	db         *gorm.DB
	webService *web.Service
}

// Start serves http until SIGINT or SIGTERM and then shuts down gracefully.
func (d *Daemon) Start() error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- d.webService.Start()
	}()

	d.webService.WaitShutdown()

	closeDB(d.db)

	return <-errCh
}

// New prepares the database and creates the daemon. Seeding must succeed
// before the web service is built, a failed seed aborts the startup.
// The database is closed again when any later step fails.
func New(ctx context.Context, cfg *config.Config) (d *Daemon, err error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			closeDB(gdb)
		}
	}()

	if err = seed.New(gdb, seed.Default()).Run(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to initialize database")
	}

	if cfg.Admin.Enabled {
		created, errAdmin := adminuser.EnsureInitial(gdb, cfg.Admin.Username, cfg.Admin.Password)
		if errAdmin != nil {
			return nil, errors.Wrap(errAdmin, "failed to create initial admin")
		}

		if created {
			log.Info().Str("username", cfg.Admin.Username).Msg("initial admin account created")
		}
	}

	storage, err := session.NewStorage(cfg)
	if err != nil {
		return nil, err
	}

	webService, err := web.New(cfg, gdb, session.New(storage, cfg.Webserver.Session.ExpiryTime))
	if err != nil {
		_ = storage.Close()
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{db: gdb, webService: webService}, nil
}
