// Package create makes sure the configured postgres database exists.
package create

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/earg-org/earg-api/internal/config"
	"github.com/earg-org/earg-api/internal/db/dsn"
)

// maintenanceDB is the database connected to while creating the target.
const maintenanceDB = "postgres"

var (
	// ErrNotPostgres is returned for engines that need no database creation.
	ErrNotPostgres = errors.New("database creation is only supported for postgres")
	// ErrNameEmpty is returned when DB.Name is not configured.
	ErrNameEmpty = errors.New("config db.name can not be empty")
)

// Database connects to the maintenance database of the configured server
// and creates DB.Name unless it already exists. It reports whether the
// database was created.
func Database(ctx context.Context, cfg *config.Config) (bool, error) {
	if cfg.DB.GormEngine != config.EnginePostgres {
		return false, ErrNotPostgres
	}

	if cfg.DB.Name == "" {
		return false, ErrNameEmpty
	}

	conn, err := pgx.Connect(ctx, dsn.ServerURI(cfg, maintenanceDB))
	if err != nil {
		return false, fmt.Errorf("failed to connect to %s: %w", maintenanceDB, err)
	}

	defer func() { _ = conn.Close(ctx) }()

	var exists bool

	err = conn.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DB.Name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up database %s: %w", cfg.DB.Name, err)
	}

	if exists {
		log.Info().Str("database", cfg.DB.Name).Msg("database already exists")
		return false, nil
	}

	if _, err = conn.Exec(ctx, statement(cfg.DB.Name)); err != nil {
		return false, fmt.Errorf("failed to create database %s: %w", cfg.DB.Name, err)
	}

	log.Info().Str("database", cfg.DB.Name).Msg("database created")

	return true, nil
}

// statement returns the CREATE DATABASE statement with name quoted.
func statement(name string) string {
	return "CREATE DATABASE " + pgx.Identifier{name}.Sanitize()
}
