// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/earg-org/earg-api/internal/config"
)

const mysqlDefaultExtras = "charset=utf8mb4&parseTime=True&loc=UTC"

// Create builds the Data Source Name for the configured gorm engine.
// A configured DB.URL wins over the discrete fields for postgres.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EngineSQLite:
		return cfg.DB.Path
	case config.EngineMySQL:
		extras := cfg.DB.Extras
		if extras == "" {
			extras = mysqlDefaultExtras
		}

		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			extras,
		)
	default:
		return URI(cfg)
	}
}

// URI builds a postgres connection url. It is used by gorm and by the
// session storage, which only accepts the url form.
func URI(cfg *config.Config) string {
	if cfg.DB.URL != "" {
		return cfg.DB.URL
	}

	return ServerURI(cfg, cfg.DB.Name)
}

// ServerURI builds a postgres connection url for an arbitrary database
// on the configured server.
func ServerURI(cfg *config.Config, database string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.DB.User, cfg.DB.Password),
		Host:   cfg.DB.Host + ":" + strconv.Itoa(cfg.DB.Port),
		Path:   "/" + database,
	}

	q, _ := url.ParseQuery(cfg.DB.Extras) //nolint:errcheck
	if cfg.DB.SSLMode != "" {
		q.Set("sslmode", cfg.DB.SSLMode)
	}

	u.RawQuery = q.Encode()

	return u.String()
}
