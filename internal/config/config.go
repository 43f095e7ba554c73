// Package config reads the api configuration from etc/main.toml, .env and the environment.
package config

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvConfigJSON holds a json document merged over the file configuration.
	EnvConfigJSON = "EARG_CONFIG_JSON"

	defaultShutDownTime  = 5
	defaultSessionExpiry = 24 * time.Hour
	defaultBodyLimit     = 4 * 1024 * 1024
)

// envBindings maps config keys to the environment variables the deployment
// platform provides.
var envBindings = map[string]string{ //nolint:gochecknoglobals
	"db.url":         "DATABASE_URL",
	"db.host":        "DB_HOST",
	"db.port":        "DB_PORT",
	"db.user":        "DB_USER",
	"db.password":    "DB_PASSWORD",
	"db.name":        "DB_NAME",
	"webserver.port": "PORT",
	"admin.password": "ADMIN_PASSWORD",
}

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	// a missing .env is fine, everything can come from the real environment
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "failed to read .env file")
	}

	v := viper.New()
	v.SetConfigFile(path + "main.toml")
	v.SetConfigType("toml")

	for key, env := range envBindings {
		if err = v.BindEnv(key, env); err != nil {
			return Config{}, errors.Wrapf(err, "failed to bind env %s", env)
		}
	}

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the daemon can not start without
// and fills in defaults for the optional ones.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case EnginePostgres, EngineMySQL, EngineSQLite:
	case "":
		c.DB.GormEngine = EnginePostgres
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if c.Admin.Enabled && c.Admin.Password == "" {
		return errors.Wrap(ErrAdminPasswordEmpty, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = defaultSessionExpiry
	}

	if c.Webserver.BodyLimit == 0 {
		c.Webserver.BodyLimit = defaultBodyLimit
	}

	if c.Admin.Username == "" {
		c.Admin.Username = "admin"
	}

	return nil
}
