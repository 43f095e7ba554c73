package config

import (
	"errors"
)

var (
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormengine is not supported.
	ErrUnknownGormEngine = errors.New("config db.gormengine must be one of postgres, mysql, sqlite")

	// ErrAdminPasswordEmpty error if the admin api is enabled without an initial password.
	ErrAdminPasswordEmpty = errors.New("config admin.password can not be empty while admin.enabled is true")
)
