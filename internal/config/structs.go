package config

import (
	"time"

	"github.com/earg-org/earg-api/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Admin holds the admin API settings.
type Admin struct {
	Enabled  bool   // require an admin session on mutating routes
	Username string // username of the initial admin account
	Password string // password of the initial admin account, hashed on first boot
}

// CORS settings for the browser frontends.
type CORS struct {
	AllowOrigins     []string
	AllowCredentials bool
}

// RateLimit settings for the public API.
type RateLimit struct {
	Enabled bool
	Max     int
	Window  time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Admin     Admin
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Host         string    // listening host, empty for all interfaces
	Port         int       // listening port for the webserver
	ShutDownTime int       // wait time for shutdown in seconds
	URL          string    // public base url of the api
	BodyLimit    int       // max request body size in bytes
	CORS         CORS      // cross origin settings
	RateLimit    RateLimit // public api rate limiting
	Session      Session   // admin session settings
}
