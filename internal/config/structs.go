package config

import (
	"time"

	"github.com/ponto-de-aula/ponto-de-aula/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Backend   Backend
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Backend holds the settings for the classroom REST API.
type Backend struct {
	URL     string        // base url of the backend
	Timeout time.Duration // per request timeout, 0 picks the client default
	Debug   bool          // log every backend request and response status
}

// DB holds the local database settings.
type DB struct {
	Path string // sqlite file path
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic        bool    // enable static file browsing (for development purposes only)
	CleanPath           bool    // use clean path middleware to allow multi slash requests
	DisableRecover      bool    // disable recover middleware
	Domain              string  // domain name for the webserver
	Port                int     // listening port for the webserver
	ShutDownTime        int     // wait time for shutdown
	URL                 string  // base url for the webserver
	CookieEncryptionKey string  // encryption key for cookies
	Session             Session // session settings
}
