// Package daemon wires the local database, the session storage and the web
// service together.
package daemon

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ponto-de-aula/ponto-de-aula/internal/config"
	"github.com/ponto-de-aula/ponto-de-aula/internal/db"
	"github.com/ponto-de-aula/ponto-de-aula/internal/db/controller/sessionstore"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web"
	"github.com/ponto-de-aula/ponto-de-aula/internal/web/session"
)

const sessionGCInterval = time.Hour

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	cfg        *config.Config
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	conn, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open local database")
		return nil
	}

	sessionStorage, err := sessionstore.New(conn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session storage")
		return nil
	}

	session.Init(sessionStorage)

	// sweep expired sessions in the background
	go func() {
		for range time.Tick(sessionGCInterval) {
			if err := sessionStorage.GC(); err != nil {
				log.Error().Err(err).Msg("session gc failed")
			}
		}
	}()

	return &Daemon{
		webService: web.New(cfg),
		cfg:        cfg,
	}
}
