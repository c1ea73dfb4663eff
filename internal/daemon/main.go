// Package daemon runs the dashboard web service until it is told to stop.
package daemon

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/go-dashboard/go-dashboard/internal/config"
	"github.com/go-dashboard/go-dashboard/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start serves the dashboard and blocks until SIGINT or SIGTERM finished the graceful shutdown.
func (d *Daemon) Start() error {
	var (
		addr  = fmt.Sprintf(":%d", d.cfg.Webserver.Port)
		errCh = make(chan error, 1)
	)

	go func() {
		errCh <- d.webService.Start(addr)
	}()

	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("dashboard started")

	go d.webService.WaitShutdown()

	return <-errCh
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg),
	}
}
