// Package web wires the fiber application of the dashboard.
package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/go-dashboard/go-dashboard/internal/config"
	accesslog "github.com/go-dashboard/go-dashboard/internal/logger/adapter/fiber"
	"github.com/go-dashboard/go-dashboard/internal/web/handler"
	"github.com/go-dashboard/go-dashboard/internal/web/handler/dashboard"
	"github.com/go-dashboard/go-dashboard/internal/web/handler/navlinks"
	"github.com/go-dashboard/go-dashboard/internal/web/handler/section"
	"github.com/go-dashboard/go-dashboard/internal/web/navigation"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes prometheus metrics.
	MetricsPath = "/metrics"

	// StaticPath serves the embedded static files.
	StaticPath = "/static"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	err := s.App.Listen(addr, fiber.ListenConfig{
		DisableStartupMessage: !s.cfg.DevMode,
	})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// Alive reports whether the service accepts traffic.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the service down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown drains the service and stops the http server.
func (s *Service) Shutdown() {
	// checkalive returns 503 so load balancers can remove this instance first
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.Reload(true)

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("icon", navigation.IconSVG)

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192, //nolint:mnd
			AppName:        cfg.Title,
			CaseSensitive:  true, // case folding is left to canonicalRedirect
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	app.Use(canonicalRedirect(!cfg.Webserver.CaseSensitive))

	staticFiles, err := fs.Sub(embeddedStaticFiles, "static")
	if err != nil {
		panic(err)
	}

	app.Get(StaticPath+"*", static.New("", static.Config{
		FS:     staticFiles,
		Browse: cfg.Webserver.BrowseStatic,
	}))

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// redirect root to dashboard
	app.Get(handler.RootPath, func(c fiber.Ctx) error {
		return c.Redirect().To(dashboard.Path)
	})

	// handlers register their own routes
	handlers := []handler.Service{&dashboard.Handler, &navlinks.Handler}
	for _, h := range section.Handlers() {
		handlers = append(handlers, h)
	}

	for _, h := range handlers {
		h.Init(app, cfg)
	}

	return service
}

func (s *Service) checkAlive(c fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}
