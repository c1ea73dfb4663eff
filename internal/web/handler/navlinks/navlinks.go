// Package navlinks serves the sidebar links as a standalone fragment.
package navlinks

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/go-dashboard/go-dashboard/internal/config"
	"github.com/go-dashboard/go-dashboard/internal/web/handler"
	"github.com/go-dashboard/go-dashboard/internal/web/navigation"
)

const (
	// Path serves the fragment.
	Path = handler.RootPath + "ui/nav-links"

	// QueryPath names the query parameter carrying the path to highlight.
	QueryPath = "path"
)

// Service is the sidebar fragment handler.
type Service struct {
	cfg *config.Config
}

// Handler is the sidebar fragment handler.
var Handler = Service{} //nolint:gochecknoglobals

var _ handler.Service = (*Service)(nil)

// Init registers the fragment route.
func (s *Service) Init(app *fiber.App, cfg *config.Config) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilACFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get renders only the sidebar links for the path given in the query, home by default.
func (s *Service) Get(c fiber.Ctx) error {
	currentPath := c.Query(QueryPath, navigation.HomeRoot)

	nav := navigation.NewContext("", currentPath)
	handler.ObserveNavigation(nav)

	return c.Render(handler.NavLinksPartial, nav)
}
