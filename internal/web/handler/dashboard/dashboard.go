// Package dashboard provides the dashboard home page.
package dashboard

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/go-dashboard/go-dashboard/internal/config"
	"github.com/go-dashboard/go-dashboard/internal/web/handler"
	"github.com/go-dashboard/go-dashboard/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = navigation.HomeRoot

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/home"

	// Title is the page title.
	Title = "Dashboard"
)

// Card is a shortcut to a dashboard section.
type Card struct {
	Name string
	Href string
	Icon navigation.Icon
}

// Data represents the complete dashboard data.
type Data struct {
	Cards []Card
}

// Service is the dashboard handler service.
type Service struct {
	cfg *config.Config
}

// Handler is the dashboard handler.
var Handler = Service{} //nolint:gochecknoglobals

var _ handler.Service = (*Service)(nil)

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilACFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c fiber.Ctx) error {
	nav := navigation.NewContext(Title, c.Path()).WithBreadcrumbs()

	log.Debug().
		Str("path", nav.CurrentPath).
		Str("active_section", nav.ActiveSection).
		Msg("rendering dashboard")

	return handler.RenderPage(c, s.cfg, TemplateName, nav, Data{Cards: cards()})
}

// cards lists every section except home itself.
func cards() []Card {
	entries := navigation.Entries()
	out := make([]Card, 0, len(entries))

	for _, e := range entries {
		if e.Href == Path {
			continue
		}

		out = append(out, Card{Name: e.Name, Href: e.Href, Icon: e.Icon})
	}

	return out
}
