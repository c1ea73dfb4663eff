// Package section serves the pages behind the non-home sidebar entries.
package section

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/go-dashboard/go-dashboard/internal/config"
	"github.com/go-dashboard/go-dashboard/internal/web/handler"
	"github.com/go-dashboard/go-dashboard/internal/web/navigation"
)

// TemplateName is the name of the section template.
const TemplateName = "dashboard/section"

// Data is passed to the section template.
type Data struct {
	Section navigation.Entry
	SubPath string // path below the section root without leading slash, empty on the root
}

// Service serves one sidebar entry and all of its sub-paths.
type Service struct {
	cfg   *config.Config
	entry navigation.Entry
}

var _ handler.Service = (*Service)(nil)

// New creates a section handler for entry.
func New(entry navigation.Entry) *Service {
	return &Service{entry: entry}
}

// Handlers returns one section handler per non-home sidebar entry, in sidebar order.
func Handlers() []*Service {
	entries := navigation.Entries()
	out := make([]*Service, 0, len(entries))

	for _, e := range entries {
		if e.Href == navigation.HomeRoot {
			continue
		}

		out = append(out, New(e))
	}

	return out
}

// Init registers the section root and its sub-paths.
func (s *Service) Init(app *fiber.App, cfg *config.Config) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilACFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(s.entry.Href, s.Get)
	app.Get(s.entry.Href+"/*", s.Get)
}

// Get renders the section page for the requested path.
func (s *Service) Get(c fiber.Ctx) error {
	currentPath := c.Path()

	nav := navigation.NewContext(s.entry.Name, currentPath).WithBreadcrumbs()

	data := Data{
		Section: s.entry,
		SubPath: c.Params("*"),
	}

	log.Debug().
		Str("section", s.entry.Name).
		Str("path", currentPath).
		Str("sub_path", data.SubPath).
		Msg("rendering section")

	return handler.RenderPage(c, s.cfg, TemplateName, nav, data)
}
