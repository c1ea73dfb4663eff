package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/go-dashboard/go-dashboard/internal/config"
	"github.com/go-dashboard/go-dashboard/internal/web/navigation"
)

// RenderPage renders a page template inside the base layout.
func RenderPage(c fiber.Ctx, cfg *config.Config, name string, nav *navigation.Context, data any) error {
	ObserveNavigation(nav)

	return c.Render(name, fiber.Map{
		"Title":      cfg.Title,
		"HtmxURL":    cfg.Webserver.HtmxURL,
		"Navigation": nav,
		"Data":       data,
	}, BaseLayout)
}
