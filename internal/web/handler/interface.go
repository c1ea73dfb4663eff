package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/go-dashboard/go-dashboard/internal/config"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config)
}
