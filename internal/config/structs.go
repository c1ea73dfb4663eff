package config

import (
	"github.com/go-dashboard/go-dashboard/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic  bool   // enable static file browsing (for development purposes only)
	CaseSensitive bool   // false redirects /Dashboard/Invoices to /dashboard/invoices
	Port          int    `validate:"gt=0"`     // listening port for the webserver
	ShutDownTime  int    `validate:"gte=0"`    // wait time for shutdown in seconds
	URL           string `validate:"required"` // base url for the webserver
	HtmxURL       string // script url for htmx, empty disables client-side navigation
}
