package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// NavLinksPartial renders the sidebar links of a navigation context.
	NavLinksPartial = "partials/navlinks"

	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilACFatalLogMsg is used if app or cfg var pointer is nil.
	ErrNilACFatalLogMsg = "app or cfg is nil"
)
