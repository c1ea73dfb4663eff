package web

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/go-dashboard/go-dashboard/internal/web/navigation"
)

// canonicalPath drops trailing slashes and, with foldCase, rewrites the longest
// sidebar href matching case-insensitively to its canonical spelling.
// Anything below that href keeps its case.
func canonicalPath(p string, foldCase bool) string {
	if len(p) > 1 {
		if p = strings.TrimRight(p, "/"); p == "" {
			p = "/"
		}
	}

	if !foldCase {
		return p
	}

	best := ""

	for _, e := range navigation.Entries() {
		n := len(e.Href)
		if len(p) < n || !strings.EqualFold(p[:n], e.Href) {
			continue
		}

		// only whole segments
		if len(p) > n && p[n] != '/' {
			continue
		}

		if n > len(best) {
			best = e.Href
		}
	}

	if best == "" {
		return p
	}

	return best + p[len(best):]
}

// canonicalRedirect answers non-canonical paths with a permanent redirect, so the
// sidebar always resolves the path it will be matched against.
func canonicalRedirect(foldCase bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		p := c.Path()

		if strings.HasPrefix(p, StaticPath+"/") {
			return c.Next()
		}

		target := canonicalPath(p, foldCase)
		if target == p {
			return c.Next()
		}

		if qs := c.Request().URI().QueryString(); len(qs) > 0 {
			target += "?" + string(qs)
		}

		return c.Redirect().Status(fiber.StatusPermanentRedirect).To(target)
	}
}
