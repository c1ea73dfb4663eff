// Package navigation holds the dashboard sidebar: the fixed link list, the
// active-route matcher and the per-page navigation context.
package navigation

import (
	"strings"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string // href of the highlighted entry, empty if none
	CurrentPath   string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
}

// NewContext creates a navigation context for the page served at currentPath.
func NewContext(pageTitle, currentPath string) *Context {
	c := &Context{
		PageTitle:   pageTitle,
		CurrentPath: currentPath,
		Breadcrumbs: make([]BreadcrumbItem, 0),
	}

	if e, ok := SectionFor(currentPath); ok {
		c.ActiveSection = e.Href
	}

	return c
}

// WithBreadcrumbs replaces the breadcrumbs with the trail derived from the current path.
func (c *Context) WithBreadcrumbs() *Context {
	c.Breadcrumbs = BreadcrumbsFor(c.CurrentPath)

	return c
}

// IsSectionActive checks if the given section is the one highlighted.
func (c *Context) IsSectionActive(href string) bool {
	return c.ActiveSection == href
}

// Links returns the sidebar links resolved for this page.
func (c *Context) Links() []Link {
	return Render(c.CurrentPath)
}

// BreadcrumbsFor builds Home > section > sub-path for currentPath. The last item is active.
func BreadcrumbsFor(currentPath string) []BreadcrumbItem {
	crumbs := []BreadcrumbItem{{Title: "Home", URL: HomeRoot}}

	section, ok := SectionFor(currentPath)
	if ok && section.Href != HomeRoot {
		crumbs = append(crumbs, BreadcrumbItem{Title: section.Name, URL: section.Href})

		// sub-path crumbs only below a real separator
		rest := strings.TrimPrefix(currentPath, section.Href)
		if strings.HasPrefix(rest, "/") {
			url := section.Href

			for _, part := range strings.Split(rest, "/") {
				if part == "" {
					continue
				}

				url += "/" + part
				crumbs = append(crumbs, BreadcrumbItem{Title: part, URL: url})
			}
		}
	}

	crumbs[len(crumbs)-1].Active = true

	return crumbs
}
