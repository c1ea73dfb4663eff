package navigation

import (
	"strings"
)

const (
	// HomeRoot is the href of the home entry. It is only active on an exact match.
	HomeRoot = "/dashboard"

	// LabsRoot is the labs root whose sub-paths keep the labs link highlighted.
	// Note: the labs entry itself lives at /dashboard/labs, so this rule does not
	// fire for the fixed list. It is kept as observed.
	LabsRoot = "/labs"

	// BaseClass is applied to every sidebar link.
	BaseClass = "flex h-[48px] grow items-center justify-center gap-2 rounded-md bg-gray-50 p-3 " +
		"text-sm font-medium hover:bg-sky-100 hover:text-blue-600 md:flex-none md:justify-start md:p-2 md:px-3"

	// ActiveClass is added to the link of the active route.
	ActiveClass = "bg-sky-100 text-blue-600"

	// IconClass sizes the link glyph.
	IconClass = "w-6"

	// LabelClass hides the label on narrow screens.
	LabelClass = "hidden md:block"
)

// Entry is a single sidebar link.
type Entry struct {
	Name string
	Href string
	Icon Icon
}

// Link is an Entry resolved against the current path, ready for the template.
type Link struct {
	Entry

	Active     bool
	Class      string
	IconClass  string
	LabelClass string
}

var links = [...]Entry{ //nolint:gochecknoglobals
	{Name: "Home", Href: HomeRoot, Icon: HomeIcon},
	{Name: "Invoices", Href: "/dashboard/invoices", Icon: DocumentDuplicateIcon},
	{Name: "Customers", Href: "/dashboard/customers", Icon: UserGroupIcon},
	{Name: "Labs", Href: "/dashboard/labs", Icon: BeakerIcon},
}

// Entries returns a copy of the sidebar entries in display order.
func Entries() []Entry {
	out := make([]Entry, len(links))
	copy(out, links[:])

	return out
}

// IsActive reports whether the entry with the given href is highlighted for currentPath.
func IsActive(currentPath, href string) bool {
	// exact match
	if currentPath == href {
		return true
	}

	// any labs sub-path keeps the labs link highlighted
	if href == LabsRoot && strings.HasPrefix(currentPath, LabsRoot+"/") {
		return true
	}

	// home only matches itself, otherwise it would win on every dashboard page
	if href == HomeRoot {
		return false
	}

	return strings.HasPrefix(currentPath, href)
}

// Render resolves every entry against currentPath, in display order.
func Render(currentPath string) []Link {
	out := make([]Link, 0, len(links))

	for _, e := range links {
		active := IsActive(currentPath, e.Href)

		out = append(out, Link{
			Entry:      e,
			Active:     active,
			Class:      ClassNames(BaseClass, ConditionalClass{Class: ActiveClass, When: active}),
			IconClass:  IconClass,
			LabelClass: LabelClass,
		})
	}

	return out
}

// SectionFor returns the first entry active for currentPath.
func SectionFor(currentPath string) (Entry, bool) {
	for _, e := range links {
		if IsActive(currentPath, e.Href) {
			return e, true
		}
	}

	return Entry{}, false
}

// Lookup finds an entry by href.
func Lookup(href string) (Entry, bool) {
	for _, e := range links {
		if e.Href == href {
			return e, true
		}
	}

	return Entry{}, false
}
