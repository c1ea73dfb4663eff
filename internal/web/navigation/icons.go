package navigation

import (
	"fmt"
	"html/template"
)

// Icon is a key into the outline glyph registry.
type Icon string

// Known glyphs.
const (
	HomeIcon              Icon = "HomeIcon"
	DocumentDuplicateIcon Icon = "DocumentDuplicateIcon"
	UserGroupIcon         Icon = "UserGroupIcon"
	BeakerIcon            Icon = "BeakerIcon"
)

// 24x24 outline path data.
var iconPaths = map[Icon]string{ //nolint:gochecknoglobals
	HomeIcon: "m2.25 12 8.954-8.955c.44-.439 1.152-.439 1.591 0L21.75 12M4.5 9.75v10.125c0 .621.504 1.125 " +
		"1.125 1.125H9.75v-4.875c0-.621.504-1.125 1.125-1.125h2.25c.621 0 1.125.504 1.125 1.125V21h4.125c.621 " +
		"0 1.125-.504 1.125-1.125V9.75M8.25 21h8.25",
	DocumentDuplicateIcon: "M15.75 17.25v3.375c0 .621-.504 1.125-1.125 1.125h-9.75a1.125 1.125 0 0 " +
		"1-1.125-1.125V7.875c0-.621.504-1.125 1.125-1.125H6.75a9.06 9.06 0 0 1 1.5.124m7.5 10.376h3.375c.621 " +
		"0 1.125-.504 1.125-1.125V11.25c0-4.46-3.243-8.161-7.5-8.876a9.06 9.06 0 0 0-1.5-.124H9.375c-.621 " +
		"0-1.125.504-1.125 1.125v3.5m7.5 10.375H9.375a1.125 1.125 0 0 1-1.125-1.125v-9.25m12 6.625v-1.875a3.375 " +
		"3.375 0 0 0-3.375-3.375h-1.5a1.125 1.125 0 0 1-1.125-1.125v-1.5a3.375 3.375 0 0 0-3.375-3.375H9.75",
	UserGroupIcon: "M18 18.72a9.094 9.094 0 0 0 3.741-.479 3 3 0 0 0-4.682-2.72m.94 3.198.001.031c0 " +
		".225-.012.447-.037.666A11.944 11.944 0 0 1 12 21c-2.17 0-4.207-.576-5.963-1.584A6.062 6.062 0 0 1 6 " +
		"18.719m12 0a5.971 5.971 0 0 0-.941-3.197m0 0A5.995 5.995 0 0 0 12 12.75a5.995 5.995 0 0 0-5.058 " +
		"2.772m0 0a3 3 0 0 0-4.681 2.72 8.986 8.986 0 0 0 3.74.477m.94-3.197a5.971 5.971 0 0 0-.94 3.197M15 " +
		"6.75a3 3 0 1 1-6 0 3 3 0 0 1 6 0Zm6 3a2.25 2.25 0 1 1-4.5 0 2.25 2.25 0 0 1 4.5 0Zm-13.5 0a2.25 2.25 " +
		"0 1 1-4.5 0 2.25 2.25 0 0 1 4.5 0Z",
	BeakerIcon: "M9.75 3.104v5.714a2.25 2.25 0 0 1-.659 1.591L5 14.5M9.75 3.104c-.251.023-.501.05-.75.082m.75-.082a24.301 " +
		"24.301 0 0 1 4.5 0m0 0v5.714c0 .597.237 1.17.659 1.591L19.8 15.3M14.25 3.104c.251.023.501.05.75.082M19.8 " +
		"15.3l-1.57.393A9.065 9.065 0 0 1 12 15a9.065 9.065 0 0 0-6.23-.693L5 14.5m14.8.8 1.402 1.402c1.232 " +
		"1.232.65 3.318-1.067 3.611A48.309 48.309 0 0 1 12 21c-2.773 0-5.491-.235-8.135-.687-1.718-.293-2.3-2.379-1.067-3.61L5 14.5",
}

// IconSVG renders the glyph as inline SVG. Unknown keys render a dot placeholder.
func IconSVG(icon Icon, class string) template.HTML {
	class = template.HTMLEscapeString(class)

	d, ok := iconPaths[icon]
	if !ok {
		return template.HTML(fmt.Sprintf( //nolint:gosec // class is escaped
			`<span class="%s inline-flex items-center justify-center" aria-hidden="true">&bull;</span>`, class))
	}

	return template.HTML(fmt.Sprintf( //nolint:gosec // static path data, class is escaped
		`<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" `+
			`stroke="currentColor" class="%s" aria-hidden="true" data-icon="%s">`+
			`<path stroke-linecap="round" stroke-linejoin="round" d="%s"/></svg>`,
		class, icon, d))
}
