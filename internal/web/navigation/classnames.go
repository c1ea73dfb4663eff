package navigation

import "strings"

// ConditionalClass is a class name applied only when When is true.
type ConditionalClass struct {
	Class string
	When  bool
}

// ClassNames joins base with every enabled conditional class. Empty names are skipped.
func ClassNames(base string, conditional ...ConditionalClass) string {
	parts := make([]string, 0, len(conditional)+1)

	if base = strings.TrimSpace(base); base != "" {
		parts = append(parts, base)
	}

	for _, c := range conditional {
		if !c.When {
			continue
		}

		if name := strings.TrimSpace(c.Class); name != "" {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, " ")
}
