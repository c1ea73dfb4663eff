package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/go-dashboard/go-dashboard/internal/web/navigation"
)

// NoActiveEntry labels renders where no sidebar entry matched.
const NoActiveEntry = "none"

var navRenders = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "nav_renders_total",
		Help:      "Number of sidebar renders, differentiated by the highlighted entry.",
	},
	[]string{"active"},
)

// ObserveNavigation counts a sidebar render for the entry highlighted in nav.
func ObserveNavigation(nav *navigation.Context) {
	navRenders.WithLabelValues(activeLabel(nav)).Inc()
}

func activeLabel(nav *navigation.Context) string {
	if nav == nil {
		return NoActiveEntry
	}

	if e, ok := navigation.Lookup(nav.ActiveSection); ok {
		return e.Name
	}

	return NoActiveEntry
}
