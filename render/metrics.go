package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Update paths recorded under the path label.
const (
	pathInPlace   = "in_place"
	pathReplace   = "replace"
	pathUnchanged = "unchanged"
	pathDetached  = "detached"
	pathFailed    = "failed"
)

// Metrics counts binding activity. A nil *Metrics records nothing.
type Metrics struct {
	updates *prometheus.CounterVec
	created prometheus.Counter
}

// NewMetrics registers the binding collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		updates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dynui",
			Name:      "binding_updates_total",
			Help:      "Binding updates by the path they took",
		}, []string{"path"}),
		created: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dynui",
			Name:      "bindings_created_total",
			Help:      "Bindings created by the runtime",
		}),
	}
}

func (m *Metrics) update(path string) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(path).Inc()
}

func (m *Metrics) bound() {
	if m == nil {
		return
	}
	m.created.Inc()
}
