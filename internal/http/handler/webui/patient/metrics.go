package patient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeRegistered = "registered"
	outcomeInvalid    = "invalid"
	outcomeFailed     = "failed"

	resultValid   = "valid"
	resultInvalid = "invalid"
)

type metrics struct {
	submissions      *prometheus.CounterVec
	fieldValidations *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)

	return &metrics{
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "patient",
			Name:      "submissions_total",
			Help:      "Number of patient registration submissions, by outcome",
		}, []string{"outcome"}),
		fieldValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intake",
			Subsystem: "patient",
			Name:      "field_validations_total",
			Help:      "Number of live field validations, by field and result",
		}, []string{"field", "result"}),
	}
}
