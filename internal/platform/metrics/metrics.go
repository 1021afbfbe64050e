package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for simulations and consultation submissions.
type Metrics struct {
	Simulations        *prometheus.CounterVec
	SimulationDuration prometheus.Histogram
	Depletions         prometheus.Counter
	Submissions        *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
// Passing nil registers with the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Simulations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeplan_simulations_total",
			Help: "Total number of retirement simulations by readiness grade",
		}, []string{"grade"}),

		SimulationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lifeplan_simulation_duration_seconds",
			Help:    "Duration of projection plus scoring",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),

		Depletions: factory.NewCounter(prometheus.CounterOpts{
			Name: "lifeplan_depletions_total",
			Help: "Total number of simulations whose liquid assets run out before death age",
		}),

		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeplan_submissions_total",
			Help: "Total consultation submissions by outcome",
		}, []string{"status"}), // status: "stored", "failed"
	}
}

// ObserveSimulation records one simulation outcome.
func (m *Metrics) ObserveSimulation(grade string, depleted bool, d time.Duration) {
	if m == nil {
		return
	}
	m.Simulations.WithLabelValues(grade).Inc()
	m.SimulationDuration.Observe(d.Seconds())
	if depleted {
		m.Depletions.Inc()
	}
}

// IncrementSubmission records a submission outcome.
func (m *Metrics) IncrementSubmission(status string) {
	if m != nil {
		m.Submissions.WithLabelValues(status).Inc()
	}
}
