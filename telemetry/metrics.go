package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pthm-cable/forage/allocation"
)

const metricsNamespace = "forage"

// Metrics exposes an evaluation as Prometheus gauges on a private registry.
type Metrics struct {
	registry       *prometheus.Registry
	optimumUtility *prometheus.GaugeVec
	optimumApples  *prometheus.GaugeVec
	optimumTrees   *prometheus.GaugeVec
	currentUtility prometheus.Gauge
	unusedActions  prometheus.Gauge
	feasibleCells  prometheus.Gauge
	relaxationGap  prometheus.Gauge
}

// NewMetrics creates and registers the gauges.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		optimumUtility: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "optimum_utility",
			Help:      "Utility of the best grid allocation per criterion.",
		}, []string{"criterion"}),
		optimumApples: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "optimum_apples",
			Help:      "Daily apples of the best grid allocation per criterion.",
		}, []string{"criterion"}),
		optimumTrees: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "optimum_trees",
			Help:      "Daily trees of the best grid allocation per criterion.",
		}, []string{"criterion"}),
		currentUtility: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "current_utility",
			Help:      "Utility of the chosen daily plan.",
		}),
		unusedActions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "unused_actions",
			Help:      "Daily actions the chosen plan leaves unspent.",
		}),
		feasibleCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "grid_feasible_cells",
			Help:      "Number of feasible cells in the utility grid.",
		}),
		relaxationGap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "discretisation_gap",
			Help:      "Utility lost by the grid against the real-valued optimum.",
		}),
	}
	m.registry.MustRegister(
		m.optimumUtility, m.optimumApples, m.optimumTrees,
		m.currentUtility, m.unusedActions, m.feasibleCells, m.relaxationGap,
	)
	return m
}

// Observe sets every gauge from e.
func (m *Metrics) Observe(e *allocation.Evaluation) {
	for _, o := range e.Optima.All() {
		label := o.Criterion.String()
		m.optimumUtility.WithLabelValues(label).Set(o.Utility)
		m.optimumApples.WithLabelValues(label).Set(float64(o.Allocation.Apples))
		m.optimumTrees.WithLabelValues(label).Set(float64(o.Allocation.Trees))
	}
	m.currentUtility.Set(e.Plan.Utility)
	m.unusedActions.Set(float64(e.Plan.ActionsUnused))
	m.feasibleCells.Set(float64(e.Grid.FeasibleCount()))
	m.relaxationGap.Set(e.Relaxation.Utility - e.Optima.Happiness.Utility)
}

// Registry returns the registry holding the gauges.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the gauges in the text exposition format, suitable
// for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
