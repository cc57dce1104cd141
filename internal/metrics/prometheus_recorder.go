package metrics

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "calcpad"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg        *prom.Registry
	actions    *prom.CounterVec
	faults     prom.Counter
	rejected   prom.Counter
	tapeLength prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them on reg. A nil reg
// gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		actions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "key_actions_total",
			Help:      "Key presses applied to the engine by action",
		}, []string{"action"}),
		faults: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "faults_total",
			Help:      "Transitions into the error display",
		}),
		rejected: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_keys_total",
			Help:      "Keys that had no binding",
		}),
		tapeLength: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "tape_length",
			Help:      "Number of steps on the most recently updated session tape",
		}),
	}
	reg.MustRegister(pr.actions, pr.faults, pr.rejected, pr.tapeLength)
	return pr
}

func (p *PrometheusRecorder) IncAction(action string) {
	if p == nil {
		return
	}
	p.actions.WithLabelValues(action).Inc()
}

func (p *PrometheusRecorder) IncFault() {
	if p == nil {
		return
	}
	p.faults.Inc()
}

func (p *PrometheusRecorder) IncRejectedKey() {
	if p == nil {
		return
	}
	p.rejected.Inc()
}

func (p *PrometheusRecorder) SetTapeLength(n int) {
	if p == nil {
		return
	}
	p.tapeLength.Set(float64(n))
}

// Registry exposes the registry the recorder writes to.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

// WriteTextfile dumps the current metrics in the text exposition format, suitable for
// the node_exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
