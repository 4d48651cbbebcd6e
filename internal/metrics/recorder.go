// Package metrics records service operation outcomes as Prometheus metrics.
package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "portfolio"

// Recorder counts operations by entity, operation and outcome status and
// observes their latency.
type Recorder struct {
	gatherer   prometheus.Gatherer
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewRecorder registers the operation metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r, err := NewRecorderWith(reg, reg)
	if err != nil {
		// A fresh registry cannot hold conflicting collectors.
		panic(err)
	}
	return r
}

// NewRecorderWith registers the operation metrics on reg and reads them back through g.
func NewRecorderWith(reg prometheus.Registerer, g prometheus.Gatherer) (*Recorder, error) {
	r := &Recorder{
		gatherer: g,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Service operations by entity, operation and result status.",
		}, []string{"entity", "operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity", "operation"}),
	}
	for _, c := range []prometheus.Collector{r.operations, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	return r, nil
}

// Observe records one finished operation. A nil Recorder ignores the call.
func (r *Recorder) Observe(entity, operation, status string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(entity, operation, status).Inc()
	r.duration.WithLabelValues(entity, operation).Observe(elapsed.Seconds())
}

// Operations returns the counter vector, for tests and exposition.
func (r *Recorder) Operations() *prometheus.CounterVec {
	return r.operations
}

// Sample is one labelled counter value.
type Sample struct {
	Entity    string
	Operation string
	Status    string
	Count     float64
}

// Snapshot reads the operation counters back, sorted by labels.
func (r *Recorder) Snapshot() ([]Sample, error) {
	if r == nil {
		return nil, nil
	}
	families, err := r.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		if mf.GetName() != namespace+"_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			s := Sample{Count: m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				assignLabel(&s, lp)
			}
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Entity != b.Entity {
			return a.Entity < b.Entity
		}
		if a.Operation != b.Operation {
			return a.Operation < b.Operation
		}
		return a.Status < b.Status
	})
	return out, nil
}

func assignLabel(s *Sample, lp *dto.LabelPair) {
	switch lp.GetName() {
	case "entity":
		s.Entity = lp.GetValue()
	case "operation":
		s.Operation = lp.GetValue()
	case "status":
		s.Status = lp.GetValue()
	}
}
