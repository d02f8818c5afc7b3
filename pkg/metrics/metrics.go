// Package metrics counts container operations using Prometheus metrics.
//
// # Overview
//
// A Collector owns a private registry, so several collectors (one per CLI
// run, one per test) never collide on metric names. It records:
//   - operations_total{op,status}: every container operation and whether it
//     succeeded
//   - elements_processed_total{op}: elements read or produced per operation
//   - operation_duration_nanoseconds{op}: latency distribution
//
// # Basic Usage
//
//	c := metrics.NewCollector("arrays")
//	timer := metrics.NewTimer("concat")
//	out, err := array.Join(a, b)
//	c.Observe("concat", out.Len(), timer.Stop(), err)
//	logger.Info("summary", zap.Any("metrics", c.Snapshot()))
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/ajitpratap0/arrays/pkg/errors"
)

// Status label values
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Collector records container operation metrics on its own registry.
type Collector struct {
	name       string
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	elements   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	errorTypes *prometheus.CounterVec
	startTime  time.Time
	mu         sync.RWMutex
	ops        map[string]struct{}
}

// NewCollector creates a collector whose metrics carry the given namespace.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		name:     namespace,
		registry: reg,
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of container operations",
			},
			[]string{"op", "status"},
		),
		elements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "elements_processed_total",
				Help:      "Total number of elements read or produced",
			},
			[]string{"op"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_nanoseconds",
				Help:      "Container operation latency in nanoseconds",
				Buckets: []float64{
					100,    // 100ns - single element access
					1000,   // 1μs - small containers
					10000,  // 10μs
					100000, // 100μs
					1e6,    // 1ms - large conversions
					1e7,    // 10ms
					1e8,    // 100ms - document decoding
				},
			},
			[]string{"op"},
		),
		errorTypes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_total",
				Help:      "Failed operations by error type",
			},
			[]string{"op", "type"},
		),
		startTime: time.Now(),
		ops:       make(map[string]struct{}),
	}
}

// Registry exposes the collector's registry for scraping or gathering.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// StartTime returns when the collector was created
func (c *Collector) StartTime() time.Time {
	return c.startTime
}

// Observe records one operation over n elements. A non-nil err marks it as
// failed and counts its error type.
func (c *Collector) Observe(op string, n int, d time.Duration, err error) {
	c.mu.Lock()
	c.ops[op] = struct{}{}
	c.mu.Unlock()

	if err != nil {
		c.operations.WithLabelValues(op, StatusFailure).Inc()
		errType := string(errors.ErrorTypeInternal)
		var e *errors.Error
		if errors.As(err, &e) {
			errType = string(e.Type)
		}
		c.errorTypes.WithLabelValues(op, errType).Inc()
	} else {
		c.operations.WithLabelValues(op, StatusSuccess).Inc()
	}
	if n > 0 {
		c.elements.WithLabelValues(op).Add(float64(n))
	}
	c.latency.WithLabelValues(op).Observe(float64(d.Nanoseconds()))
}

// OpSnapshot is the counter state of one operation.
type OpSnapshot struct {
	Success  float64 `json:"success"`
	Failure  float64 `json:"failure"`
	Elements float64 `json:"elements"`
}

// Snapshot returns the current counter values keyed by operation.
func (c *Collector) Snapshot() map[string]OpSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]OpSnapshot, len(c.ops))
	for op := range c.ops {
		out[op] = OpSnapshot{
			Success:  counterValue(c.operations.WithLabelValues(op, StatusSuccess)),
			Failure:  counterValue(c.operations.WithLabelValues(op, StatusFailure)),
			Elements: counterValue(c.elements.WithLabelValues(op)),
		}
	}
	return out
}

// GetAll returns the snapshot plus collector metadata
func (c *Collector) GetAll() map[string]interface{} {
	return map[string]interface{}{
		"component":  c.name,
		"start_time": c.startTime,
		"uptime":     time.Since(c.startTime).Seconds(),
		"operations": c.Snapshot(),
	}
}

func counterValue(counter prometheus.Counter) float64 {
	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// Timer provides a simple timing mechanism for measuring operation durations.
type Timer struct {
	start time.Time
	name  string
}

// NewTimer creates a new timer and starts timing immediately.
func NewTimer(name string) *Timer {
	return &Timer{
		start: time.Now(),
		name:  name,
	}
}

// Name returns the operation the timer measures
func (t *Timer) Name() string {
	return t.name
}

// Stop returns the elapsed duration since creation. It may be called
// more than once.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}
