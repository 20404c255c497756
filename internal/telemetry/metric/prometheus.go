// Package metric provides Prometheus metrics for pagetoken.
//
// It counts tokens created, parsed and rejected, and exposes them in
// Prometheus format.
package metric

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

const namespace = "pagetoken"

// Registry holds all page token metrics.
//
// It implements pagetoken.Recorder and is safe for concurrent use.
type Registry struct {
	registry *prometheus.Registry

	TokensCreated *prometheus.CounterVec
	TokensParsed  *prometheus.CounterVec
	TokenErrors   *prometheus.CounterVec
	TokenSize     *prometheus.HistogramVec
}

// NewRegistry creates a registry with the token metrics plus the Go runtime
// and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		TokensCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_created_total",
			Help:      "Page tokens created, by envelope mode.",
		}, []string{"mode"}),
		TokensParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_parsed_total",
			Help:      "Page tokens parsed successfully, by envelope mode.",
		}, []string{"mode"}),
		TokenErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_errors_total",
			Help:      "Page token operations that failed, by operation and error code.",
		}, []string{"op", "code"}),
		TokenSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "token_size_bytes",
			Help:      "Size of binary page tokens.",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 8),
		}, []string{"op"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.TokensCreated,
		r.TokensParsed,
		r.TokenErrors,
		r.TokenSize,
	)

	return r
}

var (
	globalOnce sync.Once
	global     *Registry
)

// Global returns the process-wide registry.
func Global() *Registry {
	globalOnce.Do(func() {
		global = NewRegistry()
	})
	return global
}

// Handler returns an HTTP handler for the global registry.
func Handler() http.Handler {
	return Global().Handler()
}

// Register adds an extra collector, e.g. a ManagerInfo.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.registry.Register(c)
}

// Handler returns an HTTP handler serving this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// WriteText writes every pagetoken_* family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), namespace+"_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func mode(encrypted bool) string {
	if encrypted {
		return "encrypted"
	}
	return "plain"
}

// TokenCreated records a created token.
func (r *Registry) TokenCreated(encrypted bool, size int) {
	r.TokensCreated.WithLabelValues(mode(encrypted)).Inc()
	r.TokenSize.WithLabelValues("create").Observe(float64(size))
}

// TokenParsed records a parsed token.
func (r *Registry) TokenParsed(encrypted bool, size int) {
	r.TokensParsed.WithLabelValues(mode(encrypted)).Inc()
	r.TokenSize.WithLabelValues("parse").Observe(float64(size))
}

// TokenRejected records a failed operation. An empty code is reported as
// "unknown".
func (r *Registry) TokenRejected(op, code string) {
	if code == "" {
		code = "unknown"
	}
	r.TokenErrors.WithLabelValues(op, code).Inc()
}
