// Package metric provides Prometheus metrics for pagetoken.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ManagerInfo exports the static configuration of a page token manager as
// a constant gauge:
//
//	pagetoken_manager_info{algorithm="aes-128-ctr",encrypted="true"} 1
type ManagerInfo struct {
	desc      *prometheus.Desc
	algorithm string
	encrypted bool
}

// NewManagerInfo creates the info collector. An empty algorithm is reported
// as "none".
func NewManagerInfo(algorithm string, encrypted bool) *ManagerInfo {
	if algorithm == "" {
		algorithm = "none"
	}
	return &ManagerInfo{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "manager", "info"),
			"Page token manager configuration.",
			[]string{"algorithm", "encrypted"}, nil,
		),
		algorithm: algorithm,
		encrypted: encrypted,
	}
}

// Describe implements prometheus.Collector.
func (c *ManagerInfo) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *ManagerInfo) Collect(ch chan<- prometheus.Metric) {
	enc := "false"
	if c.encrypted {
		enc = "true"
	}
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, 1, c.algorithm, enc)
}
