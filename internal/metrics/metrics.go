// Copyright 2025 The Paymentflow Authors
// This file is part of paymentflow.
//
// paymentflow is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// paymentflow is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with paymentflow. If not, see <http://www.gnu.org/licenses/>.

// Package metrics instruments an engine run against a private Prometheus
// registry. Never registered against the global default registry, so
// running the library twice in one process (as tests do) never panics on
// a duplicate registration.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erigontech/paymentflow/internal/engine"
	"github.com/erigontech/paymentflow/internal/operation"
)

// Metrics bundles the counters and gauge an Engine run reports into, and
// implements engine.Recorder so it can be passed straight to engine.New.
type Metrics struct {
	registry       *prometheus.Registry
	operations     *prometheus.CounterVec
	parseErrors    *prometheus.CounterVec
	shardQueueSize *prometheus.GaugeVec
}

// New creates a Metrics bound to a fresh, private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paymentflow_operations_total",
			Help: "Operations processed, by shard, kind and outcome.",
		}, []string{"shard", "kind", "outcome"}),
		parseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paymentflow_parse_errors_total",
			Help: "CSV rows dropped at parse time, by reason.",
		}, []string{"reason"}),
		shardQueueSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "paymentflow_shard_queue_depth",
			Help: "Best-effort queue depth sampled on enqueue, by shard.",
		}, []string{"shard"}),
	}
	reg.MustRegister(m.operations, m.parseErrors, m.shardQueueSize)
	return m
}

// Registry exposes the private registry so a caller can wire a custom
// HTTP handler if the one returned by Handler doesn't fit.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns an http.Handler serving this Metrics' registry in the
// Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ParseError records a dropped CSV row.
func (m *Metrics) ParseError(reason string) {
	m.parseErrors.WithLabelValues(reason).Inc()
}

// Enqueued implements engine.Recorder.
func (m *Metrics) Enqueued(shard int, depth int) {
	m.shardQueueSize.WithLabelValues(shardLabel(shard)).Set(float64(depth))
}

// Applied implements engine.Recorder.
func (m *Metrics) Applied(shard int, op operation.Operation) {
	m.operations.WithLabelValues(shardLabel(shard), kindLabel(op), "applied").Inc()
}

// Dropped implements engine.Recorder.
func (m *Metrics) Dropped(shard int, op operation.Operation, _ error) {
	m.operations.WithLabelValues(shardLabel(shard), kindLabel(op), "dropped").Inc()
}

// ShardFailed implements engine.Recorder.
func (m *Metrics) ShardFailed(error) {
	m.operations.WithLabelValues("*", "*", "shard_failed").Inc()
}

var _ engine.Recorder = (*Metrics)(nil)

func shardLabel(shard int) string {
	return strconv.Itoa(shard)
}

func kindLabel(op operation.Operation) string {
	switch o := op.(type) {
	case operation.Transaction:
		if o.Kind == operation.Deposit {
			return "deposit"
		}
		return "withdrawal"
	case operation.Conflict:
		switch o.Kind {
		case operation.Dispute:
			return "dispute"
		case operation.Resolve:
			return "resolve"
		default:
			return "chargeback"
		}
	default:
		return "unknown"
	}
}
