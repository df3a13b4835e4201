// Package metrics exposes compile pass statistics as Prometheus collectors.
package metrics

import (
	"context"

	"github.com/aretw0/toggler/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the compiler's Prometheus collectors.
type Collector struct {
	toggles  *prometheus.CounterVec
	skipped  prometheus.Counter
	groups   *prometheus.CounterVec
	passes   *prometheus.CounterVec
	duration prometheus.Histogram
	params   prometheus.Gauge
	layers   prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		toggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toggler_toggles_compiled_total",
				Help: "Total number of compiled toggles",
			},
			[]string{"kind"},
		),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toggler_toggles_skipped_total",
			Help: "Total number of toggles skipped for an empty condition",
		}),
		groups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toggler_exclusive_groups_total",
				Help: "Total number of resolved exclusive groups",
			},
			[]string{"encoding"},
		),
		passes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toggler_compile_passes_total",
				Help: "Total number of compile passes",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "toggler_compile_duration_seconds",
			Help:    "Duration of compile passes",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		params: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "toggler_graph_params",
			Help: "Parameters produced by the last compile pass",
		}),
		layers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "toggler_graph_layers",
			Help: "Layers produced by the last compile pass",
		}),
	}

	for _, col := range []prometheus.Collector{c.toggles, c.skipped, c.groups, c.passes, c.duration, c.params, c.layers} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Hooks returns lifecycle hooks feeding the collectors.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnToggleCompiled: func(_ context.Context, e *domain.ToggleEvent) {
			kind := "toggle"
			if e.Slider {
				kind = "slider"
			}
			c.toggles.WithLabelValues(kind).Inc()
		},
		OnToggleSkipped: func(context.Context, *domain.ToggleEvent) {
			c.skipped.Inc()
		},
		OnGroupResolved: func(_ context.Context, e *domain.GroupEvent) {
			c.groups.WithLabelValues(string(e.Group.Encoding)).Inc()
		},
		OnPassFinished: func(_ context.Context, e *domain.PassEvent) {
			c.duration.Observe(e.Duration.Seconds())
			if e.Err != nil {
				c.passes.WithLabelValues("error").Inc()
				return
			}
			c.passes.WithLabelValues("ok").Inc()
			c.params.Set(float64(e.Params))
			c.layers.Set(float64(e.Layers))
		},
	}
}
