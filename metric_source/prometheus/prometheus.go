package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/api"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/clock"
	"github.com/userportal/userportal/metrics"
)

// Prometheus is a userportal.MetricSource backed by prometheus HTTP API.
type Prometheus struct {
	config  *Config
	logger  userportal.Logger
	metrics *metrics.SourceMetrics
	clock   userportal.Clock
	api     PrometheusApi
}

// Create configures prometheus metric source.
func Create(config *Config, logger userportal.Logger, sourceMetrics *metrics.SourceMetrics) (*Prometheus, error) {
	return create(config, logger, sourceMetrics, api.DefaultRoundTripper)
}

func create(config *Config, logger userportal.Logger, sourceMetrics *metrics.SourceMetrics, roundTripper http.RoundTripper) (*Prometheus, error) {
	promApi, err := createPrometheusApi(config, roundTripper)
	if err != nil {
		return nil, err
	}

	return &Prometheus{
		config:  config,
		logger:  logger,
		metrics: sourceMetrics,
		clock:   clock.NewSystemClock(),
		api:     promApi,
	}, nil
}

// Filter returns label matchers that must be added to every query.
func (prometheus *Prometheus) Filter() string {
	return prometheus.config.Filter
}
