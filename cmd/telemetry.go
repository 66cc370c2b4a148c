package cmd

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/metrics"
)

const defaultMetricsPath = "/metrics"

type Telemetry struct {
	Metrics  metrics.Registry
	stopFunc func()
}

func (source *Telemetry) Stop() {
	source.stopFunc()
}

// ConfigureTelemetry starts the listener serving service own metrics and pprof.
// Metrics are only counted in memory when prometheus exposition is disabled.
func ConfigureTelemetry(logger userportal.Logger, config TelemetryConfig, service string) (*Telemetry, error) {
	serverMux := http.NewServeMux()
	metricsRegistry := configureTelemetry(config, service, serverMux)

	if !config.Pprof.Enabled && !config.Prometheus.Enabled {
		return &Telemetry{Metrics: metricsRegistry, stopFunc: func() {}}, nil
	}

	listener, err := net.Listen("tcp", config.Listen)
	if err != nil {
		return nil, err
	}

	server := &http.Server{Handler: serverMux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		server.Serve(listener) //nolint
	}()

	logger.Info().
		String("listen", config.Listen).
		Msg("Start telemetry server")

	return &Telemetry{
		Metrics: metricsRegistry,
		stopFunc: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logger.Error().
					Error(err).
					Msg("Can't stop telemetry server correctly")
			}
		},
	}, nil
}

func configureTelemetry(config TelemetryConfig, service string, serverMux *http.ServeMux) metrics.Registry {
	if config.Pprof.Enabled {
		configurePprofServer(serverMux)
	}

	if !config.Prometheus.Enabled {
		return metrics.NewDummyRegistry()
	}

	metricsPath := config.Prometheus.MetricsPath
	if metricsPath == "" {
		metricsPath = defaultMetricsPath
	}

	prometheusRegistry := metrics.NewPrometheusRegistry()
	serverMux.Handle(metricsPath, promhttp.InstrumentMetricHandler(prometheusRegistry, promhttp.HandlerFor(prometheusRegistry, promhttp.HandlerOpts{})))
	return metrics.NewPrometheusRegistryAdapter(prometheusRegistry, service)
}

func configurePprofServer(serverMux *http.ServeMux) {
	serverMux.HandleFunc("/pprof/", pprof.Index)
	serverMux.HandleFunc("/pprof/cmdline", pprof.Cmdline)
	serverMux.HandleFunc("/pprof/profile", pprof.Profile)
	serverMux.HandleFunc("/pprof/symbol", pprof.Symbol)
	serverMux.HandleFunc("/pprof/trace", pprof.Trace)
	serverMux.HandleFunc("/pprof/heap", pprof.Handler("heap").ServeHTTP)
	serverMux.HandleFunc("/pprof/goroutine", pprof.Handler("goroutine").ServeHTTP)
}
