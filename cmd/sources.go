package cmd

import (
	"fmt"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/database/ldap"
	"github.com/userportal/userportal/metric_source/prometheus"
	"github.com/userportal/userportal/metrics"
)

// InitDirectory validates directory settings and creates the LDAP backed directory,
// wrapped with lookup cache when cache ttl is set.
func InitDirectory(config LDAPConfig, logger userportal.Logger, registry metrics.Registry) (userportal.Directory, error) {
	settings := config.GetSettings()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("ldap config validation failed: %w", err)
	}

	directory := ldap.NewDirectory(settings, logger, metrics.ConfigureSourceMetrics(registry, "ldap"))
	return ldap.NewCachedDirectory(directory, config.GetCacheTTL()), nil
}

// InitMetricSource validates prometheus settings and creates the metric source.
func InitMetricSource(config PrometheusConfig, logger userportal.Logger, registry metrics.Registry) (userportal.MetricSource, error) {
	settings := config.GetPrometheusSourceSettings()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("prometheus config validation failed: %w", err)
	}

	source, err := prometheus.Create(settings, logger, metrics.ConfigureSourceMetrics(registry, "prometheus"))
	if err != nil {
		return nil, err
	}
	return source, nil
}
