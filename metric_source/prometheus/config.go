package prometheus

import (
	"errors"
	"time"

	"github.com/userportal/userportal/metric_source/retries"
)

// DefaultStep is used when neither a request nor the config specify a step.
const DefaultStep = 3 * time.Minute

// Config of the prometheus metric source.
type Config struct {
	// URL of the prometheus (or compatible) HTTP API.
	URL string
	// Headers are added to every request, e.g. a tenant id for a multi-tenant storage.
	Headers map[string]string
	// Filter is a label matcher list appended to generated queries.
	Filter string
	// User and Password enable basic auth when both are set.
	User     string
	Password string
	// Timeout of a single request.
	Timeout time.Duration
	// DefaultStep of range queries.
	DefaultStep time.Duration
	// Retries of failed requests, zero value disables retrying.
	Retries retries.Config
}

var errNoURL = errors.New("prometheus url must be specified")

// Validate checks that prometheus Config has all necessary fields.
func (config *Config) Validate() error {
	var errs []error
	if config.URL == "" {
		errs = append(errs, errNoURL)
	}
	if config.Retries != (retries.Config{}) {
		if err := config.Retries.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (config *Config) step(step time.Duration) time.Duration {
	if step > 0 {
		return step
	}
	if config.DefaultStep > 0 {
		return config.DefaultStep
	}
	return DefaultStep
}
