package prometheus

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/api"
	promApi "github.com/prometheus/client_golang/api/prometheus/v1"
	promConfig "github.com/prometheus/common/config"
	"github.com/prometheus/common/model"
)

// PrometheusApi is the part of prometheus HTTP API used by the metric source.
type PrometheusApi interface {
	Query(ctx context.Context, query string, ts time.Time, opts ...promApi.Option) (model.Value, promApi.Warnings, error)
	QueryRange(ctx context.Context, query string, r promApi.Range, opts ...promApi.Option) (model.Value, promApi.Warnings, error)
}

func createPrometheusApi(config *Config, roundTripper http.RoundTripper) (promApi.API, error) {
	if len(config.Headers) > 0 {
		roundTripper = &headersRoundTripper{headers: config.Headers, next: roundTripper}
	}

	if config.User != "" && config.Password != "" {
		rawToken := fmt.Sprintf("%s:%s", config.User, config.Password)
		token := base64.StdEncoding.EncodeToString([]byte(rawToken))

		roundTripper = promConfig.NewAuthorizationCredentialsRoundTripper(
			"Basic",
			promConfig.Secret(token),
			roundTripper,
		)
	}

	promClientConfig := api.Config{
		Address:      config.URL,
		RoundTripper: roundTripper,
	}

	promCl, err := api.NewClient(promClientConfig)
	if err != nil {
		return nil, err
	}

	return promApi.NewAPI(promCl), nil
}

type headersRoundTripper struct {
	headers map[string]string
	next    http.RoundTripper
}

func (rt *headersRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for name, value := range rt.headers {
		req.Header.Set(name, value)
	}
	return rt.next.RoundTrip(req)
}
