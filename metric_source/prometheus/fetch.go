package prometheus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	promApi "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/metric_source/retries"
)

// QueryRange returns points of the first series matched by query.
func (prometheus *Prometheus) QueryRange(ctx context.Context, query string, start, end time.Time, step time.Duration) ([]time.Time, []float64, error) {
	series, err := prometheus.QueryRangeMultiple(ctx, query, start, end, step)
	if err != nil {
		return nil, nil, err
	}
	if len(series) == 0 {
		return nil, nil, userportal.ErrNoSeries
	}
	return series[0].Times, series[0].Values, nil
}

// QueryRangeMultiple returns every series matched by query in the [start, end] range.
// Zero end means now and zero step means the configured default step.
func (prometheus *Prometheus) QueryRangeMultiple(ctx context.Context, query string, start, end time.Time, step time.Duration) ([]userportal.Series, error) {
	if end.IsZero() {
		end = prometheus.clock.NowUTC()
	}
	queryRange := promApi.Range{
		Start: start,
		End:   end,
		Step:  prometheus.config.step(step),
	}

	value, err := prometheus.request(ctx, query, func(ctx context.Context) (model.Value, promApi.Warnings, error) {
		return prometheus.api.QueryRange(ctx, query, queryRange)
	})
	if err != nil {
		return nil, err
	}

	matrix, ok := value.(model.Matrix)
	if !ok {
		return nil, fmt.Errorf("unexpected result type %s of range query %s", value.Type(), query)
	}
	return convertMatrix(matrix), nil
}

// QueryLast evaluates query at the current moment.
func (prometheus *Prometheus) QueryLast(ctx context.Context, query string) (model.Value, error) {
	return prometheus.request(ctx, query, func(ctx context.Context) (model.Value, promApi.Warnings, error) {
		return prometheus.api.Query(ctx, query, prometheus.clock.NowUTC())
	})
}

type requestFunc func(ctx context.Context) (model.Value, promApi.Warnings, error)

func (prometheus *Prometheus) request(ctx context.Context, query string, do requestFunc) (model.Value, error) {
	started := time.Now()
	defer prometheus.metrics.Requests.UpdateSince(started)

	value, err := retries.Retry(ctx, prometheus.config.Retries,
		func() (model.Value, error) {
			return prometheus.requestOnce(ctx, query, do)
		},
		func(err error, attempt int) {
			prometheus.logger.Warning().
				Error(err).
				String(userportal.LogFieldNameQuery, query).
				Int("attempt", attempt).
				Msg("Failed to query prometheus")
		},
	)
	if err != nil {
		prometheus.metrics.Failures.Inc()
		return nil, err
	}
	return value, nil
}

func (prometheus *Prometheus) requestOnce(ctx context.Context, query string, do requestFunc) (model.Value, error) {
	if prometheus.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, prometheus.config.Timeout)
		defer cancel()
	}

	value, warns, err := do(ctx)

	if len(warns) != 0 {
		prometheus.logger.Warning().
			Interface("warns", warns).
			String(userportal.LogFieldNameQuery, query).
			Msg("Warnings when querying prometheus")
	}

	if err != nil {
		var apiErr *promApi.Error
		if errors.As(err, &apiErr) && apiErr.Type == promApi.ErrBadData {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	return value, nil
}
