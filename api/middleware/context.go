package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/metrics"
)

// DirectoryContext sets to requests context configured directory
func DirectoryContext(directory userportal.Directory) func(next http.Handler) http.Handler {
	return withValue(directoryKey, directory)
}

// MetricSourceContext sets to requests context configured metric source
func MetricSourceContext(source userportal.MetricSource) func(next http.Handler) http.Handler {
	return withValue(metricSourceKey, source)
}

// AuthorizationMetricsContext sets to requests context counters of denied requests
func AuthorizationMetricsContext(authMetrics *metrics.AuthorizationMetrics) func(next http.Handler) http.Handler {
	return withValue(authorizationMetricsKey, authMetrics)
}

// QueriesContext sets to requests context usage query templates
func QueriesContext(queries api.Queries) func(next http.Handler) http.Handler {
	return withValue(queriesKey, queries)
}

func withValue(key contextKey, value interface{}) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := context.WithValue(request.Context(), key, value)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// UserContext gets requester login from the configured header and resolves whether requester is staff.
// If header is empty the requester is anonymous. Failure to reach the directory gives 500.
func UserContext(config *api.Config, directory userportal.Directory) func(next http.Handler) http.Handler {
	header := config.UserHeader
	if header == "" {
		header = api.DefaultUserHeader
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			login := request.Header.Get(header)
			setLogEntryLogin(request, login)

			isStaff, err := config.Authorization.IsStaff(request.Context(), directory, login)
			if err != nil {
				render.Render(writer, request, api.ErrorInternalServer(err)) //nolint
				return
			}

			ctx := context.WithValue(request.Context(), loginKey, login)
			ctx = context.WithValue(ctx, staffKey, isStaff)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// DateRange gets from and to values from URI query and set it to request context. If query has not values sets given values
func DateRange(defaultFrom, defaultTo string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			from := request.URL.Query().Get("from")
			if from == "" {
				from = defaultFrom
			}
			to := request.URL.Query().Get("to")
			if to == "" {
				to = defaultTo
			}

			ctxFrom := context.WithValue(request.Context(), fromKey, from)
			ctxTo := context.WithValue(ctxFrom, toKey, to)
			next.ServeHTTP(writer, request.WithContext(ctxTo))
		})
	}
}
