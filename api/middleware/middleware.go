package middleware

import (
	"net/http"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/metrics"
)

type contextKey string

func (key contextKey) String() string {
	return "api context key " + string(key)
}

var (
	directoryKey            contextKey = "directory"
	metricSourceKey         contextKey = "metricSource"
	authorizationMetricsKey contextKey = "authorizationMetrics"
	queriesKey              contextKey = "queries"
	fromKey                 contextKey = "from"
	toKey                   contextKey = "to"
	loginKey                contextKey = "login"
	staffKey                contextKey = "staff"
)

// GetDirectory gets userportal.Directory realization from request context
func GetDirectory(request *http.Request) userportal.Directory {
	return request.Context().Value(directoryKey).(userportal.Directory)
}

// GetMetricSource gets userportal.MetricSource realization from request context
func GetMetricSource(request *http.Request) userportal.MetricSource {
	return request.Context().Value(metricSourceKey).(userportal.MetricSource)
}

// GetAuthorizationMetrics gets denial counters from request context, nil when they were not set
func GetAuthorizationMetrics(request *http.Request) *metrics.AuthorizationMetrics {
	authMetrics, _ := request.Context().Value(authorizationMetricsKey).(*metrics.AuthorizationMetrics)
	return authMetrics
}

// GetQueries gets usage query templates from request context
func GetQueries(request *http.Request) api.Queries {
	return request.Context().Value(queriesKey).(api.Queries)
}

// GetLogin gets user login string from request context, which was sets in UserContext middleware.
// Empty string means anonymous requester.
func GetLogin(request *http.Request) string {
	login, _ := request.Context().Value(loginKey).(string)
	return login
}

// IsStaff tells whether requester is a staff member, which was resolved in UserContext middleware
func IsStaff(request *http.Request) bool {
	isStaff, _ := request.Context().Value(staffKey).(bool)
	return isStaff
}

// GetFromStr gets 'from' value from request context, which was sets in DateRange middleware
func GetFromStr(request *http.Request) string {
	return request.Context().Value(fromKey).(string)
}

// GetToStr gets 'to' value from request context, which was sets in DateRange middleware
func GetToStr(request *http.Request) string {
	return request.Context().Value(toKey).(string)
}
