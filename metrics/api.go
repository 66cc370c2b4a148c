package metrics

// AuthorizationMetrics counts requests rejected by each authorization policy.
type AuthorizationMetrics struct {
	denied map[string]Counter
}

// ConfigureAuthorizationMetrics registers a denial counter for every given policy.
func ConfigureAuthorizationMetrics(registry Registry, policies ...string) *AuthorizationMetrics {
	denied := make(map[string]Counter, len(policies))
	for _, policy := range policies {
		denied[policy] = registry.NewCounter("authorization", policy, "denied")
	}
	return &AuthorizationMetrics{denied: denied}
}

// MarkDenied increments denial counter of the policy, unknown policies are ignored.
func (metrics *AuthorizationMetrics) MarkDenied(policy string) {
	if metrics == nil {
		return
	}
	if counter, ok := metrics.denied[policy]; ok {
		counter.Inc()
	}
}

// DeniedCount returns how many requests the policy has rejected so far.
func (metrics *AuthorizationMetrics) DeniedCount(policy string) int64 {
	if metrics == nil {
		return 0
	}
	if counter, ok := metrics.denied[policy]; ok {
		return counter.Count()
	}
	return 0
}

// SourceMetrics times requests to a backing store (directory or metrics database).
type SourceMetrics struct {
	Requests Timer
	Failures Counter
}

// ConfigureSourceMetrics registers request timer and failure counter for the named source.
func ConfigureSourceMetrics(registry Registry, source string) *SourceMetrics {
	return &SourceMetrics{
		Requests: registry.NewTimer(source, "requests"),
		Failures: registry.NewCounter(source, "failures"),
	}
}
