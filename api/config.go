package api

// DefaultUserHeader is set by the authenticating reverse proxy in front of the portal.
const DefaultUserHeader = "X-Webauth-User"

// Config for api configuration variables.
type Config struct {
	EnableCORS bool
	Listen     string
	// UserHeader is the trusted request header carrying requester login
	UserHeader    string
	Authorization Authorization
	Queries       Queries
}

// Queries are PromQL templates of the usage endpoints. Each one receives the label matchers through a single %s verb.
type Queries struct {
	AccountCPUUsage string
	AccountGPUUsage string
	ProjectUsage    string
}
