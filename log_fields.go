package userportal

const (
	LogFieldNameUsername   = "userportal.username"
	LogFieldNameAccount    = "userportal.account"
	LogFieldNameAllocation = "userportal.allocation"
	LogFieldNameProject    = "userportal.project"
	LogFieldNamePolicy     = "userportal.policy"
	LogFieldNameQuery      = "userportal.query"
	LogFieldNameContext    = "userportal.context"
)
