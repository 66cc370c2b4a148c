package api

// Authorization policy names, used as metric and log labels.
const (
	PolicyUserOrStaff             = "user_or_staff"
	PolicyAccountOrStaff          = "account_or_staff"
	PolicyOpenstackProjectOrStaff = "openstack_project_or_staff"
	PolicyStaff                   = "staff"
)

// Policies lists every authorization policy.
var Policies = []string{
	PolicyUserOrStaff,
	PolicyAccountOrStaff,
	PolicyOpenstackProjectOrStaff,
	PolicyStaff,
}
