package ldap

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the directory connection and schema configuration.
type Config struct {
	// URL of the directory, ldap:// or ldaps://
	URL string `validate:"required,url"`
	// BindDN and BindPassword of the read-only service account, anonymous bind when empty
	BindDN       string
	BindPassword string
	StartTLS     bool
	// InsecureSkipVerify disables server certificate verification
	InsecureSkipVerify bool
	Timeout            time.Duration `validate:"gte=0"`

	UserBaseDN       string `validate:"required"`
	AllocationBaseDN string `validate:"required"`
	GroupBaseDN      string

	Attributes Attributes
}

// Validate checks that directory Config has all necessary fields.
func (config *Config) Validate() error {
	validator := validator.New()
	return validator.Struct(config)
}

// Attributes maps directory schema attribute and object class names.
type Attributes struct {
	UserObjectClass       string
	AllocationObjectClass string
	GroupObjectClass      string

	Username string
	UID      string

	AllocationName    string
	AllocationStatus  string
	AllocationMembers string
	AllocationCPU     string
	AllocationGPU     string
	ProjectStorage    string
	NearlineStorage   string

	GroupName    string
	GroupMembers string
}

// DefaultAttributes returns the schema used by the research computing directory.
func DefaultAttributes() Attributes {
	return Attributes{
		UserObjectClass:       "posixAccount",
		AllocationObjectClass: "ccAllocation",
		GroupObjectClass:      "posixGroup",

		Username: "uid",
		UID:      "uidNumber",

		AllocationName:    "cn",
		AllocationStatus:  "ccStatus",
		AllocationMembers: "memberUid",
		AllocationCPU:     "ccCPUAllocation",
		AllocationGPU:     "ccGPUAllocation",
		ProjectStorage:    "ccProjectStorage",
		NearlineStorage:   "ccNearlineStorage",

		GroupName:    "cn",
		GroupMembers: "memberUid",
	}
}

func (attributes Attributes) allocationAttributes() []string {
	return []string{
		attributes.AllocationName,
		attributes.AllocationStatus,
		attributes.AllocationMembers,
		attributes.AllocationCPU,
		attributes.AllocationGPU,
		attributes.ProjectStorage,
		attributes.NearlineStorage,
	}
}

func (attributes Attributes) userAttributes() []string {
	return []string{attributes.Username, attributes.UID}
}
