package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/xiam/to"
	"gopkg.in/yaml.v2"

	"github.com/userportal/userportal/database/ldap"
	"github.com/userportal/userportal/metric_source/prometheus"
	"github.com/userportal/userportal/metric_source/retries"
)

// LoggerConfig is logger settings structure that initialises at the start of userportal
type LoggerConfig struct {
	LogFile         string `yaml:"log_file"`
	LogLevel        string `yaml:"log_level"`
	LogPrettyFormat bool   `yaml:"log_pretty_format"`
}

// TelemetryConfig is settings for listener, pprof and prometheus exposition
type TelemetryConfig struct {
	Listen     string                    `yaml:"listen"`
	Pprof      ProfilerConfig            `yaml:"pprof"`
	Prometheus PrometheusTelemetryConfig `yaml:"prometheus"`
}

// ProfilerConfig is pprof settings structure that initialises at the start of userportal
type ProfilerConfig struct {
	Enabled bool `yaml:"enabled"`
}

// PrometheusTelemetryConfig is settings of the service own metrics endpoint
type PrometheusTelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	MetricsPath string `yaml:"metrics_path"`
}

// LDAPConfig is the identity directory settings structure
type LDAPConfig struct {
	// Directory url, e.g. ldaps://ldap.example.org:636
	URL string `yaml:"url"`
	// DN of the read-only service account, anonymous bind when empty
	BindDN       string `yaml:"bind_dn"`
	BindPassword string `yaml:"bind_password"`
	StartTLS     bool   `yaml:"start_tls"`
	// If true, server certificate is not verified. Use only for debugging purposes.
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	Timeout            string `yaml:"timeout"`
	UserBaseDN         string `yaml:"user_base_dn"`
	AllocationBaseDN   string `yaml:"allocation_base_dn"`
	GroupBaseDN        string `yaml:"group_base_dn"`
	// Users and group memberships are cached for this long, caching is off when empty or zero
	CacheTTL   string               `yaml:"cache_ttl"`
	Attributes LDAPAttributesConfig `yaml:"attributes"`
}

// LDAPAttributesConfig overrides directory schema names, empty fields keep the defaults
type LDAPAttributesConfig struct {
	UserObjectClass       string `yaml:"user_object_class"`
	AllocationObjectClass string `yaml:"allocation_object_class"`
	GroupObjectClass      string `yaml:"group_object_class"`
	Username              string `yaml:"username"`
	UID                   string `yaml:"uid"`
	AllocationName        string `yaml:"allocation_name"`
	AllocationStatus      string `yaml:"allocation_status"`
	AllocationMembers     string `yaml:"allocation_members"`
	AllocationCPU         string `yaml:"allocation_cpu"`
	AllocationGPU         string `yaml:"allocation_gpu"`
	ProjectStorage        string `yaml:"project_storage"`
	NearlineStorage       string `yaml:"nearline_storage"`
	GroupName             string `yaml:"group_name"`
	GroupMembers          string `yaml:"group_members"`
}

// GetSettings returns directory config parsed from userportal config files
func (config *LDAPConfig) GetSettings() *ldap.Config {
	return &ldap.Config{
		URL:                config.URL,
		BindDN:             config.BindDN,
		BindPassword:       config.BindPassword,
		StartTLS:           config.StartTLS,
		InsecureSkipVerify: config.InsecureSkipVerify,
		Timeout:            to.Duration(config.Timeout),
		UserBaseDN:         config.UserBaseDN,
		AllocationBaseDN:   config.AllocationBaseDN,
		GroupBaseDN:        config.GroupBaseDN,
		Attributes:         config.Attributes.getSettings(),
	}
}

// GetCacheTTL returns how long directory lookups are cached
func (config *LDAPConfig) GetCacheTTL() time.Duration {
	return to.Duration(config.CacheTTL)
}

func (config LDAPAttributesConfig) getSettings() ldap.Attributes {
	attributes := ldap.DefaultAttributes()
	override(&attributes.UserObjectClass, config.UserObjectClass)
	override(&attributes.AllocationObjectClass, config.AllocationObjectClass)
	override(&attributes.GroupObjectClass, config.GroupObjectClass)
	override(&attributes.Username, config.Username)
	override(&attributes.UID, config.UID)
	override(&attributes.AllocationName, config.AllocationName)
	override(&attributes.AllocationStatus, config.AllocationStatus)
	override(&attributes.AllocationMembers, config.AllocationMembers)
	override(&attributes.AllocationCPU, config.AllocationCPU)
	override(&attributes.AllocationGPU, config.AllocationGPU)
	override(&attributes.ProjectStorage, config.ProjectStorage)
	override(&attributes.NearlineStorage, config.NearlineStorage)
	override(&attributes.GroupName, config.GroupName)
	override(&attributes.GroupMembers, config.GroupMembers)
	return attributes
}

func override(target *string, value string) {
	if value != "" {
		*target = value
	}
}

// PrometheusConfig is the metrics database settings structure
type PrometheusConfig struct {
	URL string `yaml:"url"`
	// Headers added to every request, e.g. tenant id of a multi-tenant storage
	Headers map[string]string `yaml:"headers"`
	// Label matchers added to every generated query, e.g. cluster="narval"
	Filter   string `yaml:"filter"`
	Timeout  string `yaml:"timeout"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	// Step of range queries when request does not specify one
	DefaultStep string        `yaml:"default_step"`
	Retries     RetriesConfig `yaml:"retries"`
}

// GetPrometheusSourceSettings returns prometheus config parsed from userportal config files
func (config *PrometheusConfig) GetPrometheusSourceSettings() *prometheus.Config {
	return &prometheus.Config{
		URL:         config.URL,
		Headers:     config.Headers,
		Filter:      config.Filter,
		User:        config.User,
		Password:    config.Password,
		Timeout:     to.Duration(config.Timeout),
		DefaultStep: to.Duration(config.DefaultStep),
		Retries:     config.Retries.GetSettings(),
	}
}

// RetriesConfig is a settings for exponential backoff retries of failed requests
type RetriesConfig struct {
	// InitialInterval between requests.
	InitialInterval string `yaml:"initial_interval"`
	// RandomizationFactor is used in exponential backoff to add some randomization
	// when calculating next interval between requests.
	RandomizationFactor float64 `yaml:"randomization_factor"`
	// Each new RetryInterval will be multiplied on Multiplier.
	Multiplier float64 `yaml:"multiplier"`
	// MaxInterval is the cap for RetryInterval.
	MaxInterval string `yaml:"max_interval"`
	// MaxElapsedTime caps the time passed from first try.
	MaxElapsedTime string `yaml:"max_elapsed_time"`
	// MaxRetriesCount is the amount of allowed retries.
	MaxRetriesCount uint64 `yaml:"max_retries_count"`
}

// GetSettings returns retries config parsed from userportal config files
func (config RetriesConfig) GetSettings() retries.Config {
	return retries.Config{
		InitialInterval:     to.Duration(config.InitialInterval),
		RandomizationFactor: config.RandomizationFactor,
		Multiplier:          config.Multiplier,
		MaxInterval:         to.Duration(config.MaxInterval),
		MaxElapsedTime:      to.Duration(config.MaxElapsedTime),
		MaxRetriesCount:     config.MaxRetriesCount,
	}
}

// ReadConfig parses config file by the given path into userportal-used type
func ReadConfig(configFileName string, config interface{}) error {
	configYaml, err := os.ReadFile(configFileName)
	if err != nil {
		return fmt.Errorf("can't read file [%s] [%s]", configFileName, err.Error())
	}
	err = yaml.Unmarshal(configYaml, config)
	if err != nil {
		return fmt.Errorf("can't parse config file [%s] [%s]", configFileName, err.Error())
	}
	return nil
}

// PrintConfig prints config to stdout
func PrintConfig(config interface{}) {
	d, _ := yaml.Marshal(&config)
	fmt.Println(string(d))
}
