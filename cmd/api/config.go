package main

import (
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/cmd"
)

type config struct {
	Logger     cmd.LoggerConfig     `yaml:"log"`
	API        apiConfig            `yaml:"api"`
	LDAP       cmd.LDAPConfig       `yaml:"ldap"`
	Prometheus cmd.PrometheusConfig `yaml:"prometheus"`
	Telemetry  cmd.TelemetryConfig  `yaml:"telemetry"`
}

type apiConfig struct {
	// Api local network address. Default is ':8081' so api will be available at http://portal.example.org:8081/api.
	Listen string `yaml:"listen"`
	// If true, CORS for cross-domain requests will be enabled. This option can be used only for debugging purposes.
	EnableCORS bool `yaml:"enable_cors"`
	// Request header set by the authenticating proxy, X-Webauth-User when empty.
	UserHeader string `yaml:"user_header"`
	// Logins that are always staff.
	StaffList []string `yaml:"staff_list"`
	// Directory group whose members are staff, disabled when empty.
	StaffGroup string `yaml:"staff_group"`
	// PromQL templates of the usage endpoints, label matchers are substituted for %s.
	Queries queriesConfig `yaml:"queries"`
}

type queriesConfig struct {
	AccountCPUUsage string `yaml:"account_cpu_usage"`
	AccountGPUUsage string `yaml:"account_gpu_usage"`
	ProjectUsage    string `yaml:"project_usage"`
}

func (config *apiConfig) getSettings() *api.Config {
	staffList := make(map[string]struct{}, len(config.StaffList))
	for _, login := range config.StaffList {
		staffList[login] = struct{}{}
	}

	return &api.Config{
		EnableCORS: config.EnableCORS,
		Listen:     config.Listen,
		UserHeader: config.UserHeader,
		Authorization: api.Authorization{
			StaffList:  staffList,
			StaffGroup: config.StaffGroup,
		},
		Queries: api.Queries{
			AccountCPUUsage: config.Queries.AccountCPUUsage,
			AccountGPUUsage: config.Queries.AccountGPUUsage,
			ProjectUsage:    config.Queries.ProjectUsage,
		},
	}
}

func getDefault() config {
	return config{
		Logger: cmd.LoggerConfig{
			LogFile:         "stdout",
			LogLevel:        "info",
			LogPrettyFormat: false,
		},
		API: apiConfig{
			Listen:     ":8081",
			EnableCORS: false,
			UserHeader: api.DefaultUserHeader,
			Queries: queriesConfig{
				AccountCPUUsage: "sum(rate(slurm_job_core_usage_total{%s}[5m])) / 1000",
				AccountGPUUsage: "sum(slurm_job_gpu_usage{%s})",
				ProjectUsage:    "sum by (instance_name) (rate(libvirt_domain_info_cpu_time_seconds_total{%s}[5m]))",
			},
		},
		LDAP: cmd.LDAPConfig{
			URL:              "ldap://localhost:389",
			Timeout:          "10s",
			UserBaseDN:       "ou=People,dc=computecanada,dc=ca",
			AllocationBaseDN: "ou=Group,dc=computecanada,dc=ca",
			GroupBaseDN:      "ou=Group,dc=computecanada,dc=ca",
			CacheTTL:         "5m",
		},
		Prometheus: cmd.PrometheusConfig{
			URL:         "http://localhost:9090",
			Timeout:     "30s",
			DefaultStep: "3m",
			Retries: cmd.RetriesConfig{
				InitialInterval:     "500ms",
				RandomizationFactor: 0.5,
				Multiplier:          1.5,
				MaxInterval:         "5s",
				MaxRetriesCount:     3,
			},
		},
		Telemetry: cmd.TelemetryConfig{
			Listen: ":8091",
			Pprof:  cmd.ProfilerConfig{Enabled: false},
			Prometheus: cmd.PrometheusTelemetryConfig{
				Enabled:     true,
				MetricsPath: "/metrics",
			},
		},
	}
}
