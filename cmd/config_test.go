package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/userportal/userportal/database/ldap"
	"github.com/userportal/userportal/metric_source/prometheus"
	"github.com/userportal/userportal/metric_source/retries"
)

func TestLDAPConfig(t *testing.T) {
	Convey("Test LDAPConfig.GetSettings", t, func() {
		Convey("With empty config", func() {
			ldapCfg := LDAPConfig{}

			expected := &ldap.Config{Attributes: ldap.DefaultAttributes()}
			So(ldapCfg.GetSettings(), ShouldResemble, expected)
			So(ldapCfg.GetCacheTTL(), ShouldEqual, 0)
		})

		Convey("With filled config", func() {
			ldapCfg := LDAPConfig{
				URL:              "ldaps://ldap.example.org",
				BindDN:           "cn=portal,ou=services,dc=example,dc=org",
				BindPassword:     "secret",
				StartTLS:         true,
				Timeout:          "10s",
				UserBaseDN:       "ou=people,dc=example,dc=org",
				AllocationBaseDN: "ou=allocations,dc=example,dc=org",
				GroupBaseDN:      "ou=groups,dc=example,dc=org",
				CacheTTL:         "5m",
				Attributes: LDAPAttributesConfig{
					AllocationStatus: "status",
					GroupMembers:     "member",
				},
			}

			attributes := ldap.DefaultAttributes()
			attributes.AllocationStatus = "status"
			attributes.GroupMembers = "member"
			expected := &ldap.Config{
				URL:              "ldaps://ldap.example.org",
				BindDN:           "cn=portal,ou=services,dc=example,dc=org",
				BindPassword:     "secret",
				StartTLS:         true,
				Timeout:          10 * time.Second,
				UserBaseDN:       "ou=people,dc=example,dc=org",
				AllocationBaseDN: "ou=allocations,dc=example,dc=org",
				GroupBaseDN:      "ou=groups,dc=example,dc=org",
				Attributes:       attributes,
			}
			So(ldapCfg.GetSettings(), ShouldResemble, expected)
			So(ldapCfg.GetCacheTTL(), ShouldEqual, 5*time.Minute)
		})
	})
}

func TestPrometheusConfig(t *testing.T) {
	Convey("Test PrometheusConfig.GetPrometheusSourceSettings", t, func() {
		promCfg := PrometheusConfig{
			URL:         "http://prometheus:9090",
			Headers:     map[string]string{"X-Scope-OrgID": "narval"},
			Filter:      `cluster="narval"`,
			Timeout:     "30s",
			DefaultStep: "5m",
			Retries: RetriesConfig{
				InitialInterval:     "1s",
				RandomizationFactor: 0.5,
				Multiplier:          1.5,
				MaxInterval:         "10s",
				MaxRetriesCount:     3,
			},
		}

		expected := &prometheus.Config{
			URL:         "http://prometheus:9090",
			Headers:     map[string]string{"X-Scope-OrgID": "narval"},
			Filter:      `cluster="narval"`,
			Timeout:     30 * time.Second,
			DefaultStep: 5 * time.Minute,
			Retries: retries.Config{
				InitialInterval:     time.Second,
				RandomizationFactor: 0.5,
				Multiplier:          1.5,
				MaxInterval:         10 * time.Second,
				MaxRetriesCount:     3,
			},
		}
		So(promCfg.GetPrometheusSourceSettings(), ShouldResemble, expected)
	})
}

func TestReadConfig(t *testing.T) {
	Convey("Test ReadConfig", t, func() {
		type testConfig struct {
			Logger LoggerConfig `yaml:"log"`
		}

		Convey("Missing file", func() {
			config := testConfig{}
			err := ReadConfig(filepath.Join(t.TempDir(), "missing.yml"), &config)
			So(err, ShouldNotBeNil)
		})

		Convey("Valid file", func() {
			fileName := filepath.Join(t.TempDir(), "api.yml")
			So(os.WriteFile(fileName, []byte("log:\n  log_level: debug\n"), 0600), ShouldBeNil)

			config := testConfig{Logger: LoggerConfig{LogFile: "stdout", LogLevel: "info"}}
			So(ReadConfig(fileName, &config), ShouldBeNil)
			So(config.Logger, ShouldResemble, LoggerConfig{LogFile: "stdout", LogLevel: "debug"})
		})

		Convey("Malformed file", func() {
			fileName := filepath.Join(t.TempDir(), "api.yml")
			So(os.WriteFile(fileName, []byte("log: [\n"), 0600), ShouldBeNil)

			config := testConfig{}
			So(ReadConfig(fileName, &config), ShouldNotBeNil)
		})
	})
}
