package cmd

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	logging "github.com/userportal/userportal/logging/zerolog_adapter"
	"github.com/userportal/userportal/metrics"
)

func TestConfigureTelemetry(t *testing.T) {
	logger, _ := logging.GetLogger("telemetry")

	Convey("Test ConfigureTelemetry", t, func() {
		Convey("Without pprof and prometheus no listener is started", func() {
			config := TelemetryConfig{Listen: "256.0.0.1:bad"}

			telemetry, err := ConfigureTelemetry(logger, config, "api")
			So(err, ShouldBeNil)
			So(telemetry.Metrics, ShouldHaveSameTypeAs, &metrics.DummyRegistry{})
			telemetry.Stop()
		})

		Convey("Pprof only uses dummy registry", func() {
			config := TelemetryConfig{
				Listen: "127.0.0.1:0",
				Pprof:  ProfilerConfig{Enabled: true},
			}

			telemetry, err := ConfigureTelemetry(logger, config, "api")
			So(err, ShouldBeNil)
			So(telemetry.Metrics, ShouldHaveSameTypeAs, &metrics.DummyRegistry{})
			telemetry.Stop()
		})

		Convey("Unbindable listen address", func() {
			config := TelemetryConfig{
				Listen:     "256.0.0.1:bad",
				Prometheus: PrometheusTelemetryConfig{Enabled: true},
			}

			telemetry, err := ConfigureTelemetry(logger, config, "api")
			So(err, ShouldNotBeNil)
			So(telemetry, ShouldBeNil)
		})
	})
}
