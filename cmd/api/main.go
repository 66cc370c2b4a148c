package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/userportal/userportal"
	"github.com/userportal/userportal/api"
	"github.com/userportal/userportal/api/handler"
	"github.com/userportal/userportal/cmd"
	logging "github.com/userportal/userportal/logging/zerolog_adapter"
	"github.com/userportal/userportal/metrics"
)

const serviceName = "api"

var (
	configFileName         = flag.String("config", "/etc/userportal/api.yml", "Path to configuration file")
	printVersion           = flag.Bool("version", false, "Print version and exit")
	printDefaultConfigFlag = flag.Bool("default-config", false, "Print default config and exit")
)

// Userportal api bin version
var (
	UserportalVersion = "unknown"
	GitCommit         = "unknown"
	GoVersion         = "unknown"
)

func main() {
	flag.Parse()
	if *printVersion {
		fmt.Println("Userportal Api")
		fmt.Println("Version:", UserportalVersion)
		fmt.Println("Git Commit:", GitCommit)
		fmt.Println("Go Version:", GoVersion)
		os.Exit(0)
	}

	applicationConfig := getDefault()
	if *printDefaultConfigFlag {
		cmd.PrintConfig(applicationConfig)
		os.Exit(0)
	}

	err := cmd.ReadConfig(*configFileName, &applicationConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can not read settings: %s\n", err.Error())
		os.Exit(1)
	}

	apiConfig := applicationConfig.API.getSettings()

	logger, err := logging.ConfigureLog(
		applicationConfig.Logger.LogFile,
		applicationConfig.Logger.LogLevel,
		serviceName,
		applicationConfig.Logger.LogPrettyFormat,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can not configure log: %s\n", err.Error())
		os.Exit(1)
	}

	telemetry, err := cmd.ConfigureTelemetry(logger, applicationConfig.Telemetry, serviceName)
	if err != nil {
		logger.Fatal().
			Error(err).
			Msg("Can not configure telemetry")
	}
	defer telemetry.Stop()

	directory, err := cmd.InitDirectory(applicationConfig.LDAP, logger, telemetry.Metrics)
	if err != nil {
		logger.Fatal().
			Error(err).
			Msg("Can not configure directory")
	}

	metricSource, err := cmd.InitMetricSource(applicationConfig.Prometheus, logger, telemetry.Metrics)
	if err != nil {
		logger.Fatal().
			Error(err).
			Msg("Can not configure metric source")
	}

	listener, err := net.Listen("tcp", apiConfig.Listen)
	if err != nil {
		logger.Fatal().
			Error(err).
			Msg("Failed to start listening")
	}

	logger.Info().
		String("listen_address", apiConfig.Listen).
		Msg("Start listening")

	authMetrics := metrics.ConfigureAuthorizationMetrics(telemetry.Metrics, api.Policies...)
	httpHandler := handler.NewHandler(directory, metricSource, logger, apiConfig, authMetrics)
	server := &http.Server{
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		server.Serve(listener) //nolint
	}()
	defer Stop(logger, server)

	logger.Info().
		String("version", UserportalVersion).
		Msg("Userportal Api Started")

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	received := fmt.Sprint(<-ch)
	logger.Info().
		String("signal", received).
		Msg("Userportal API shutting down.")
}

// Stop Userportal API HTTP server
func Stop(logger userportal.Logger, server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().
			Error(err).
			Msg("Can't stop Userportal API correctly")
	}
	logger.Info().
		String("version", UserportalVersion).
		Msg("Userportal API Stopped")
}
