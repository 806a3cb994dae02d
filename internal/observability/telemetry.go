package observability

import (
	"context"
	"errors"
	"strings"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/livematch/internal/config"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

// Shutdown flushes and stops whatever InitTelemetry started.
type Shutdown func(ctx context.Context) error

// InitTelemetry wires tracing through Uptrace and continuous profiling
// through Pyroscope. Either half may be disabled by configuration.
func InitTelemetry(cfg config.Config, logger *logging.Logger) (Shutdown, error) {
	if logger == nil {
		logger = logging.Default()
	}

	stopTracing := startTracing(cfg, logger)
	stopProfiling, err := startProfiling(cfg, logger)
	if err != nil {
		_ = stopTracing(context.Background())
		return nil, err
	}

	return func(ctx context.Context) error {
		return errors.Join(stopProfiling(), stopTracing(ctx))
	}, nil
}

func startTracing(cfg config.Config, logger *logging.Logger) func(context.Context) error {
	noop := func(context.Context) error { return nil }
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("tracing disabled", "reason", "UPTRACE_ENABLED=false")
		return noop
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Info("tracing disabled", "reason", "UPTRACE_DSN empty")
		return noop
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)
	logger.Info("tracing enabled", "service_name", cfg.ServiceName, "environment", cfg.AppEnv)
	return uptrace.Shutdown
}

var trackerProfiles = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
	pyroscope.ProfileMutexDuration,
}

func startProfiling(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if !cfg.PyroscopeEnabled {
		logger.Info("profiling disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":     cfg.AppEnv,
			"service": cfg.ServiceName,
			"version": cfg.ServiceVersion,
		},
		ProfileTypes: trackerProfiles,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("profiling enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)
	return profiler.Stop, nil
}
