package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev/1'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_LiveDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LivePollInterval != 15*time.Second {
		t.Fatalf("unexpected LivePollInterval: %s", cfg.LivePollInterval)
	}
	if cfg.LiveWorkerPoolSize != 8 {
		t.Fatalf("unexpected LiveWorkerPoolSize: %d", cfg.LiveWorkerPoolSize)
	}
	if cfg.CreateEventOnlyPlayers {
		t.Fatalf("expected event-only participant creation to be off by default")
	}
	if cfg.CatalogCacheTTL != 10*time.Minute {
		t.Fatalf("unexpected CatalogCacheTTL: %s", cfg.CatalogCacheTTL)
	}
	if cfg.OpsAddr != ":9090" {
		t.Fatalf("unexpected OpsAddr: %q", cfg.OpsAddr)
	}
	if cfg.PyroscopeAppName != cfg.ServiceName {
		t.Fatalf("expected PyroscopeAppName to default to service name, got %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_LiveOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("LIVE_POLL_INTERVAL", "30s")
	t.Setenv("LIVE_WORKER_POOL_SIZE", "3")
	t.Setenv("LIVE_FEED_RATE_PER_SEC", "0.5")
	t.Setenv("LIVE_FEED_BURST", "2")
	t.Setenv("LIVE_CREATE_EVENT_ONLY_PARTICIPANTS", "true")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LivePollInterval != 30*time.Second || cfg.LiveWorkerPoolSize != 3 {
		t.Fatalf("unexpected live settings: %s %d", cfg.LivePollInterval, cfg.LiveWorkerPoolSize)
	}
	if cfg.LiveFeedRatePerSec != 0.5 || cfg.LiveFeedBurst != 2 {
		t.Fatalf("unexpected feed quota: %v %d", cfg.LiveFeedRatePerSec, cfg.LiveFeedBurst)
	}
	if !cfg.CreateEventOnlyPlayers {
		t.Fatalf("expected event-only participant creation to be on")
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
}

func TestLoad_RejectsInvalidLiveValues(t *testing.T) {
	cases := map[string]string{
		"LIVE_POLL_INTERVAL":     "0s",
		"LIVE_WORKER_POOL_SIZE":  "0",
		"LIVE_FEED_BURST":        "-1",
		"LIVE_FEED_RATE_PER_SEC": "fast",
		"DB_MAX_OPEN_CONNS":      "none",
		"LIVE_CATALOG_CACHE_TTL": "-1m",
		"FEED_SOURCE":            "carrier-pigeon",
		"FEED_MAX_RETRIES":       "-1",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_PyroscopeRequiresServerWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_HTTPFeedRequiresAPIKey(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FEED_SOURCE", "http")
	t.Setenv("FEED_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when FEED_API_KEY is missing")
	}

	t.Setenv("FEED_API_KEY", "key")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FeedSource != FeedSourceHTTP || cfg.FeedTimeout != 10*time.Second || !cfg.FeedCircuitEnabled {
		t.Fatalf("unexpected feed settings: %+v", cfg)
	}
}
