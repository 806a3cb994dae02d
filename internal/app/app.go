package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/livematch/external/apifootball"
	"github.com/riskibarqy/livematch/external/feedfile"
	"github.com/riskibarqy/livematch/internal/config"
	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/riskibarqy/livematch/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/livematch/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/livematch/internal/observability"
	idgen "github.com/riskibarqy/livematch/internal/platform/id"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/riskibarqy/livematch/internal/platform/resilience"
	"github.com/riskibarqy/livematch/internal/usecase"
)

// Services is the reconciliation surface shared by the CLI commands.
type Services struct {
	Live    *usecase.LiveMatchService
	Lineups *usecase.LineupService
}

// Runtime owns every long-lived dependency of the process.
type Runtime struct {
	Config   config.Config
	Logger   *logging.Logger
	DB       *sqlx.DB
	Metrics  *observability.ReconcileMetrics
	Services Services
}

func NewRuntime(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	metrics := observability.NewReconcileMetrics()
	catalogRepo := cache.NewCatalogRepository(postgres.NewCatalogRepository(db), cfg.CatalogCacheTTL)
	services := NewServices(postgres.NewStore(db), catalogRepo, cfg, metrics, logger)

	return &Runtime{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Metrics:  metrics,
		Services: services,
	}, nil
}

// NewServices builds the live services over any transactor and catalog.
// Both services share one per-fixture lock set so lineup caching and
// reconciliation of the same fixture never interleave.
func NewServices(
	tx usecase.Transactor,
	catalogRepo catalog.Repository,
	cfg config.Config,
	recorder usecase.PassRecorder,
	logger *logging.Logger,
) Services {
	locks := &resilience.KeyedMutex{}
	ids := idgen.NewUUIDGenerator()

	return Services{
		Live: usecase.NewLiveMatchService(tx, catalogRepo, ids, locks, recorder, logger.Named("live"), usecase.LiveMatchConfig{
			CreateEventOnlyParticipants: cfg.CreateEventOnlyPlayers,
		}),
		Lineups: usecase.NewLineupService(tx, catalogRepo, ids, locks, logger.Named("lineups")),
	}
}

// NewSnapshotSource picks the live HTTP feed or the recorded replay.
func NewSnapshotSource(cfg config.Config, logger *logging.Logger) usecase.SnapshotSource {
	if cfg.FeedSource == config.FeedSourceHTTP {
		breaker := resilience.DefaultCircuitBreakerConfig()
		breaker.Enabled = cfg.FeedCircuitEnabled
		return apifootball.NewClient(apifootball.ClientConfig{
			BaseURL:        cfg.FeedBaseURL,
			APIKey:         cfg.FeedAPIKey,
			Timeout:        cfg.FeedTimeout,
			MaxRetries:     cfg.FeedMaxRetries,
			Logger:         logger.Named("feed"),
			CircuitBreaker: breaker,
		})
	}
	return feedfile.NewSource(cfg.FeedReplayDir, logger.Named("replay"))
}

func (r *Runtime) NewTracker(source usecase.SnapshotSource) (*usecase.LiveTracker, error) {
	return usecase.NewLiveTracker(source, r.Services.Live, r.Services.Lineups, usecase.LiveTrackerConfig{
		PollInterval: r.Config.LivePollInterval,
		PoolSize:     r.Config.LiveWorkerPoolSize,
		RatePerSec:   r.Config.LiveFeedRatePerSec,
		Burst:        r.Config.LiveFeedBurst,
	}, r.Logger.Named("tracker"))
}

func (r *Runtime) NewOpsServer() *observability.OpsServer {
	return observability.NewOpsServer(r.Config.OpsAddr, r.Metrics, r.Logger.Named("ops"))
}

func (r *Runtime) Close() error {
	if r.DB == nil {
		return nil
	}
	return r.DB.Close()
}
