package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dokanlabs/dokan-hisab/internal/adapter"
	"github.com/dokanlabs/dokan-hisab/internal/config"
	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/internal/netmon"
	"github.com/dokanlabs/dokan-hisab/internal/service"
	"github.com/dokanlabs/dokan-hisab/internal/store"
	"github.com/dokanlabs/dokan-hisab/internal/workers"
	"github.com/dokanlabs/dokan-hisab/models"
)

// App is the client sync agent. It owns the SQLite-backed local store, the
// HTTP adapter to the remote ledger, the connectivity monitor, and the
// background sync job, and runs them until the process is signalled to stop.
type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	monitor  *netmon.Monitor
	services *service.Services
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages := store.NewClientStorages(cfg.Storage, cfg.OwnerScope, logger)

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, cfg.OwnerScope, logger)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	prober := netmon.NewProber(remote, cfg.Sync.ProbeInterval, logger)
	monitor := netmon.NewMonitor(prober, logger)
	services := service.NewServices(storages.LocalStore, remote, monitor, cfg, logger)

	return &App{
		cfg:      cfg,
		storages: storages,
		monitor:  monitor,
		services: services,
		// producers before consumers: probe results feed the monitor, whose
		// transitions feed the job
		workers: workers.NewWorkers(prober, monitor, services.Job),
		logger:  logger,
	}, nil
}

// Run starts the agent and blocks until a termination signal arrives. All
// background loops share one signal-bound context.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	// Warm the cache while the server is reachable so the shop can keep
	// working from local data once the connection drops.
	if a.monitor.CurrentState().IsOnline {
		for _, recordType := range models.RecordTypes {
			if err := a.services.Engine.PullSnapshot(ctx, recordType); err != nil {
				a.logger.Warn().Err(err).
					Str("func", "App.Run").
					Str("record_type", string(recordType)).
					Msg("initial snapshot pull failed")
			}
		}
	}

	// Drain anything queued from previous offline sessions right away.
	if err := a.services.Engine.RunSync(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("startup sync run failed")
	}

	<-ctx.Done()
	a.logger.Info().Msg("sync agent Shutdown gracefully")

	return a.storages.LocalStore.Close()
}
