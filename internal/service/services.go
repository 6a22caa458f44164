package service

import (
	"github.com/dokanlabs/dokan-hisab/internal/adapter"
	"github.com/dokanlabs/dokan-hisab/internal/config"
	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/internal/netmon"
	"github.com/dokanlabs/dokan-hisab/internal/store"
	"github.com/dokanlabs/dokan-hisab/internal/utils"
)

// Services groups the client sync agent's service layer.
type Services struct {
	Engine SyncEngine
	Ledger Ledger
	Job    SyncJob
}

// NewServices wires the engine, facade, and background job over the local
// store, remote adapter, and network monitor.
func NewServices(localStore store.LocalStore, remote adapter.RemoteAccess, monitor *netmon.Monitor, cfg *config.ClientConfig, logger *logger.Logger) *Services {
	engine := NewSyncEngine(localStore, remote, monitor, logger)
	ledger := NewLedgerService(localStore, remote, monitor, utils.NewUUIDGenerator(), cfg.OwnerScope, logger)

	return &Services{
		Engine: engine,
		Ledger: ledger,
		Job:    NewSyncJob(engine, monitor, cfg.Sync, logger),
	}
}
