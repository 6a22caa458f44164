package config

import (
	"fmt"
	"time"
)

// Default client-side timings applied when the merged config leaves the
// corresponding fields unset.
const (
	defaultRequestTimeout = 15 * time.Second
	defaultSyncInterval   = 5 * time.Minute
	defaultOnlineDebounce = 2 * time.Second
	defaultProbeInterval  = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the remote ledger API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the client's local cache database settings.
type ClientStorage struct {
	// Path is the SQLite database file for cached records and the
	// pending-mutation queue.
	Path string
}

// ClientSync holds background synchronization timings for the client agent.
type ClientSync struct {
	// Interval is the recurring safety-net interval between sync runs.
	Interval time.Duration
	// OnlineDebounce delays the reconnect-triggered sync run.
	OnlineDebounce time.Duration
	// ProbeInterval is how often connectivity is probed.
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains local cache settings.
	Storage ClientStorage
	// Sync contains background sync timings.
	Sync ClientSync
	// OwnerScope is the shop identifier partitioning all ledger records.
	OwnerScope string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the sync agent, fills in default timings, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Path: cfg.Storage.Local.Path,
		},
		Sync: ClientSync{
			Interval:       cfg.Sync.Interval,
			OnlineDebounce: cfg.Sync.OnlineDebounce,
			ProbeInterval:  cfg.Sync.ProbeInterval,
		},
		OwnerScope: cfg.Client.OwnerScope,
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = defaultSyncInterval
	}
	if cfg.Sync.OnlineDebounce <= 0 {
		cfg.Sync.OnlineDebounce = defaultOnlineDebounce
	}
	if cfg.Sync.ProbeInterval <= 0 {
		cfg.Sync.ProbeInterval = defaultProbeInterval
	}
}
