package models

import "time"

// ConnectivityState is the monitor's synchronous view of device connectivity.
// LastOnlineAt is the time of the most recent transition to online; it is the
// zero value until the first such transition is observed.
type ConnectivityState struct {
	IsOnline     bool      `json:"is_online"`
	LastOnlineAt time.Time `json:"last_online_at"`
}

// SyncStatus summarizes the sync engine's current activity for display:
// whether a run is in flight, how many mutations still await the remote
// store, and which mutations errored in the most recent run.
type SyncStatus struct {
	IsOnline            bool      `json:"is_online"`
	LastOnlineAt        time.Time `json:"last_online_at"`
	IsSyncing           bool      `json:"is_syncing"`
	PendingCount        int       `json:"pending_count"`
	LastSyncCompletedAt time.Time `json:"last_sync_completed_at"`
	FailedMutationIDs   []string  `json:"failed_mutation_ids,omitempty"`
}
