package store

import (
	"github.com/dokanlabs/dokan-hisab/internal/config"
	"github.com/dokanlabs/dokan-hisab/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [LocalStore]; additional repositories can be added here as the feature set
// grows.
type ClientStorages struct {
	// LocalStore is the SQLite-backed cache and pending-mutation queue for
	// ledger records stored locally on the client device.
	LocalStore LocalStore
}

// NewClientStorages initialises the client storage layer. The underlying
// SQLite file is opened lazily on the first store operation, so this
// constructor never touches the disk.
func NewClientStorages(cfg config.ClientStorage, ownerScope string, logger *logger.Logger) *ClientStorages {
	logger.Info().Msg("creating new storages...")

	return &ClientStorages{
		LocalStore: NewLocalStore(cfg, ownerScope, logger),
	}
}
