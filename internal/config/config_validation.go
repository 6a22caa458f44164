// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dokan Labs

package config

// validate checks the merged [StructuredConfig] before it is used at startup.
//
// The shared config is intentionally permissive: the server and client each
// need a different subset of it, so the binding rules live in the role
// specific views ([GetServerConfig], [GetClientConfig]) instead.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.OwnerScope == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}
