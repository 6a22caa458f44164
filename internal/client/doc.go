// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dokan Labs

// Package client implements the sync agent runtime.
//
// It wires the local durable store, the remote HTTP adapter, the network
// monitor, and the background sync job into a single process lifecycle.
package client
