// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dokan Labs

// Package config loads and merges dokan-hisab configuration from environment
// variables, command-line flags, and an optional JSON file.
//
// The merge order is environment, then flags, then JSON file, with the first
// non-zero value winning (dario.cat/mergo semantics). The merged
// [StructuredConfig] is then narrowed into a role-specific view:
// [GetServerConfig] for the HTTP API server, [GetClientConfig] for the
// offline-first sync agent. The views apply defaults and enforce the
// invariants their role actually needs, so the shared struct stays
// permissive.
package config
