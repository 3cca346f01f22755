// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// defaultHTTPAddress is used when no listen address was supplied by any
// configuration source.
const defaultHTTPAddress = "0.0.0.0:8080"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// An empty listen address is substituted with [defaultHTTPAddress]; a missing
// database DSN is a hard error since the service cannot run without a store.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
