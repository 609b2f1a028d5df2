// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Development defaults applied by [StructuredConfig.validate] for fields left
// unset by every configuration source. The "dev" sign key exists only so the
// application can start without any configuration; production deployments
// must override it.
const (
	defaultHTTPAddress     = "localhost:8080"
	defaultDriver          = "sqlite3"
	defaultDSN             = "go-micro-blog.sqlite"
	defaultSessionSignKey  = "dev"
	defaultSessionIssuer   = "go-micro-blog"
	defaultSessionDuration = 24 * time.Hour
	defaultRequestTimeout  = 30 * time.Second
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, applying development
// defaults for unset fields.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDriver
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrUnsupportedDriver
	}

	if cfg.Auth.SessionSignKey == "" {
		cfg.Auth.SessionSignKey = defaultSessionSignKey
	}
	if cfg.Auth.SessionIssuer == "" {
		cfg.Auth.SessionIssuer = defaultSessionIssuer
	}
	if cfg.Auth.SessionDuration == 0 {
		cfg.Auth.SessionDuration = defaultSessionDuration
	}
	if cfg.Auth.BcryptCost < 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
