// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	// the verifier hashes the password even with authentication disabled
	if n := len(cfg.App.AdminPassword); n > MaxAdminPasswordBytes {
		return fmt.Errorf("%w: admin password is %d bytes long, at most %d bytes are supported",
			ErrInvalidAppConfigs, n, MaxAdminPasswordBytes)
	}

	if cfg.App.AuthDisabled {
		return nil
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required when authentication is enabled", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.AdminLogin == "" || cfg.App.AdminPassword == "" {
		return fmt.Errorf("%w: admin login and password must be set", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
