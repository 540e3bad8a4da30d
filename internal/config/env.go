// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig lists the configuration types that can be read from the
// environment.
type envConfig interface {
	StructuredConfig | ClientConfig
}

// parseEnv reads the environment layer into a new T. Variables are matched
// through the `env` and `envPrefix` tags of T, so unset variables leave zero
// values that the merge step skips.
func parseEnv[T envConfig]() (*T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
