// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// platformEnv holds variables set by hosting platforms rather than by the
// operator.
type platformEnv struct {
	// Port is honored when SERVER_ADDRESS is not set.
	Port string `env:"PORT"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	platform, err := env.ParseAs[platformEnv]()
	if err != nil {
		return fmt.Errorf("error getting platform env configs: %w", err)
	}
	if cfg.Server.HTTPAddress == "" && platform.Port != "" {
		cfg.Server.HTTPAddress = ":" + platform.Port
	}

	return nil
}
