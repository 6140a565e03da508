// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for bitbucket-relay with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file-based configuration.
const (
	apiEndpointEnvVar = "BITBUCKET_API_ENDPOINT"
	pageLenEnvVar     = "BITBUCKET_RELAY_PAGELEN"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .bitbucket-relay.yaml (current directory)
//   - .bitbucket-relay.yml (current directory)
//   - ~/.bitbucket-relay/config.yaml
//   - ~/.bitbucket-relay/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".bitbucket-relay.yaml",
			".bitbucket-relay.yml",
			filepath.Join(os.Getenv("HOME"), ".bitbucket-relay", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".bitbucket-relay", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv(apiEndpointEnvVar); endpoint != "" {
		cfg.Bitbucket.APIEndpoint = endpoint
	}

	if pageLen := os.Getenv(pageLenEnvVar); pageLen != "" {
		if n, err := strconv.Atoi(pageLen); err == nil && n > 0 {
			cfg.Defaults.PageLen = n
		}
	}
}

// Validate checks if the configuration contains valid values. It ensures
// the page length is within Bitbucket's limits and the endpoint is not
// empty. This should be called after loading configuration to catch
// invalid settings early.
func (c *Config) Validate() error {
	if c.Defaults.PageLen <= 0 {
		return fmt.Errorf("page length must be positive, got: %d", c.Defaults.PageLen)
	}
	if c.Defaults.PageLen > maxPageLen {
		return fmt.Errorf("page length %d exceeds Bitbucket API limit of %d", c.Defaults.PageLen, maxPageLen)
	}
	if c.Bitbucket.APIEndpoint == "" {
		return fmt.Errorf("bitbucket API endpoint cannot be empty")
	}
	return nil
}
