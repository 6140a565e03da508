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

// Package config types define the configuration structures used throughout
// bitbucket-relay. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for bitbucket-relay.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	Bitbucket BitbucketConfig `yaml:"bitbucket"`
	Defaults  DefaultsConfig  `yaml:"defaults"`
}

// BitbucketConfig contains Bitbucket-specific settings. The API endpoint
// can be overridden for Bitbucket-compatible hosts or for testing against
// a local server.
type BitbucketConfig struct {
	APIEndpoint string `yaml:"api_endpoint"`
}

// DefaultsConfig contains default settings that apply to all export
// operations unless overridden by command-line flags.
type DefaultsConfig struct {
	// PageLen is the page size requested on the first request. Subsequent
	// pages use whatever the server-issued next URL encodes.
	PageLen int `yaml:"pagelen"`
}

// maxPageLen is the largest page size Bitbucket Cloud accepts for the
// pull requests endpoint.
const maxPageLen = 50

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. These defaults target Bitbucket Cloud but can be overridden
// for compatible hosts.
func DefaultConfig() *Config {
	return &Config{
		Bitbucket: BitbucketConfig{
			APIEndpoint: "https://api.bitbucket.org/2.0",
		},
		Defaults: DefaultsConfig{
			PageLen: 50,
		},
	}
}
