// Copyright 2026 Prdump Authors
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

// Package config provides configuration management for prdump with support
// for multiple configuration sources and a well-defined precedence order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations. It's designed to work
// with GitHub Enterprise deployments through a custom API endpoint and host.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ValidStates are the pull request states accepted by search mode.
var ValidStates = []string{"open", "closed", "merged"}

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .prdump.yaml (current directory)
//   - .prdump.yml (current directory)
//   - ~/.prdump/config.yaml
//   - ~/.prdump/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Try to load config file if path is provided
	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".prdump.yaml",
			".prdump.yml",
			filepath.Join(os.Getenv("HOME"), ".prdump", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".prdump", "config.yml"),
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

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

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
	// GitHub endpoint and host
	if endpoint := os.Getenv("GITHUB_API_ENDPOINT"); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}
	if host := os.Getenv("GITHUB_HOST"); host != "" {
		cfg.GitHub.Host = host
	}

	// Defaults
	if author := os.Getenv("PRDUMP_AUTHOR"); author != "" {
		cfg.Defaults.Author = author
	}
	if pageSize := os.Getenv("PRDUMP_PAGE_SIZE"); pageSize != "" {
		if size, err := parsePositiveInt(pageSize); err == nil {
			cfg.Defaults.PageSize = size
		}
	}
	if workers := os.Getenv("PRDUMP_ENRICH_WORKERS"); workers != "" {
		if n, err := parsePositiveInt(workers); err == nil {
			cfg.Defaults.EnrichWorkers = n
		}
	}

	// Retry and rate limit settings
	if retry := os.Getenv("PRDUMP_RETRY"); retry != "" {
		cfg.Retry.Enabled = parseBool(retry)
	}
	if autoWait := os.Getenv("PRDUMP_RATE_LIMIT_AUTO_WAIT"); autoWait != "" {
		cfg.RateLimit.AutoWait = parseBool(autoWait)
	}
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// IsValidState reports whether s is a recognized pull request state.
func IsValidState(s string) bool {
	for _, state := range ValidStates {
		if s == state {
			return true
		}
	}
	return false
}

// Validate checks if the configuration contains valid values. It ensures
// page sizes are within GitHub's limits, the endpoint is not empty, and
// other constraints are met. This should be called after loading
// configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Defaults.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got: %d", c.Defaults.PageSize)
	}
	if c.Defaults.PageSize > 100 {
		return fmt.Errorf("page size %d exceeds GitHub API limit of 100", c.Defaults.PageSize)
	}
	if c.Defaults.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got: %d", c.Defaults.Limit)
	}
	if c.Defaults.EnrichWorkers <= 0 {
		return fmt.Errorf("enrich workers must be positive, got: %d", c.Defaults.EnrichWorkers)
	}
	if !IsValidState(c.Defaults.State) {
		return fmt.Errorf("invalid state %q: must be one of %s", c.Defaults.State, strings.Join(ValidStates, ", "))
	}
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("GitHub API endpoint cannot be empty")
	}
	if c.GitHub.Host == "" {
		return fmt.Errorf("GitHub host cannot be empty")
	}
	if c.Retry.Enabled {
		if c.Retry.MaxRetries <= 0 {
			return fmt.Errorf("max retries must be positive when retry is enabled, got: %d", c.Retry.MaxRetries)
		}
		if _, _, err := c.RetryBackoff(); err != nil {
			return err
		}
	}
	return nil
}

// RetryBackoff parses the configured backoff bounds. Empty values fall back
// to the defaults (1s initial, 30s maximum).
func (c *Config) RetryBackoff() (initial, max time.Duration, err error) {
	initial, max = time.Second, 30*time.Second

	if c.Retry.InitialBackoff != "" {
		initial, err = time.ParseDuration(c.Retry.InitialBackoff)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid initial_backoff %q: %w", c.Retry.InitialBackoff, err)
		}
	}
	if c.Retry.MaxBackoff != "" {
		max, err = time.ParseDuration(c.Retry.MaxBackoff)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid max_backoff %q: %w", c.Retry.MaxBackoff, err)
		}
	}
	if initial <= 0 || max <= 0 || max < initial {
		return 0, 0, fmt.Errorf("invalid backoff bounds: initial %v, max %v", initial, max)
	}
	return initial, max, nil
}
