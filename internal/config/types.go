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

// Package config types define the configuration structures used throughout
// prdump. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for prdump. It consolidates
// settings from various sources and provides a unified interface for
// accessing configuration values throughout the application.
type Config struct {
	GitHub    GitHubConfig    `yaml:"github"`
	Defaults  DefaultsConfig  `yaml:"defaults"`
	Retry     RetryConfig     `yaml:"retry"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// GitHubConfig contains GitHub-specific settings including the API endpoint
// and authentication configuration. This allows easy configuration for
// GitHub Enterprise deployments by specifying a custom endpoint and the
// matching web host used to validate pull request URLs.
type GitHubConfig struct {
	APIEndpoint string `yaml:"api_endpoint"`
	Host        string `yaml:"host"`
	TokenEnv    string `yaml:"token_env"`
}

// DefaultsConfig contains default settings for the export pipeline unless
// overridden by command-line flags.
type DefaultsConfig struct {
	// Author is the search-mode author filter.
	Author string `yaml:"author"`
	// State is the search-mode pull request state: open, closed, or merged.
	State string `yaml:"state"`
	// Limit is the maximum number of pull requests returned by search mode.
	Limit int `yaml:"limit"`
	// PageSize is the per-page size for paginated API calls (1-100).
	PageSize int `yaml:"page_size"`
	// EnrichWorkers bounds the number of concurrent per-comment reaction
	// fetches. 1 makes enrichment fully sequential. Output order is
	// preserved regardless of the worker count.
	EnrichWorkers int `yaml:"enrich_workers"`
}

// RetryConfig controls whether failed API calls are retried. The tool is
// fail-fast out of the box; retrying is an explicit policy decision made in
// configuration, never hardcoded behavior.
type RetryConfig struct {
	Enabled    bool `yaml:"enabled"`
	MaxRetries int  `yaml:"max_retries"`
	// InitialBackoff and MaxBackoff are Go duration strings ("1s", "30s").
	InitialBackoff string `yaml:"initial_backoff"`
	MaxBackoff     string `yaml:"max_backoff"`
}

// RateLimitConfig controls rate limit handling when interacting with the
// GitHub API. When AutoWait is enabled the HTTP transport sleeps through
// secondary rate limits instead of surfacing them as errors.
type RateLimitConfig struct {
	AutoWait bool `yaml:"auto_wait"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. These defaults are optimized for public GitHub.com usage but
// can be overridden for GitHub Enterprise or special requirements.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint: "https://api.github.com",
			Host:        "github.com",
			TokenEnv:    "GITHUB_TOKEN",
		},
		Defaults: DefaultsConfig{
			Author:        "dependabot[bot]",
			State:         "open",
			Limit:         100,
			PageSize:      100,
			EnrichWorkers: 4,
		},
		Retry: RetryConfig{
			Enabled:        false,
			MaxRetries:     3,
			InitialBackoff: "1s",
			MaxBackoff:     "30s",
		},
		RateLimit: RateLimitConfig{
			AutoWait: false,
		},
	}
}
