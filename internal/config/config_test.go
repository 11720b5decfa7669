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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GitHub.APIEndpoint != "https://api.github.com" {
		t.Errorf("APIEndpoint = %q, want https://api.github.com", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.Host != "github.com" {
		t.Errorf("Host = %q, want github.com", cfg.GitHub.Host)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("TokenEnv = %q, want GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	}
	if cfg.Defaults.State != "open" {
		t.Errorf("State = %q, want open", cfg.Defaults.State)
	}
	if cfg.Defaults.Limit != 100 {
		t.Errorf("Limit = %d, want 100", cfg.Defaults.Limit)
	}
	if cfg.Defaults.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", cfg.Defaults.PageSize)
	}
	if cfg.Retry.Enabled {
		t.Error("Retry.Enabled = true, want false by default")
	}
	if cfg.RateLimit.AutoWait {
		t.Error("RateLimit.AutoWait = true, want false by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig failed validation: %v", err)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
github:
  api_endpoint: https://github.example.com/api/v3
  host: github.example.com
  token_env: GHE_TOKEN
defaults:
  author: circleci-app[bot]
  state: closed
  limit: 25
  page_size: 50
  enrich_workers: 2
retry:
  enabled: true
  max_retries: 5
rate_limit:
  auto_wait: true
`
	if err := os.WriteFile(configPath, []byte(strings.TrimSpace(configContent)), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GitHub.APIEndpoint != "https://github.example.com/api/v3" {
		t.Errorf("APIEndpoint = %q", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.Host != "github.example.com" {
		t.Errorf("Host = %q", cfg.GitHub.Host)
	}
	if cfg.GitHub.TokenEnv != "GHE_TOKEN" {
		t.Errorf("TokenEnv = %q", cfg.GitHub.TokenEnv)
	}
	if cfg.Defaults.Author != "circleci-app[bot]" {
		t.Errorf("Author = %q", cfg.Defaults.Author)
	}
	if cfg.Defaults.State != "closed" {
		t.Errorf("State = %q", cfg.Defaults.State)
	}
	if cfg.Defaults.Limit != 25 {
		t.Errorf("Limit = %d", cfg.Defaults.Limit)
	}
	if cfg.Defaults.PageSize != 50 {
		t.Errorf("PageSize = %d", cfg.Defaults.PageSize)
	}
	if cfg.Defaults.EnrichWorkers != 2 {
		t.Errorf("EnrichWorkers = %d", cfg.Defaults.EnrichWorkers)
	}
	if !cfg.Retry.Enabled || cfg.Retry.MaxRetries != 5 {
		t.Errorf("Retry = %+v", cfg.Retry)
	}
	if !cfg.RateLimit.AutoWait {
		t.Error("AutoWait = false, want true")
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only override one field; everything else keeps its default.
	if err := os.WriteFile(configPath, []byte("defaults:\n  author: renovate[bot]\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Defaults.Author != "renovate[bot]" {
		t.Errorf("Author = %q, want renovate[bot]", cfg.Defaults.Author)
	}
	if cfg.GitHub.APIEndpoint != "https://api.github.com" {
		t.Errorf("APIEndpoint = %q, want default", cfg.GitHub.APIEndpoint)
	}
	if cfg.Defaults.PageSize != 100 {
		t.Errorf("PageSize = %d, want default 100", cfg.Defaults.PageSize)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing explicit config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_API_ENDPOINT", "https://ghe.internal/api/v3")
	t.Setenv("PRDUMP_AUTHOR", "my-bot[bot]")
	t.Setenv("PRDUMP_PAGE_SIZE", "30")
	t.Setenv("PRDUMP_RETRY", "yes")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GitHub.APIEndpoint != "https://ghe.internal/api/v3" {
		t.Errorf("APIEndpoint = %q", cfg.GitHub.APIEndpoint)
	}
	if cfg.Defaults.Author != "my-bot[bot]" {
		t.Errorf("Author = %q", cfg.Defaults.Author)
	}
	if cfg.Defaults.PageSize != 30 {
		t.Errorf("PageSize = %d", cfg.Defaults.PageSize)
	}
	if !cfg.Retry.Enabled {
		t.Error("Retry.Enabled = false, want true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid default",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.Defaults.PageSize = 0 },
			wantErr: "page size",
		},
		{
			name:    "page size above limit",
			mutate:  func(c *Config) { c.Defaults.PageSize = 150 },
			wantErr: "exceeds GitHub API limit",
		},
		{
			name:    "non-positive limit",
			mutate:  func(c *Config) { c.Defaults.Limit = 0 },
			wantErr: "limit must be positive",
		},
		{
			name:    "invalid state",
			mutate:  func(c *Config) { c.Defaults.State = "draft" },
			wantErr: "invalid state",
		},
		{
			name:    "merged state is valid",
			mutate:  func(c *Config) { c.Defaults.State = "merged" },
			wantErr: "",
		},
		{
			name:    "empty endpoint",
			mutate:  func(c *Config) { c.GitHub.APIEndpoint = "" },
			wantErr: "endpoint cannot be empty",
		},
		{
			name:    "empty host",
			mutate:  func(c *Config) { c.GitHub.Host = "" },
			wantErr: "host cannot be empty",
		},
		{
			name:    "zero enrich workers",
			mutate:  func(c *Config) { c.Defaults.EnrichWorkers = 0 },
			wantErr: "enrich workers",
		},
		{
			name: "retry enabled without budget",
			mutate: func(c *Config) {
				c.Retry.Enabled = true
				c.Retry.MaxRetries = 0
			},
			wantErr: "max retries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRetryBackoff(t *testing.T) {
	cfg := DefaultConfig()
	initial, max, err := cfg.RetryBackoff()
	if err != nil {
		t.Fatalf("RetryBackoff failed: %v", err)
	}
	if initial != time.Second || max != 30*time.Second {
		t.Errorf("defaults = (%v, %v), want (1s, 30s)", initial, max)
	}

	cfg.Retry.InitialBackoff = "500ms"
	cfg.Retry.MaxBackoff = "2m"
	initial, max, err = cfg.RetryBackoff()
	if err != nil {
		t.Fatalf("RetryBackoff failed: %v", err)
	}
	if initial != 500*time.Millisecond || max != 2*time.Minute {
		t.Errorf("got (%v, %v), want (500ms, 2m)", initial, max)
	}

	cfg.Retry.InitialBackoff = "not-a-duration"
	if _, _, err := cfg.RetryBackoff(); err == nil {
		t.Error("expected error for unparseable initial_backoff")
	}

	cfg.Retry.InitialBackoff = "1m"
	cfg.Retry.MaxBackoff = "1s"
	if _, _, err := cfg.RetryBackoff(); err == nil {
		t.Error("expected error when max backoff is below initial")
	}
}
