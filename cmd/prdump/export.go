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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prdump/prdump/internal/config"
	"github.com/prdump/prdump/internal/export"
	"github.com/prdump/prdump/internal/github"
	"github.com/prdump/prdump/internal/output"
)

// exportFlags holds the command-line flag values before they are merged
// with the configuration file.
type exportFlags struct {
	author               string
	state                string
	limit                int
	outputFile           string
	skipCommentReactions bool
	prURL                string
	token                string
	configFile           string
}

func newRootCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "prdump",
		Short: "Export enriched GitHub pull request data as JSON",
		Long: `Prdump exports GitHub pull requests together with their full discussion
context: issue comments, review comments, reviews, reactions, and commits.
Each pull request becomes one self-contained JSON record; the result is a
JSON array written to stdout or to a file.

By default prdump searches for open pull requests by author. Use --pr-url
to export a single pull request instead.

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.author, "author", "", "Search for pull requests by this author (default: dependabot[bot])")
	cmd.Flags().StringVar(&flags.state, "state", "", "Pull request state: open, closed, or merged (default: open)")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Maximum number of pull requests to export (default: 100)")
	cmd.Flags().StringVar(&flags.outputFile, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.skipCommentReactions, "skip-comment-reactions", false, "Skip per-comment reaction lookups to reduce API calls")
	cmd.Flags().StringVar(&flags.prURL, "pr-url", "", "Export a single pull request by its web URL")
	cmd.Flags().StringVar(&flags.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "Path to configuration file")

	return cmd
}

// runExport executes the export pipeline: load configuration, resolve the
// pull requests to export, aggregate each one, and write the result.
func runExport(cmd *cobra.Command, flags *exportFlags) error {
	cfg, err := config.LoadConfig(flags.configFile)
	if err != nil {
		return err
	}

	// Flags override config file and environment values, but only when
	// explicitly set on the command line
	if cmd.Flags().Changed("author") {
		cfg.Defaults.Author = flags.author
	}
	if cmd.Flags().Changed("state") {
		cfg.Defaults.State = flags.state
	}
	if cmd.Flags().Changed("limit") {
		cfg.Defaults.Limit = flags.limit
	}

	if flags.prURL != "" {
		for _, name := range []string{"author", "state", "limit"} {
			if cmd.Flags().Changed(name) {
				return fmt.Errorf("--pr-url cannot be combined with --%s", name)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	token := getToken(flags.token, cfg.GitHub.TokenEnv)
	if token == "" {
		return fmt.Errorf("GitHub token not found. Set %s or use --token flag", cfg.GitHub.TokenEnv)
	}

	client, err := buildClient(token, cfg)
	if err != nil {
		return err
	}

	writer, err := buildWriter(flags.outputFile)
	if err != nil {
		return err
	}

	if err := exportPullRequests(cmd.Context(), client, cfg, flags, writer); err != nil {
		_ = writer.Abort()
		return err
	}

	if err := writer.Close(); err != nil {
		return err
	}

	if flags.outputFile != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d pull requests to %s\n", writer.Count(), flags.outputFile)
	}
	return nil
}

// exportPullRequests locates the pull requests and streams one aggregated
// record per PR to the writer. Progress goes to stderr so stdout stays
// valid JSON.
func exportPullRequests(ctx context.Context, client github.Client, cfg *config.Config, flags *exportFlags, writer output.OutputWriter) error {
	prs, err := export.Locate(ctx, client, export.Request{
		PRURL:  flags.prURL,
		Host:   cfg.GitHub.Host,
		Author: cfg.Defaults.Author,
		State:  cfg.Defaults.State,
		Limit:  cfg.Defaults.Limit,
	}, os.Stderr)
	if err != nil {
		return err
	}

	aggregator := export.NewAggregator(client, export.AggregatorOptions{
		SkipCommentReactions: flags.skipCommentReactions,
		Workers:              cfg.Defaults.EnrichWorkers,
	})

	for i, pr := range prs {
		fmt.Fprintf(os.Stderr, "Aggregating %s/%s#%d (%d/%d)...\n",
			pr.Owner, pr.Repo, pr.Number, i+1, len(prs))

		record, err := aggregator.Aggregate(ctx, pr)
		if err != nil {
			return err
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// buildClient constructs the GitHub client stack: the REST client, wrapped
// with retry logic when enabled in configuration.
func buildClient(token string, cfg *config.Config) (github.Client, error) {
	restClient, err := github.NewRESTClient(token, github.Options{
		Endpoint:          cfg.GitHub.APIEndpoint,
		PageSize:          cfg.Defaults.PageSize,
		AutoWaitRateLimit: cfg.RateLimit.AutoWait,
	})
	if err != nil {
		return nil, err
	}

	var client github.Client = restClient
	if cfg.Retry.Enabled {
		initial, max, err := cfg.RetryBackoff()
		if err != nil {
			return nil, err
		}
		retryConfig := github.DefaultRetryConfig()
		retryConfig.MaxRetries = cfg.Retry.MaxRetries
		retryConfig.InitialBackoff = initial
		retryConfig.MaxBackoff = max
		client = github.NewRetryClient(client, retryConfig)
	}
	return client, nil
}

// buildWriter creates the output writer: stdout by default, or a file
// writer that publishes atomically on Close.
func buildWriter(outputFile string) (*output.Writer, error) {
	if outputFile == "" {
		return output.NewWriter(os.Stdout), nil
	}
	writer, err := output.NewFileWriter(outputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return writer, nil
}

// getToken returns the GitHub token from flag or environment variable
func getToken(flagToken, tokenEnv string) string {
	if flagToken != "" {
		return flagToken
	}
	return os.Getenv(tokenEnv)
}
