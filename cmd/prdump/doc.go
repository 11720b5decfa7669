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

// Package main implements the prdump command-line interface. The tool
// exports GitHub pull requests with their full discussion context (issue
// comments, review comments, reviews, reactions, commits) as a JSON array.
//
// The CLI supports:
//   - Searching pull requests by author and state (default behavior)
//   - Exporting a single pull request via --pr-url
//   - Customizable output destinations (stdout or file, written atomically)
//   - GitHub token authentication via flag or environment variable
//   - Optional retry and rate limit policies via configuration file
//
// Usage:
//
//	prdump [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	prdump --author "dependabot[bot]" --state open --out prs.json
//
// Exit codes:
//   - 0: Success
//   - 1: Any error
package main
