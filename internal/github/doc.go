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

// Package github provides a client for the GitHub REST API endpoints needed
// to export pull request activity: single-PR lookup, author search, and the
// paginated comment, review, reaction, and commit listings.
//
// The package includes:
//   - A Client interface covering the nine retrieval operations
//   - A REST implementation built on google/go-github
//   - An opt-in retry wrapper with exponential backoff
//   - A mock client for testing
//   - Typed records that make up the exported JSON documents
//
// Basic usage:
//
//	client, err := github.NewRESTClient(token, github.Options{})
//	if err != nil {
//	    // Handle error
//	}
//	prs, err := client.SearchPullRequests(ctx, github.SearchQuery{
//	    Author: "dependabot[bot]",
//	    State:  "open",
//	    Limit:  100,
//	})
package github
