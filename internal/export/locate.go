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

package export

import (
	"context"
	"fmt"
	"io"

	"github.com/prdump/prdump/internal/github"
)

// Request describes which pull requests to export. PRURL selects a single
// pull request and takes precedence over the search fields; otherwise the
// author/state search applies.
type Request struct {
	// PRURL is a pull request web URL. Non-empty means single-PR mode.
	PRURL string

	// Host is the GitHub host expected in PRURL (e.g. "github.com").
	Host string

	// Author filters search results by PR author login.
	Author string

	// State is one of open, closed, or merged.
	State string

	// Limit caps the number of search results.
	Limit int
}

// Locate resolves the pull requests to export. In single-PR mode the URL is
// parsed and the pull request fetched directly; in search mode GitHub's issue
// search is queried oldest first. Progress is announced on the progress
// writer; data never goes there.
func Locate(ctx context.Context, client github.Client, req Request, progress io.Writer) ([]github.PullRequest, error) {
	if req.PRURL != "" {
		ref, err := github.ParsePRURL(req.PRURL, req.Host)
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(progress, "Fetching pull request %s/%s#%d...\n", ref.Owner, ref.Repo, ref.Number)

		pr, err := client.GetPullRequest(ctx, ref)
		if err != nil {
			return nil, err
		}
		return []github.PullRequest{*pr}, nil
	}

	fmt.Fprintf(progress, "Searching pull requests by %s (state: %s, limit: %d)...\n",
		req.Author, req.State, req.Limit)

	prs, err := client.SearchPullRequests(ctx, github.SearchQuery{
		Author: req.Author,
		State:  req.State,
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(progress, "Found %d pull requests\n", len(prs))
	return prs, nil
}
