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

package github

import "context"

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
//
// Every List method transparently follows page-based pagination until the API
// signals no more data, returning one flat slice per retrieval kind.
type Client interface {
	// GetPullRequest retrieves the summary for a single pull request.
	GetPullRequest(ctx context.Context, ref PRRef) (*PullRequest, error)

	// SearchPullRequests retrieves pull request summaries matching the
	// author and state filters, up to the query's limit, ordered by
	// creation date ascending.
	SearchPullRequests(ctx context.Context, q SearchQuery) ([]PullRequest, error)

	// ListIssueComments retrieves all comments on the pull request's
	// top-level discussion thread.
	ListIssueComments(ctx context.Context, ref PRRef) ([]Comment, error)

	// ListReviewComments retrieves all comments attached to specific diff
	// lines of the pull request.
	ListReviewComments(ctx context.Context, ref PRRef) ([]Comment, error)

	// ListReviews retrieves all review verdicts submitted on the pull request.
	ListReviews(ctx context.Context, ref PRRef) ([]Review, error)

	// ListPullRequestReactions retrieves all reactions on the pull request itself.
	ListPullRequestReactions(ctx context.Context, ref PRRef) ([]Reaction, error)

	// ListCommits retrieves all commits on the pull request.
	ListCommits(ctx context.Context, ref PRRef) ([]Commit, error)

	// ListIssueCommentReactions retrieves the reactions on one issue comment.
	ListIssueCommentReactions(ctx context.Context, ref PRRef, commentID int64) ([]Reaction, error)

	// ListReviewCommentReactions retrieves the reactions on one review comment.
	ListReviewCommentReactions(ctx context.Context, ref PRRef, commentID int64) ([]Reaction, error)
}
