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

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"

	prdumperrors "github.com/prdump/prdump/internal/errors"
	"github.com/prdump/prdump/internal/giterror"
)

// Options configures a RESTClient.
type Options struct {
	// Endpoint is the base REST API endpoint. Empty means
	// https://api.github.com.
	Endpoint string

	// PageSize is the per-page size for paginated requests (1-100).
	// Defaults to 100.
	PageSize int

	// AutoWaitRateLimit makes the transport sleep through secondary rate
	// limits instead of surfacing them as errors.
	AutoWaitRateLimit bool

	// HTTPClient overrides the default authenticated transport. Intended
	// for tests injecting an httptest server.
	HTTPClient *http.Client
}

// RESTClient implements the Client interface against GitHub's REST API using
// the go-github library. Each list operation follows the Link-header
// pagination until exhaustion; content negotiation for reactions is handled
// by go-github's Accept headers.
type RESTClient struct {
	gh        *gh.Client
	pageSize  int
	inspector giterror.Inspector
}

// Compile-time interface satisfaction check.
var _ Client = (*RESTClient)(nil)

// NewRESTClient creates a new GitHub REST client authenticated with the
// provided token. The token is injected via an oauth2 static token source;
// opts.Endpoint supports GitHub Enterprise deployments.
func NewRESTClient(token string, opts Options) (*RESTClient, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		if opts.AutoWaitRateLimit {
			httpClient = github_ratelimit.NewClient(httpClient.Transport)
		}
	}

	client := gh.NewClient(httpClient)
	if opts.Endpoint != "" {
		endpoint := opts.Endpoint
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("parsing API endpoint: %w", err)
		}
		client.BaseURL = u
	}

	return &RESTClient{
		gh:        client,
		pageSize:  pageSize,
		inspector: giterror.NewInspector(),
	}, nil
}

// GetPullRequest retrieves the summary for a single pull request.
func (c *RESTClient) GetPullRequest(ctx context.Context, ref PRRef) (*PullRequest, error) {
	pr, _, err := c.gh.PullRequests.Get(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return nil, c.mapError(err, fmt.Sprintf("fetching pull request %s/%s#%d", ref.Owner, ref.Repo, ref.Number))
	}
	summary := summaryFromPullRequest(pr, ref)
	return &summary, nil
}

// SearchPullRequests retrieves pull request summaries matching the query via
// GitHub's issue search, oldest first. Owner and repo are parsed from each
// result's web URL rather than taken from a repository field, so results
// spanning repositories normalize uniformly.
func (c *RESTClient) SearchPullRequests(ctx context.Context, q SearchQuery) ([]PullRequest, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	perPage := c.pageSize
	if perPage > limit {
		perPage = limit
	}
	opts := &gh.SearchOptions{
		Sort:        "created",
		Order:       "asc",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	query := buildSearchQuery(q)
	out := make([]PullRequest, 0, limit)

	for {
		result, resp, err := c.gh.Search.Issues(ctx, query, opts)
		if err != nil {
			return nil, c.mapError(err, fmt.Sprintf("searching pull requests (page %d)", opts.Page))
		}

		for _, issue := range result.Issues {
			summary, err := summaryFromIssue(issue)
			if err != nil {
				return nil, err
			}
			out = append(out, summary)
			if len(out) == limit {
				return out, nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

// buildSearchQuery constructs a GitHub search query for pull requests
// filtered by author and state. The "merged" state uses the is:merged
// qualifier; plain open/closed map to is:open/is:closed.
func buildSearchQuery(q SearchQuery) string {
	parts := []string{"is:pr"}
	if q.Author != "" {
		parts = append(parts, "author:"+q.Author)
	}
	if q.State != "" {
		parts = append(parts, "is:"+q.State)
	}
	return strings.Join(parts, " ")
}

// ListIssueComments retrieves all top-level discussion comments on the pull
// request, following pagination until exhaustion.
func (c *RESTClient) ListIssueComments(ctx context.Context, ref PRRef) ([]Comment, error) {
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: c.pageSize},
	}
	out := make([]Comment, 0)

	for {
		comments, resp, err := c.gh.Issues.ListComments(ctx, ref.Owner, ref.Repo, ref.Number, opts)
		if err != nil {
			return nil, c.mapError(err, fmt.Sprintf("listing issue comments for %s/%s#%d (page %d)",
				ref.Owner, ref.Repo, ref.Number, opts.Page))
		}

		for _, comment := range comments {
			out = append(out, mapIssueComment(comment))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

// ListReviewComments retrieves all diff-attached review comments on the pull
// request, following pagination until exhaustion.
func (c *RESTClient) ListReviewComments(ctx context.Context, ref PRRef) ([]Comment, error) {
	opts := &gh.PullRequestListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: c.pageSize},
	}
	out := make([]Comment, 0)

	for {
		comments, resp, err := c.gh.PullRequests.ListComments(ctx, ref.Owner, ref.Repo, ref.Number, opts)
		if err != nil {
			return nil, c.mapError(err, fmt.Sprintf("listing review comments for %s/%s#%d (page %d)",
				ref.Owner, ref.Repo, ref.Number, opts.Page))
		}

		for _, comment := range comments {
			out = append(out, mapReviewComment(comment))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

// ListReviews retrieves all reviews submitted on the pull request.
func (c *RESTClient) ListReviews(ctx context.Context, ref PRRef) ([]Review, error) {
	opts := &gh.ListOptions{PerPage: c.pageSize}
	out := make([]Review, 0)

	for {
		reviews, resp, err := c.gh.PullRequests.ListReviews(ctx, ref.Owner, ref.Repo, ref.Number, opts)
		if err != nil {
			return nil, c.mapError(err, fmt.Sprintf("listing reviews for %s/%s#%d (page %d)",
				ref.Owner, ref.Repo, ref.Number, opts.Page))
		}

		for _, review := range reviews {
			out = append(out, Review{
				ID:          review.GetID(),
				Author:      review.GetUser().GetLogin(),
				State:       review.GetState(),
				Body:        review.GetBody(),
				CommitID:    review.GetCommitID(),
				SubmittedAt: review.GetSubmittedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

// ListPullRequestReactions retrieves all reactions on the pull request
// itself. Pull requests are issues as far as reactions are concerned.
func (c *RESTClient) ListPullRequestReactions(ctx context.Context, ref PRRef) ([]Reaction, error) {
	opts := &gh.ListReactionOptions{
		ListOptions: gh.ListOptions{PerPage: c.pageSize},
	}
	out := make([]Reaction, 0)

	for {
		reactions, resp, err := c.gh.Reactions.ListIssueReactions(ctx, ref.Owner, ref.Repo, ref.Number, opts)
		if err != nil {
			return nil, c.mapError(err, fmt.Sprintf("listing reactions for %s/%s#%d (page %d)",
				ref.Owner, ref.Repo, ref.Number, opts.Page))
		}

		for _, reaction := range reactions {
			out = append(out, mapReaction(reaction))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

// ListCommits retrieves all commits on the pull request.
func (c *RESTClient) ListCommits(ctx context.Context, ref PRRef) ([]Commit, error) {
	opts := &gh.ListOptions{PerPage: c.pageSize}
	out := make([]Commit, 0)

	for {
		commits, resp, err := c.gh.PullRequests.ListCommits(ctx, ref.Owner, ref.Repo, ref.Number, opts)
		if err != nil {
			return nil, c.mapError(err, fmt.Sprintf("listing commits for %s/%s#%d (page %d)",
				ref.Owner, ref.Repo, ref.Number, opts.Page))
		}

		for _, commit := range commits {
			out = append(out, mapCommit(commit))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

// ListIssueCommentReactions retrieves the reactions on a single issue comment.
func (c *RESTClient) ListIssueCommentReactions(ctx context.Context, ref PRRef, commentID int64) ([]Reaction, error) {
	opts := &gh.ListReactionOptions{
		ListOptions: gh.ListOptions{PerPage: c.pageSize},
	}
	out := make([]Reaction, 0)

	for {
		reactions, resp, err := c.gh.Reactions.ListCommentReactions(ctx, ref.Owner, ref.Repo, commentID, opts)
		if err != nil {
			return nil, c.mapError(err, fmt.Sprintf("listing reactions for issue comment %d on %s/%s#%d (page %d)",
				commentID, ref.Owner, ref.Repo, ref.Number, opts.Page))
		}

		for _, reaction := range reactions {
			out = append(out, mapReaction(reaction))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

// ListReviewCommentReactions retrieves the reactions on a single review comment.
func (c *RESTClient) ListReviewCommentReactions(ctx context.Context, ref PRRef, commentID int64) ([]Reaction, error) {
	opts := &gh.ListReactionOptions{
		ListOptions: gh.ListOptions{PerPage: c.pageSize},
	}
	out := make([]Reaction, 0)

	for {
		reactions, resp, err := c.gh.Reactions.ListPullRequestCommentReactions(ctx, ref.Owner, ref.Repo, commentID, opts)
		if err != nil {
			return nil, c.mapError(err, fmt.Sprintf("listing reactions for review comment %d on %s/%s#%d (page %d)",
				commentID, ref.Owner, ref.Repo, ref.Number, opts.Page))
		}

		for _, reaction := range reactions {
			out = append(out, mapReaction(reaction))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return out, nil
}

// mapError classifies a go-github error and wraps it with the matching
// sentinel so callers can test with errors.Is. Rate limits are checked before
// auth because GitHub reports both as 403.
func (c *RESTClient) mapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("%s: GitHub API rate limit exceeded: %w", op, prdumperrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("%s: GitHub API authentication failed. Provide a valid token via --token or the GITHUB_TOKEN environment variable: %w", op, prdumperrors.ErrInvalidToken)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("%s: not found. Check the repository name and your access permissions: %w", op, prdumperrors.ErrNotFound)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("%s: network error connecting to GitHub API: %w", op, prdumperrors.ErrNetworkFailure)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// summaryFromPullRequest maps a go-github PullRequest to a summary record.
// It uses GetXxx() helper methods exclusively to avoid nil pointer panics.
func summaryFromPullRequest(pr *gh.PullRequest, ref PRRef) PullRequest {
	state := pr.GetState()
	if !pr.GetMergedAt().Time.IsZero() {
		state = "merged"
	}

	labels := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		labels = append(labels, l.GetName())
	}

	return PullRequest{
		Number:    pr.GetNumber(),
		URL:       pr.GetHTMLURL(),
		Owner:     ref.Owner,
		Repo:      ref.Repo,
		Title:     pr.GetTitle(),
		Author:    pr.GetUser().GetLogin(),
		State:     state,
		IsDraft:   pr.GetDraft(),
		Labels:    labels,
		CreatedAt: pr.GetCreatedAt().Time,
		UpdatedAt: pr.GetUpdatedAt().Time,
	}
}

// summaryFromIssue maps a search result to a summary record. Search returns
// pull requests as issues; the repository coordinates only exist in the web
// URL, which is parsed rather than assumed.
func summaryFromIssue(issue *gh.Issue) (PullRequest, error) {
	rawURL := issue.GetHTMLURL()
	u, err := url.Parse(rawURL)
	if err != nil {
		return PullRequest{}, fmt.Errorf("search result #%d has unparseable URL %q: %w",
			issue.GetNumber(), rawURL, prdumperrors.ErrInvalidPRURL)
	}
	ref, ok := splitPRPath(u.Path)
	if !ok {
		return PullRequest{}, fmt.Errorf("search result #%d has unexpected URL %q: %w",
			issue.GetNumber(), rawURL, prdumperrors.ErrInvalidPRURL)
	}

	state := issue.GetState()
	if !issue.GetPullRequestLinks().GetMergedAt().Time.IsZero() {
		state = "merged"
	}

	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}

	return PullRequest{
		Number:    ref.Number,
		URL:       rawURL,
		Owner:     ref.Owner,
		Repo:      ref.Repo,
		Title:     issue.GetTitle(),
		Author:    issue.GetUser().GetLogin(),
		State:     state,
		IsDraft:   issue.GetDraft(),
		Labels:    labels,
		CreatedAt: issue.GetCreatedAt().Time,
		UpdatedAt: issue.GetUpdatedAt().Time,
	}, nil
}

// mapIssueComment converts a go-github IssueComment to a Comment.
func mapIssueComment(c *gh.IssueComment) Comment {
	return Comment{
		ID:        c.GetID(),
		Author:    c.GetUser().GetLogin(),
		Body:      c.GetBody(),
		HTMLURL:   c.GetHTMLURL(),
		CreatedAt: c.GetCreatedAt().Time,
		UpdatedAt: c.GetUpdatedAt().Time,
	}
}

// mapReviewComment converts a go-github PullRequestComment to a Comment.
func mapReviewComment(c *gh.PullRequestComment) Comment {
	return Comment{
		ID:        c.GetID(),
		Author:    c.GetUser().GetLogin(),
		Body:      c.GetBody(),
		HTMLURL:   c.GetHTMLURL(),
		CreatedAt: c.GetCreatedAt().Time,
		UpdatedAt: c.GetUpdatedAt().Time,
		Path:      c.GetPath(),
		DiffHunk:  c.GetDiffHunk(),
		Line:      c.GetLine(),
		CommitID:  c.GetCommitID(),
		ReviewID:  c.GetPullRequestReviewID(),
		InReplyTo: c.GetInReplyTo(),
	}
}

// mapReaction converts a go-github Reaction to a Reaction record.
func mapReaction(r *gh.Reaction) Reaction {
	return Reaction{
		ID:      r.GetID(),
		User:    r.GetUser().GetLogin(),
		Content: r.GetContent(),
	}
}

// mapCommit converts a go-github RepositoryCommit to a Commit record. The
// author login comes from the GitHub user when linked; name and email come
// from the underlying git commit.
func mapCommit(c *gh.RepositoryCommit) Commit {
	commit := c.GetCommit()
	return Commit{
		SHA:         c.GetSHA(),
		Message:     commit.GetMessage(),
		Author:      c.GetAuthor().GetLogin(),
		AuthorName:  commit.GetAuthor().GetName(),
		AuthorEmail: commit.GetAuthor().GetEmail(),
		Committer:   c.GetCommitter().GetLogin(),
		AuthoredAt:  commit.GetAuthor().GetDate().Time,
		CommittedAt: commit.GetCommitter().GetDate().Time,
		HTMLURL:     c.GetHTMLURL(),
	}
}
