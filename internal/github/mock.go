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
	"sync"

	prdumperrors "github.com/prdump/prdump/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for
// testing. Response data is keyed by pull request number (and comment ID for
// per-comment reactions). Call tracking is safe for concurrent use because
// reaction enrichment fans out across goroutines.
type MockClient struct {
	mu sync.Mutex

	// Data to return
	PR               *PullRequest
	SearchResults    []PullRequest
	IssueComments    map[int][]Comment
	ReviewComments   map[int][]Comment
	Reviews          map[int][]Review
	PRReactions      map[int][]Reaction
	Commits          map[int][]Commit
	CommentReactions map[int64][]Reaction

	// Error to return from every call
	Err error

	// FailOp makes only the named operation fail with Err
	// (e.g. "ListReviews", "ListIssueCommentReactions").
	FailOp string

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNotFound bool

	// Track calls for verification
	Calls          []string
	LastQuery      SearchQuery
	LastRef        PRRef
	ReactionLookup []int64
}

// NewMockClient creates an empty mock client.
func NewMockClient() *MockClient {
	return &MockClient{
		IssueComments:    make(map[int][]Comment),
		ReviewComments:   make(map[int][]Comment),
		Reviews:          make(map[int][]Review),
		PRReactions:      make(map[int][]Reaction),
		Commits:          make(map[int][]Commit),
		CommentReactions: make(map[int64][]Reaction),
	}
}

// record tracks a call and returns the injected error, if any applies.
func (m *MockClient) record(ctx context.Context, op string, ref PRRef) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, op)
	m.LastRef = ref
	m.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w", prdumperrors.ErrInvalidToken)
	}
	if m.ShouldFailNotFound {
		return fmt.Errorf("not found: %w", prdumperrors.ErrNotFound)
	}
	if m.Err != nil && (m.FailOp == "" || m.FailOp == op) {
		return m.Err
	}
	return nil
}

// CallCount returns how many times the named operation was invoked.
func (m *MockClient) CallCount(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, call := range m.Calls {
		if call == op {
			n++
		}
	}
	return n
}

// GetPullRequest implements the Client interface
func (m *MockClient) GetPullRequest(ctx context.Context, ref PRRef) (*PullRequest, error) {
	if err := m.record(ctx, "GetPullRequest", ref); err != nil {
		return nil, err
	}
	if m.PR == nil {
		return nil, fmt.Errorf("pull request %s/%s#%d: %w", ref.Owner, ref.Repo, ref.Number, prdumperrors.ErrNotFound)
	}
	pr := *m.PR
	return &pr, nil
}

// SearchPullRequests implements the Client interface
func (m *MockClient) SearchPullRequests(ctx context.Context, q SearchQuery) ([]PullRequest, error) {
	if err := m.record(ctx, "SearchPullRequests", PRRef{}); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.LastQuery = q
	m.mu.Unlock()

	results := m.SearchResults
	if q.Limit > 0 && len(results) > q.Limit {
		results = results[:q.Limit]
	}
	return results, nil
}

// ListIssueComments implements the Client interface
func (m *MockClient) ListIssueComments(ctx context.Context, ref PRRef) ([]Comment, error) {
	if err := m.record(ctx, "ListIssueComments", ref); err != nil {
		return nil, err
	}
	return append([]Comment(nil), m.IssueComments[ref.Number]...), nil
}

// ListReviewComments implements the Client interface
func (m *MockClient) ListReviewComments(ctx context.Context, ref PRRef) ([]Comment, error) {
	if err := m.record(ctx, "ListReviewComments", ref); err != nil {
		return nil, err
	}
	return append([]Comment(nil), m.ReviewComments[ref.Number]...), nil
}

// ListReviews implements the Client interface
func (m *MockClient) ListReviews(ctx context.Context, ref PRRef) ([]Review, error) {
	if err := m.record(ctx, "ListReviews", ref); err != nil {
		return nil, err
	}
	return append([]Review(nil), m.Reviews[ref.Number]...), nil
}

// ListPullRequestReactions implements the Client interface
func (m *MockClient) ListPullRequestReactions(ctx context.Context, ref PRRef) ([]Reaction, error) {
	if err := m.record(ctx, "ListPullRequestReactions", ref); err != nil {
		return nil, err
	}
	return append([]Reaction(nil), m.PRReactions[ref.Number]...), nil
}

// ListCommits implements the Client interface
func (m *MockClient) ListCommits(ctx context.Context, ref PRRef) ([]Commit, error) {
	if err := m.record(ctx, "ListCommits", ref); err != nil {
		return nil, err
	}
	return append([]Commit(nil), m.Commits[ref.Number]...), nil
}

// ListIssueCommentReactions implements the Client interface
func (m *MockClient) ListIssueCommentReactions(ctx context.Context, ref PRRef, commentID int64) ([]Reaction, error) {
	if err := m.record(ctx, "ListIssueCommentReactions", ref); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.ReactionLookup = append(m.ReactionLookup, commentID)
	m.mu.Unlock()
	return append([]Reaction(nil), m.CommentReactions[commentID]...), nil
}

// ListReviewCommentReactions implements the Client interface
func (m *MockClient) ListReviewCommentReactions(ctx context.Context, ref PRRef, commentID int64) ([]Reaction, error) {
	if err := m.record(ctx, "ListReviewCommentReactions", ref); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.ReactionLookup = append(m.ReactionLookup, commentID)
	m.mu.Unlock()
	return append([]Reaction(nil), m.CommentReactions[commentID]...), nil
}

// Compile-time interface satisfaction check.
var _ Client = (*MockClient)(nil)
