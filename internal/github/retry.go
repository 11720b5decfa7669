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
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	prdumperrors "github.com/prdump/prdump/internal/errors"
	"github.com/prdump/prdump/internal/giterror"
)

// RetryConfig configures the retry behavior for API calls. Retrying is an
// opt-in policy; the zero value of the surrounding tooling never constructs
// a RetryClient at all.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts
	MaxRetries int
	// InitialBackoff is the initial backoff duration
	InitialBackoff time.Duration
	// MaxBackoff is the maximum backoff duration
	MaxBackoff time.Duration
	// BackoffMultiplier is the multiplier for exponential backoff
	BackoffMultiplier float64
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:        3,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// RetryClient wraps a GitHub client with automatic retry logic for
// rate limits and transient network errors using exponential backoff.
type RetryClient struct {
	client    Client
	config    *RetryConfig
	inspector giterror.Inspector
}

// NewRetryClient creates a new RetryClient with the given configuration
func NewRetryClient(client Client, config *RetryConfig) Client {
	if config == nil {
		config = DefaultRetryConfig()
	}
	return &RetryClient{
		client:    client,
		config:    config,
		inspector: giterror.NewInspector(),
	}
}

// retry runs fn until it succeeds, the error is not retryable, or the retry
// budget is exhausted. Backoff waits respect context cancellation.
func retry[T any](ctx context.Context, r *RetryClient, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !r.shouldRetry(err) {
			return zero, err
		}

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}

		backoff := r.calculateBackoff(attempt)

		if r.inspector.IsRateLimitError(err) {
			fmt.Fprintf(os.Stderr, "Rate limit hit. Waiting %v before retry (attempt %d/%d)...\n",
				backoff, attempt+1, r.config.MaxRetries)
		} else {
			fmt.Fprintf(os.Stderr, "Network error. Retrying in %v (attempt %d/%d)...\n",
				backoff, attempt+1, r.config.MaxRetries)
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, fmt.Errorf("failed after %d retries: %w", r.config.MaxRetries, lastErr)
}

// GetPullRequest implements the Client interface with retry logic
func (r *RetryClient) GetPullRequest(ctx context.Context, ref PRRef) (*PullRequest, error) {
	return retry(ctx, r, func() (*PullRequest, error) {
		return r.client.GetPullRequest(ctx, ref)
	})
}

// SearchPullRequests implements the Client interface with retry logic
func (r *RetryClient) SearchPullRequests(ctx context.Context, q SearchQuery) ([]PullRequest, error) {
	return retry(ctx, r, func() ([]PullRequest, error) {
		return r.client.SearchPullRequests(ctx, q)
	})
}

// ListIssueComments implements the Client interface with retry logic
func (r *RetryClient) ListIssueComments(ctx context.Context, ref PRRef) ([]Comment, error) {
	return retry(ctx, r, func() ([]Comment, error) {
		return r.client.ListIssueComments(ctx, ref)
	})
}

// ListReviewComments implements the Client interface with retry logic
func (r *RetryClient) ListReviewComments(ctx context.Context, ref PRRef) ([]Comment, error) {
	return retry(ctx, r, func() ([]Comment, error) {
		return r.client.ListReviewComments(ctx, ref)
	})
}

// ListReviews implements the Client interface with retry logic
func (r *RetryClient) ListReviews(ctx context.Context, ref PRRef) ([]Review, error) {
	return retry(ctx, r, func() ([]Review, error) {
		return r.client.ListReviews(ctx, ref)
	})
}

// ListPullRequestReactions implements the Client interface with retry logic
func (r *RetryClient) ListPullRequestReactions(ctx context.Context, ref PRRef) ([]Reaction, error) {
	return retry(ctx, r, func() ([]Reaction, error) {
		return r.client.ListPullRequestReactions(ctx, ref)
	})
}

// ListCommits implements the Client interface with retry logic
func (r *RetryClient) ListCommits(ctx context.Context, ref PRRef) ([]Commit, error) {
	return retry(ctx, r, func() ([]Commit, error) {
		return r.client.ListCommits(ctx, ref)
	})
}

// ListIssueCommentReactions implements the Client interface with retry logic
func (r *RetryClient) ListIssueCommentReactions(ctx context.Context, ref PRRef, commentID int64) ([]Reaction, error) {
	return retry(ctx, r, func() ([]Reaction, error) {
		return r.client.ListIssueCommentReactions(ctx, ref, commentID)
	})
}

// ListReviewCommentReactions implements the Client interface with retry logic
func (r *RetryClient) ListReviewCommentReactions(ctx context.Context, ref PRRef, commentID int64) ([]Reaction, error) {
	return retry(ctx, r, func() ([]Reaction, error) {
		return r.client.ListReviewCommentReactions(ctx, ref, commentID)
	})
}

// shouldRetry determines if an error is retryable
func (r *RetryClient) shouldRetry(err error) bool {
	// Errors from the REST client arrive already classified
	if errors.Is(err, prdumperrors.ErrRateLimit) || errors.Is(err, prdumperrors.ErrNetworkFailure) {
		return true
	}

	// Retry on rate limit errors
	if r.inspector.IsRateLimitError(err) {
		return true
	}

	// Retry on network errors
	if r.inspector.IsNetworkError(err) {
		return true
	}

	// Don't retry on other errors (auth, not found, etc.)
	return false
}

// calculateBackoff calculates the backoff duration for the given attempt
func (r *RetryClient) calculateBackoff(attempt int) time.Duration {
	// Calculate exponential backoff
	backoff := float64(r.config.InitialBackoff) * math.Pow(r.config.BackoffMultiplier, float64(attempt))

	// Apply max backoff limit
	if backoff > float64(r.config.MaxBackoff) {
		backoff = float64(r.config.MaxBackoff)
	}

	// Add jitter (±10%) to prevent thundering herd
	jitter := backoff * 0.1 * (2*float64(time.Now().UnixNano()%100)/100 - 1)
	backoff += jitter

	return time.Duration(backoff)
}
